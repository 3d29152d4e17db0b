package model

import (
	reviewer "reviews-backend/internal/domains/reviewer/model"
)

// ScopeToReviewer narrows a collection of reviews to those authored via the
// given profile. A nil profile (anonymous caller, or an identity with no
// profile record) yields the empty subset - absence is a normal outcome,
// not a fault. The input slice is not mutated.
func ScopeToReviewer(profile *reviewer.Profile, reviews []*Review) []*Review {
	if profile == nil {
		return nil
	}

	var own []*Review
	for _, r := range reviews {
		if r.ReviewerID == profile.ID {
			own = append(own, r)
		}
	}
	return own
}
