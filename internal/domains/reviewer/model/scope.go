package model

import "reviews-backend/internal/shared/requestctx"

// ScopeToSelf narrows a collection of identities to the one owned by the
// caller. Anonymous callers get an empty result, never an error. The input
// slice is not mutated; the result is always zero or one record when the
// collection is keyed uniquely by identity.
func ScopeToSelf(caller requestctx.Caller, identities []*Identity) []*Identity {
	identityID, ok := caller.IdentityID()
	if !ok {
		return nil
	}

	var own []*Identity
	for _, id := range identities {
		if id.ID == identityID {
			own = append(own, id)
		}
	}
	return own
}
