package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"reviews-backend/internal/domains/reviewer/model"
	"reviews-backend/internal/shared/requestctx"
)

// fakeRepository keeps identity+profile pairs in memory.
type fakeRepository struct {
	identities map[uuid.UUID]*model.Identity
	profiles   map[uuid.UUID]*model.Profile // keyed by identity id

	// forceConflict makes UpdateWithProfile report a constraint violation
	// even when no username collides.
	forceConflict bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		identities: make(map[uuid.UUID]*model.Identity),
		profiles:   make(map[uuid.UUID]*model.Profile),
	}
}

func (f *fakeRepository) CreateWithProfile(_ context.Context, identity *model.Identity, profile *model.Profile) error {
	for _, existing := range f.identities {
		if existing.Username == identity.Username {
			return model.ErrUsernameTaken
		}
	}
	cloneID := *identity
	cloneProf := *profile
	f.identities[identity.ID] = &cloneID
	f.profiles[identity.ID] = &cloneProf
	return nil
}

func (f *fakeRepository) UpdateWithProfile(_ context.Context, identity *model.Identity, profile *model.Profile) error {
	if _, ok := f.identities[identity.ID]; !ok {
		return model.ErrReviewerNotFound
	}
	for _, existing := range f.identities {
		if existing.ID != identity.ID && existing.Username == identity.Username {
			return model.ErrUsernameTaken
		}
	}
	if f.forceConflict {
		return model.ErrUsernameTaken
	}
	cloneID := *identity
	cloneProf := *profile
	f.identities[identity.ID] = &cloneID
	f.profiles[identity.ID] = &cloneProf
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Reviewer, error) {
	identity, ok := f.identities[id]
	if !ok {
		return nil, model.ErrReviewerNotFound
	}
	return &model.Reviewer{Identity: *identity, Profile: *f.profiles[id]}, nil
}

func (f *fakeRepository) GetIdentityByUsername(_ context.Context, username string) (*model.Identity, error) {
	for _, identity := range f.identities {
		if identity.Username == username {
			clone := *identity
			return &clone, nil
		}
	}
	return nil, model.ErrReviewerNotFound
}

func (f *fakeRepository) GetProfileByIdentity(_ context.Context, identityID uuid.UUID) (*model.Profile, error) {
	profile, ok := f.profiles[identityID]
	if !ok {
		return nil, nil
	}
	clone := *profile
	return &clone, nil
}

func authedCtx(identityID uuid.UUID) requestctx.Context {
	return requestctx.Context{Caller: requestctx.Authenticated(identityID)}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates identity and profile as a pair", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewReviewerService(repo)

		resp, err := svc.Register(ctx, model.RegisterRequest{
			Username: "alice",
			Password: strPtr("s3cretpass"),
			Bio:      strPtr("writes reviews"),
		})
		require.NoError(t, err)

		identity := repo.identities[resp.ID]
		require.NotNil(t, identity)
		profile := repo.profiles[resp.ID]
		require.NotNil(t, profile)
		assert.Equal(t, identity.ID, profile.IdentityID)
		assert.Equal(t, "writes reviews", profile.Bio)
		assert.True(t, identity.IsActive)
		assert.False(t, identity.IsStaff)
	})

	t.Run("hashes the password, never stores it raw", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewReviewerService(repo)

		resp, err := svc.Register(ctx, model.RegisterRequest{
			Username: "alice",
			Password: strPtr("s3cretpass"),
		})
		require.NoError(t, err)

		identity := repo.identities[resp.ID]
		require.True(t, identity.HasUsablePassword())
		assert.NotEqual(t, "s3cretpass", *identity.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*identity.PasswordHash), []byte("s3cretpass")))
	})

	t.Run("omitted password leaves the hash nil", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewReviewerService(repo)

		resp, err := svc.Register(ctx, model.RegisterRequest{Username: "alice"})
		require.NoError(t, err)

		identity := repo.identities[resp.ID]
		assert.Nil(t, identity.PasswordHash)
		assert.False(t, identity.HasUsablePassword())
	})

	t.Run("invalid payload mutates nothing", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewReviewerService(repo)

		_, err := svc.Register(ctx, model.RegisterRequest{Username: ""})
		require.Error(t, err)
		assert.Empty(t, repo.identities)
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewReviewerService(repo)

		_, err := svc.Register(ctx, model.RegisterRequest{Username: "alice"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, model.RegisterRequest{Username: "alice"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrUsernameTaken))
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewReviewerService(repo)

	alice, err := svc.Register(ctx, model.RegisterRequest{Username: "alice"})
	require.NoError(t, err)
	bob, err := svc.Register(ctx, model.RegisterRequest{Username: "bob"})
	require.NoError(t, err)

	t.Run("caller reads their own record", func(t *testing.T) {
		resp, err := svc.Get(ctx, authedCtx(alice.ID), alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("someone else's record reads as not-found", func(t *testing.T) {
		_, err := svc.Get(ctx, authedCtx(alice.ID), bob.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrReviewerNotFound))
	})

	t.Run("missing record is not-found", func(t *testing.T) {
		_, err := svc.Get(ctx, authedCtx(alice.ID), uuid.New())
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrReviewerNotFound))
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeRepository, Service, uuid.UUID) {
		repo := newFakeRepository()
		svc := NewReviewerService(repo)
		resp, err := svc.Register(ctx, model.RegisterRequest{
			Username: "alice",
			Password: strPtr("s3cretpass"),
			Bio:      strPtr("original bio"),
			Website:  strPtr("https://example.com"),
		})
		require.NoError(t, err)
		return repo, svc, resp.ID
	}

	t.Run("partial update touches only present fields", func(t *testing.T) {
		repo, svc, id := setup(t)

		resp, err := svc.Update(ctx, authedCtx(id), id, model.UpdateRequest{
			FirstName: strPtr("Alice"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Alice", resp.FirstName)
		assert.Equal(t, "alice", resp.Username)
		// Absent profile fields stay as stored.
		assert.Equal(t, "original bio", repo.profiles[id].Bio)
		assert.Equal(t, "https://example.com", repo.profiles[id].Website)
	})

	t.Run("profile fields update alongside identity fields", func(t *testing.T) {
		repo, svc, id := setup(t)

		_, err := svc.Update(ctx, authedCtx(id), id, model.UpdateRequest{
			LastName: strPtr("Smith"),
			Bio:      strPtr("new bio"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Smith", repo.identities[id].LastName)
		assert.Equal(t, "new bio", repo.profiles[id].Bio)
	})

	t.Run("new password is re-hashed", func(t *testing.T) {
		repo, svc, id := setup(t)
		oldHash := *repo.identities[id].PasswordHash

		_, err := svc.Update(ctx, authedCtx(id), id, model.UpdateRequest{
			Password: strPtr("newpassword"),
		})
		require.NoError(t, err)

		newHash := *repo.identities[id].PasswordHash
		assert.NotEqual(t, oldHash, newHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newpassword")))
	})

	t.Run("renaming to a taken username is a conflict", func(t *testing.T) {
		_, svc, id := setup(t)
		_, err := svc.Register(ctx, model.RegisterRequest{Username: "bob"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, authedCtx(id), id, model.UpdateRequest{
			Username: strPtr("bob"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrUsernameTaken))
	})

	t.Run("constraint conflict without a username in the payload", func(t *testing.T) {
		repo, svc, id := setup(t)
		repo.forceConflict = true

		_, err := svc.Update(ctx, authedCtx(id), id, model.UpdateRequest{
			FirstName: strPtr("Alice"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrUsernameTaken))
	})

	t.Run("updating someone else's record is not-found", func(t *testing.T) {
		_, svc, id := setup(t)
		other, err := svc.Register(ctx, model.RegisterRequest{Username: "bob"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, authedCtx(id), other.ID, model.UpdateRequest{
			FirstName: strPtr("Mallory"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrReviewerNotFound))
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewReviewerService(repo)

	_, err := svc.Register(ctx, model.RegisterRequest{
		Username: "alice",
		Password: strPtr("s3cretpass"),
	})
	require.NoError(t, err)
	_, err = svc.Register(ctx, model.RegisterRequest{Username: "nopassword"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		identity, err := svc.Authenticate(ctx, "alice", "s3cretpass")
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice", "wrong")
		assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
	})

	t.Run("unknown username looks like wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody", "whatever")
		assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
	})

	t.Run("account without a usable password cannot log in", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nopassword", "")
		assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
	})

	t.Run("inactive account cannot log in", func(t *testing.T) {
		for _, identity := range repo.identities {
			if identity.Username == "alice" {
				identity.IsActive = false
			}
		}
		_, err := svc.Authenticate(ctx, "alice", "s3cretpass")
		assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
	})
}

func strPtr(s string) *string { return &s }
