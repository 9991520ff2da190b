package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodia/internal/models/db_models"
	"melodia/internal/models/request_models"
	"melodia/internal/services"
	"melodia/pkg/utils"
)

type profileFixture struct {
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	service  services.ProfileServiceInterface
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()

	profiles := newFakeProfileRepo()
	users := newFakeUserRepo(profiles)

	return &profileFixture{
		users:    users,
		profiles: profiles,
		service:  services.NewProfileService(users, profiles),
	}
}

func (f *profileFixture) addUserWithPlan(t *testing.T, email string, accounts int) *db_models.User {
	t.Helper()

	planID := uuid.New()
	user := &db_models.User{
		Name:         "Ana",
		Email:        email,
		PasswordHash: mustHash(t, testPassword),
		PlanID:       &planID,
		Plan:         &db_models.Plan{Accounts: accounts},
	}
	f.users.add(user)
	return user
}

func TestCreateProfileEnforcesPlanLimit(t *testing.T) {
	env := newProfileFixture(t)
	env.addUserWithPlan(t, "ana@example.com", 2)

	first, err := env.service.Create(context.Background(), "ana@example.com", request_models.CreateProfileRequest{Name: "Living room"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, "Living room", first.Name)
	assert.Equal(t, "Ana", first.User.Name)

	second, err := env.service.Create(context.Background(), "ana@example.com", request_models.CreateProfileRequest{Name: "Kids"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = env.service.Create(context.Background(), "ana@example.com", request_models.CreateProfileRequest{Name: "One too many"})
	assert.ErrorIs(t, err, utils.ErrProfileLimitReached)

	// The rejected create must not leave a partial row behind.
	views, err := env.service.FindAll(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestCreateProfileWithoutPlan(t *testing.T) {
	env := newProfileFixture(t)
	env.users.add(&db_models.User{
		Name:         "Bruno",
		Email:        "bruno@example.com",
		PasswordHash: mustHash(t, testPassword),
	})

	_, err := env.service.Create(context.Background(), "bruno@example.com", request_models.CreateProfileRequest{Name: "Main"})
	assert.ErrorIs(t, err, utils.ErrPlanNotAssigned)
}

func TestCreateProfileUnknownClaimEmail(t *testing.T) {
	env := newProfileFixture(t)

	_, err := env.service.Create(context.Background(), "ghost@example.com", request_models.CreateProfileRequest{Name: "Main"})
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestFindAllProfiles(t *testing.T) {
	env := newProfileFixture(t)
	env.addUserWithPlan(t, "ana@example.com", 4)

	t.Run("no profiles yet is an empty success", func(t *testing.T) {
		views, err := env.service.FindAll(context.Background(), "ana@example.com")
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("listing is read only", func(t *testing.T) {
		_, err := env.service.Create(context.Background(), "ana@example.com", request_models.CreateProfileRequest{Name: "Living room"})
		require.NoError(t, err)

		first, err := env.service.FindAll(context.Background(), "ana@example.com")
		require.NoError(t, err)
		second, err := env.service.FindAll(context.Background(), "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, second, 1)
	})
}

func TestFindOneProfile(t *testing.T) {
	env := newProfileFixture(t)
	env.addUserWithPlan(t, "ana@example.com", 2)
	other := env.addUserWithPlan(t, "bruno@example.com", 2)

	created, err := env.service.Create(context.Background(), "ana@example.com", request_models.CreateProfileRequest{Name: "Living room"})
	require.NoError(t, err)

	foreign := &db_models.Profile{Name: "Bruno main", UserID: other.ID}
	require.NoError(t, env.profiles.CreateWithinQuota(context.Background(), foreign, 2))

	view, err := env.service.FindOne(context.Background(), "ana@example.com", created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Living room", view.Name)

	// Another user's profile is indistinguishable from a missing one.
	_, err = env.service.FindOne(context.Background(), "ana@example.com", foreign.ID.String())
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)

	_, err = env.service.FindOne(context.Background(), "ana@example.com", uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}

func TestUpdateProfileRequiresActiveSession(t *testing.T) {
	env := newProfileFixture(t)
	env.addUserWithPlan(t, "ana@example.com", 2)

	created, err := env.service.Create(context.Background(), "ana@example.com", request_models.CreateProfileRequest{Name: "Living room"})
	require.NoError(t, err)
	id := created.ID.String()

	t.Run("active profile can rename itself", func(t *testing.T) {
		view, err := env.service.Update(context.Background(), "ana@example.com", id, id, request_models.UpdateProfileRequest{Name: "Bedroom"})
		require.NoError(t, err)
		assert.Equal(t, "Bedroom", view.Name)
	})

	t.Run("token without an active profile", func(t *testing.T) {
		_, err := env.service.Update(context.Background(), "ana@example.com", "", id, request_models.UpdateProfileRequest{Name: "Nope"})
		assert.ErrorIs(t, err, utils.ErrProfileNotFound)
	})

	t.Run("active profile cannot touch a sibling", func(t *testing.T) {
		sibling, err := env.service.Create(context.Background(), "ana@example.com", request_models.CreateProfileRequest{Name: "Kids"})
		require.NoError(t, err)

		_, err = env.service.Update(context.Background(), "ana@example.com", id, sibling.ID.String(), request_models.UpdateProfileRequest{Name: "Nope"})
		assert.ErrorIs(t, err, utils.ErrProfileNotFound)
	})
}

func TestDeleteProfile(t *testing.T) {
	env := newProfileFixture(t)
	env.addUserWithPlan(t, "ana@example.com", 2)

	created, err := env.service.Create(context.Background(), "ana@example.com", request_models.CreateProfileRequest{Name: "Living room"})
	require.NoError(t, err)
	id := created.ID.String()

	t.Run("claim mismatch leaves the profile alone", func(t *testing.T) {
		err := env.service.Delete(context.Background(), "ana@example.com", uuid.NewString(), id)
		assert.ErrorIs(t, err, utils.ErrProfileNotFound)

		views, err := env.service.FindAll(context.Background(), "ana@example.com")
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("active profile deletes itself", func(t *testing.T) {
		require.NoError(t, env.service.Delete(context.Background(), "ana@example.com", id, id))

		views, err := env.service.FindAll(context.Background(), "ana@example.com")
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestFavoritePlaylists(t *testing.T) {
	env := newProfileFixture(t)
	env.addUserWithPlan(t, "ana@example.com", 2)

	created, err := env.service.Create(context.Background(), "ana@example.com", request_models.CreateProfileRequest{Name: "Living room"})
	require.NoError(t, err)
	id := created.ID.String()

	playlist := &db_models.Playlist{Name: "Morning mix"}
	env.profiles.addPlaylist(playlist)

	t.Run("favorite then list", func(t *testing.T) {
		require.NoError(t, env.service.FavoritePlaylist(context.Background(), "ana@example.com", id, playlist.ID.String()))

		views, err := env.service.FindFavorites(context.Background(), "ana@example.com", id)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Morning mix", views[0].Name)
	})

	t.Run("favoriting twice keeps one entry", func(t *testing.T) {
		require.NoError(t, env.service.FavoritePlaylist(context.Background(), "ana@example.com", id, playlist.ID.String()))

		views, err := env.service.FindFavorites(context.Background(), "ana@example.com", id)
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("unknown playlist", func(t *testing.T) {
		err := env.service.FavoritePlaylist(context.Background(), "ana@example.com", id, uuid.NewString())
		assert.ErrorIs(t, err, utils.ErrRecordNotFound)
	})

	t.Run("token without an active profile", func(t *testing.T) {
		err := env.service.FavoritePlaylist(context.Background(), "ana@example.com", "", playlist.ID.String())
		assert.ErrorIs(t, err, utils.ErrProfileNotFound)
	})

	t.Run("unfavorite empties the list", func(t *testing.T) {
		require.NoError(t, env.service.UnfavoritePlaylist(context.Background(), "ana@example.com", id, playlist.ID.String()))

		views, err := env.service.FindFavorites(context.Background(), "ana@example.com", id)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
