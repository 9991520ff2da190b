package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodia/internal/models/db_models"
	"melodia/internal/models/request_models"
	"melodia/internal/services"
	"melodia/pkg/tokens"
	"melodia/pkg/utils"
)

const testPassword = "open sesame 42"

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

type authFixture struct {
	users    *fakeUserRepo
	admins   *fakeAdminRepo
	artists  *fakeArtistRepo
	profiles *fakeProfileRepo
	maker    *tokens.Maker
	service  services.AuthServiceInterface
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	profiles := newFakeProfileRepo()
	users := newFakeUserRepo(profiles)
	admins := newFakeAdminRepo()
	artists := newFakeArtistRepo()
	maker := tokens.NewMaker("unit-test-secret", time.Hour)

	return &authFixture{
		users:    users,
		admins:   admins,
		artists:  artists,
		profiles: profiles,
		maker:    maker,
		service:  services.NewAuthService(users, admins, artists, profiles, maker),
	}
}

func TestLoginUser(t *testing.T) {
	env := newAuthFixture(t)
	env.users.add(&db_models.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: mustHash(t, testPassword),
		Category:     db_models.Category{Name: "user"},
	})

	t.Run("success issues token with email claim", func(t *testing.T) {
		result, err := env.service.LoginUser(context.Background(), request_models.LoginRequest{
			Email:    "ana@example.com",
			Password: testPassword,
		})
		require.NoError(t, err)

		claims, err := env.maker.Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", claims.Email)
		assert.Empty(t, claims.ProfileID)

		assert.Equal(t, "Ana", result.User.Name)
		assert.Equal(t, "user", result.User.Category)
	})

	t.Run("response never carries the password hash", func(t *testing.T) {
		result, err := env.service.LoginUser(context.Background(), request_models.LoginRequest{
			Email:    "ana@example.com",
			Password: testPassword,
		})
		require.NoError(t, err)

		payload, err := json.Marshal(result)
		require.NoError(t, err)
		assert.NotContains(t, string(payload), "password")
		assert.NotContains(t, string(payload), "$2a$")
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, unknownErr := env.service.LoginUser(context.Background(), request_models.LoginRequest{
			Email:    "nobody@example.com",
			Password: testPassword,
		})
		_, wrongErr := env.service.LoginUser(context.Background(), request_models.LoginRequest{
			Email:    "ana@example.com",
			Password: "not the password",
		})

		assert.ErrorIs(t, unknownErr, utils.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, utils.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})
}

func TestLoginAdmin(t *testing.T) {
	env := newAuthFixture(t)
	require.NoError(t, env.admins.Insert(context.Background(), &db_models.Admin{
		Name:         "Root",
		Email:        "root@example.com",
		PasswordHash: mustHash(t, testPassword),
		Category:     db_models.Category{Name: "admin"},
	}))

	result, err := env.service.LoginAdmin(context.Background(), request_models.LoginRequest{
		Email:    "root@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", result.Admin.Category)

	claims, err := env.maker.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", claims.Email)

	// A user with the same email must not be able to log in as admin.
	_, err = env.service.LoginAdmin(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginArtist(t *testing.T) {
	env := newAuthFixture(t)
	require.NoError(t, env.artists.Insert(context.Background(), &db_models.Artist{
		Name:         "Caetano",
		Email:        "caetano@example.com",
		PasswordHash: mustHash(t, testPassword),
		Category:     db_models.Category{Name: "artist"},
		Country:      db_models.Country{Name: "Brazil"},
	}))

	result, err := env.service.LoginArtist(context.Background(), request_models.LoginRequest{
		Email:    "caetano@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	assert.Equal(t, "Brazil", result.Artist.Country)
	assert.Equal(t, "artist", result.Artist.Category)
}

func TestActivateProfile(t *testing.T) {
	env := newAuthFixture(t)

	owner := &db_models.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: mustHash(t, testPassword),
	}
	env.users.add(owner)

	other := &db_models.User{
		Name:         "Bruno",
		Email:        "bruno@example.com",
		PasswordHash: mustHash(t, testPassword),
	}
	env.users.add(other)

	owned := &db_models.Profile{Name: "Ana's kids", UserID: owner.ID}
	require.NoError(t, env.profiles.CreateWithinQuota(context.Background(), owned, 10))

	foreign := &db_models.Profile{Name: "Bruno main", UserID: other.ID}
	require.NoError(t, env.profiles.CreateWithinQuota(context.Background(), foreign, 10))

	t.Run("success carries both claims", func(t *testing.T) {
		result, err := env.service.ActivateProfile(context.Background(), "ana@example.com", owned.ID.String())
		require.NoError(t, err)

		claims, err := env.maker.Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", claims.Email)
		assert.Equal(t, owned.ID.String(), claims.ProfileID)
	})

	t.Run("someone else's profile reads as not found", func(t *testing.T) {
		_, err := env.service.ActivateProfile(context.Background(), "ana@example.com", foreign.ID.String())
		assert.ErrorIs(t, err, utils.ErrProfileNotFound)
	})

	t.Run("nonexistent profile id", func(t *testing.T) {
		_, err := env.service.ActivateProfile(context.Background(), "ana@example.com", uuid.NewString())
		assert.ErrorIs(t, err, utils.ErrProfileNotFound)
	})
}
