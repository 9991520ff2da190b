package services

import (
	"context"
	"errors"

	"melodia/internal/models/db_models"
	"melodia/internal/models/request_models"
	"melodia/internal/models/response_models"
	"melodia/internal/repositories"
	"melodia/pkg/utils"
)

// ProfileServiceInterface manages the quota-gated viewing profiles of a
// user. Every operation resolves the owner from the claim email; client
// supplied user ids are never trusted.
type ProfileServiceInterface interface {
	Create(ctx context.Context, email string, request request_models.CreateProfileRequest) (*response_models.ProfileCreatedResponse, error)
	FindAll(ctx context.Context, email string) ([]response_models.ProfileView, error)
	FindOne(ctx context.Context, email, profileID string) (*response_models.ProfileView, error)
	Update(ctx context.Context, email, activeProfileID, profileID string, request request_models.UpdateProfileRequest) (*response_models.ProfileView, error)
	Delete(ctx context.Context, email, activeProfileID, profileID string) error
	FavoritePlaylist(ctx context.Context, email, activeProfileID, playlistID string) error
	UnfavoritePlaylist(ctx context.Context, email, activeProfileID, playlistID string) error
	FindFavorites(ctx context.Context, email, activeProfileID string) ([]response_models.PlaylistView, error)
}

type ProfileService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) ProfileServiceInterface {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (p *ProfileService) Create(ctx context.Context, email string, request request_models.CreateProfileRequest) (*response_models.ProfileCreatedResponse, error) {

	user, err := p.userRepo.FindByEmailWithPlanAndProfiles(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		return nil, utils.ErrInvalidToken
	}

	// No plan means no capacity, never unlimited.
	if user.Plan == nil {
		return nil, utils.ErrPlanNotAssigned
	}

	if !utils.CanCreateProfile(len(user.Profiles), user.Plan.Accounts) {
		return nil, utils.ErrProfileLimitReached
	}

	profile := &db_models.Profile{
		Name:   request.Name,
		Image:  request.Image,
		UserID: user.ID,
	}

	// The repository re-checks the count transactionally, so concurrent
	// creations cannot overshoot the limit.
	if err := p.profileRepo.CreateWithinQuota(ctx, profile, user.Plan.Accounts); err != nil {
		if errors.Is(err, utils.ErrProfileLimitReached) {
			return nil, utils.ErrProfileLimitReached
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ProfileCreatedResponse{
		ID:    profile.ID,
		Name:  profile.Name,
		Image: profile.Image,
		User: response_models.ProfileOwner{
			ID:   user.ID,
			Name: user.Name,
		},
	}, nil
}

// FindAll returns every profile owned by the caller. Zero profiles is a
// valid empty result, not an error.
func (p *ProfileService) FindAll(ctx context.Context, email string) ([]response_models.ProfileView, error) {

	user, err := p.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		return nil, utils.ErrInvalidToken
	}

	profiles, err := p.profileRepo.FindAllByUser(ctx, user.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.ProfileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, toProfileView(&profile))
	}

	return views, nil
}

func (p *ProfileService) FindOne(ctx context.Context, email, profileID string) (*response_models.ProfileView, error) {

	user, err := p.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		return nil, utils.ErrInvalidToken
	}

	profile, err := p.profileRepo.FindOneInUser(ctx, user.ID.String(), profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	view := toProfileView(profile)
	return &view, nil
}

func (p *ProfileService) Update(ctx context.Context, email, activeProfileID, profileID string, request request_models.UpdateProfileRequest) (*response_models.ProfileView, error) {

	profile, err := p.resolveOwnedActiveProfile(ctx, email, activeProfileID, profileID)
	if err != nil {
		return nil, err
	}

	if request.Name != "" {
		profile.Name = request.Name
	}
	if request.Image != "" {
		profile.Image = request.Image
	}

	if err := p.profileRepo.Update(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	view := toProfileView(profile)
	return &view, nil
}

func (p *ProfileService) Delete(ctx context.Context, email, activeProfileID, profileID string) error {

	profile, err := p.resolveOwnedActiveProfile(ctx, email, activeProfileID, profileID)
	if err != nil {
		return err
	}

	if err := p.profileRepo.Delete(ctx, profile.UserID.String(), profile.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// FavoritePlaylist adds a playlist to the active profile's favorites.
// Favorites belong to the profile in the token, never to one named by the
// client.
func (p *ProfileService) FavoritePlaylist(ctx context.Context, email, activeProfileID, playlistID string) error {

	profile, err := p.resolveOwnedActiveProfile(ctx, email, activeProfileID, activeProfileID)
	if err != nil {
		return err
	}

	if err := p.profileRepo.AddFavorite(ctx, profile, playlistID); err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			return utils.ErrRecordNotFound
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (p *ProfileService) UnfavoritePlaylist(ctx context.Context, email, activeProfileID, playlistID string) error {

	profile, err := p.resolveOwnedActiveProfile(ctx, email, activeProfileID, activeProfileID)
	if err != nil {
		return err
	}

	if err := p.profileRepo.RemoveFavorite(ctx, profile, playlistID); err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			return utils.ErrRecordNotFound
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (p *ProfileService) FindFavorites(ctx context.Context, email, activeProfileID string) ([]response_models.PlaylistView, error) {

	profile, err := p.resolveOwnedActiveProfile(ctx, email, activeProfileID, activeProfileID)
	if err != nil {
		return nil, err
	}

	playlists, err := p.profileRepo.FindFavorites(ctx, profile.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.PlaylistView, 0, len(playlists))
	for _, playlist := range playlists {
		views = append(views, response_models.PlaylistView{
			ID:      playlist.ID,
			Name:    playlist.Name,
			Image:   playlist.Image,
			Private: playlist.Private,
		})
	}

	return views, nil
}

// resolveOwnedActiveProfile enforces both mutation preconditions: the target
// must be the profile embedded in the session token, and ownership is
// re-confirmed server side before anything changes.
func (p *ProfileService) resolveOwnedActiveProfile(ctx context.Context, email, activeProfileID, profileID string) (*db_models.Profile, error) {

	if activeProfileID == "" || activeProfileID != profileID {
		return nil, utils.ErrProfileNotFound
	}

	user, err := p.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		return nil, utils.ErrInvalidToken
	}

	profile, err := p.profileRepo.FindOneInUser(ctx, user.ID.String(), profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	return profile, nil
}

func toProfileView(profile *db_models.Profile) response_models.ProfileView {
	return response_models.ProfileView{
		ID:        profile.ID,
		Name:      profile.Name,
		Image:     profile.Image,
		IsDefault: profile.IsDefault,
	}
}
