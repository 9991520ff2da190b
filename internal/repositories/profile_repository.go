package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"melodia/internal/infra"
	"melodia/internal/models/db_models"
	"melodia/pkg/utils"
)

type ProfileRepository interface {
	// CreateWithinQuota inserts the profile only if the owner still has
	// fewer than limit profiles at commit time.
	CreateWithinQuota(ctx context.Context, profile *db_models.Profile, limit int) error
	FindAllByUser(ctx context.Context, userID string) ([]db_models.Profile, error)
	FindOneInUser(ctx context.Context, userID, profileID string) (*db_models.Profile, error)
	Update(ctx context.Context, profile *db_models.Profile) error
	Delete(ctx context.Context, userID, profileID string) error
	AddFavorite(ctx context.Context, profile *db_models.Profile, playlistID string) error
	RemoveFavorite(ctx context.Context, profile *db_models.Profile, playlistID string) error
	FindFavorites(ctx context.Context, profileID string) ([]db_models.Playlist, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// CreateWithinQuota re-checks the count under a row lock on the owning user,
// so two concurrent creations cannot both slip under the limit.
func (p *profileRepository) CreateWithinQuota(ctx context.Context, profile *db_models.Profile, limit int) (err error) {

	tx := infra.StartTransaction(p.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { infra.ReleaseTransaction(tx, err) }()

	var owner db_models.User
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&owner, "id = ?", profile.UserID).Error
	if err != nil {
		return err
	}

	var count int64
	err = tx.Model(&db_models.Profile{}).
		Where("user_id = ?", profile.UserID).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count >= int64(limit) {
		err = utils.ErrProfileLimitReached
		return err
	}

	err = tx.Create(profile).Error
	return err
}

func (p *profileRepository) FindAllByUser(ctx context.Context, userID string) ([]db_models.Profile, error) {
	var profiles []db_models.Profile
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindOneInUser is the membership lookup: the profile must both exist and be
// owned by userID, otherwise it does not exist as far as the caller knows.
func (p *profileRepository) FindOneInUser(ctx context.Context, userID, profileID string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, profileID).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (p *profileRepository) Update(ctx context.Context, profile *db_models.Profile) error {
	return p.db.WithContext(ctx).Save(profile).Error
}

func (p *profileRepository) Delete(ctx context.Context, userID, profileID string) error {
	return p.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, profileID).
		Delete(&db_models.Profile{}).Error
}

// AddFavorite links a playlist to the profile's favorites. An unknown
// playlist surfaces as ErrRecordNotFound; favoriting twice is a no-op since
// the join table upserts.
func (p *profileRepository) AddFavorite(ctx context.Context, profile *db_models.Profile, playlistID string) error {
	playlist, err := p.findPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}
	return p.db.WithContext(ctx).
		Model(profile).
		Association("FavoritePlaylists").
		Append(playlist)
}

func (p *profileRepository) RemoveFavorite(ctx context.Context, profile *db_models.Profile, playlistID string) error {
	playlist, err := p.findPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}
	return p.db.WithContext(ctx).
		Model(profile).
		Association("FavoritePlaylists").
		Delete(playlist)
}

func (p *profileRepository) FindFavorites(ctx context.Context, profileID string) ([]db_models.Playlist, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).
		Preload("FavoritePlaylists").
		First(&profile, "id = ?", profileID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return profile.FavoritePlaylists, nil
}

func (p *profileRepository) findPlaylist(ctx context.Context, playlistID string) (*db_models.Playlist, error) {
	var playlist db_models.Playlist
	err := p.db.WithContext(ctx).First(&playlist, "id = ?", playlistID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrRecordNotFound
		}
		return nil, err
	}

	return &playlist, nil
}
