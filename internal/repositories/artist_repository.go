package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"melodia/internal/models/db_models"
)

type ArtistRepository interface {
	Insert(ctx context.Context, artist *db_models.Artist) error
	FindByEmail(ctx context.Context, email string) (*db_models.Artist, error)
	FindById(ctx context.Context, id string) (*db_models.Artist, error)
	FindAll(ctx context.Context) ([]db_models.Artist, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, artist *db_models.Artist) error
	Delete(ctx context.Context, id string) error
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{
		db: db,
	}
}

func (a *artistRepository) Insert(ctx context.Context, artist *db_models.Artist) error {
	return a.db.WithContext(ctx).Create(artist).Error
}

func (a *artistRepository) FindByEmail(ctx context.Context, email string) (*db_models.Artist, error) {

	var artist db_models.Artist
	err := a.db.WithContext(ctx).
		Preload("Category").
		Preload("Country").
		First(&artist, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &artist, nil
}

func (a *artistRepository) FindById(ctx context.Context, id string) (*db_models.Artist, error) {
	var artist db_models.Artist
	err := a.db.WithContext(ctx).
		Preload("Category").
		Preload("Country").
		First(&artist, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &artist, nil
}

func (a *artistRepository) FindAll(ctx context.Context) ([]db_models.Artist, error) {
	var artists []db_models.Artist
	err := a.db.WithContext(ctx).Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (a *artistRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := a.db.WithContext(ctx).Model(&db_models.Artist{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (a *artistRepository) Update(ctx context.Context, artist *db_models.Artist) error {
	return a.db.WithContext(ctx).Save(artist).Error
}

func (a *artistRepository) Delete(ctx context.Context, id string) error {
	return a.db.WithContext(ctx).Delete(&db_models.Artist{}, "id = ?", id).Error
}
