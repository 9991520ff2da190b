package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"melodia/internal/models/db_models"
)

// CatalogRepository covers albums and songs together; both are thin
// reference data hanging off an artist.
type CatalogRepository interface {
	InsertAlbum(ctx context.Context, album *db_models.Album) error
	FindAlbumById(ctx context.Context, id string) (*db_models.Album, error)
	FindAllAlbums(ctx context.Context) ([]db_models.Album, error)
	InsertSong(ctx context.Context, song *db_models.Song) error
	FindSongById(ctx context.Context, id string) (*db_models.Song, error)
	FindAllSongs(ctx context.Context) ([]db_models.Song, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (c *catalogRepository) InsertAlbum(ctx context.Context, album *db_models.Album) error {
	return c.db.WithContext(ctx).Create(album).Error
}

func (c *catalogRepository) FindAlbumById(ctx context.Context, id string) (*db_models.Album, error) {
	var album db_models.Album
	err := c.db.WithContext(ctx).Preload("Songs").First(&album, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &album, nil
}

func (c *catalogRepository) FindAllAlbums(ctx context.Context) ([]db_models.Album, error) {
	var albums []db_models.Album
	err := c.db.WithContext(ctx).Find(&albums).Error
	if err != nil {
		return nil, err
	}
	return albums, nil
}

func (c *catalogRepository) InsertSong(ctx context.Context, song *db_models.Song) error {
	return c.db.WithContext(ctx).Create(song).Error
}

func (c *catalogRepository) FindSongById(ctx context.Context, id string) (*db_models.Song, error) {
	var song db_models.Song
	err := c.db.WithContext(ctx).First(&song, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &song, nil
}

func (c *catalogRepository) FindAllSongs(ctx context.Context) ([]db_models.Song, error) {
	var songs []db_models.Song
	err := c.db.WithContext(ctx).Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}
