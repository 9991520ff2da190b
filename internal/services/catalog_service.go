package services

import (
	"context"

	"github.com/google/uuid"

	"melodia/internal/models/db_models"
	"melodia/internal/models/request_models"
	"melodia/internal/models/response_models"
	"melodia/internal/repositories"
	"melodia/pkg/utils"
)

type CatalogServiceInterface interface {
	CreateAlbum(ctx context.Context, request request_models.CreateAlbumRequest) (*response_models.AlbumView, error)
	GetAllAlbums(ctx context.Context) ([]response_models.AlbumView, error)
	GetAlbumById(ctx context.Context, id string) (*response_models.AlbumView, error)
	CreateSong(ctx context.Context, request request_models.CreateSongRequest) (*response_models.SongView, error)
	GetAllSongs(ctx context.Context) ([]response_models.SongView, error)
	GetSongById(ctx context.Context, id string) (*response_models.SongView, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
	artistRepo  repositories.ArtistRepository
}

func NewCatalogService(
	catalogRepo repositories.CatalogRepository,
	artistRepo repositories.ArtistRepository,
) CatalogServiceInterface {
	return &CatalogService{
		catalogRepo: catalogRepo,
		artistRepo:  artistRepo,
	}
}

func (c *CatalogService) CreateAlbum(ctx context.Context, request request_models.CreateAlbumRequest) (*response_models.AlbumView, error) {

	artist, err := c.artistRepo.FindById(ctx, request.ArtistID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if artist == nil {
		return nil, utils.ErrRecordNotFound
	}

	album := &db_models.Album{
		Name:     request.Name,
		Image:    request.Image,
		Year:     request.Year,
		ArtistID: artist.ID,
	}

	if err := c.catalogRepo.InsertAlbum(ctx, album); err != nil {
		return nil, utils.ErrDatabaseError
	}

	view := toAlbumView(album)
	return &view, nil
}

func (c *CatalogService) GetAllAlbums(ctx context.Context) ([]response_models.AlbumView, error) {

	albums, err := c.catalogRepo.FindAllAlbums(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.AlbumView, 0, len(albums))
	for i := range albums {
		views = append(views, toAlbumView(&albums[i]))
	}

	return views, nil
}

func (c *CatalogService) GetAlbumById(ctx context.Context, id string) (*response_models.AlbumView, error) {

	album, err := c.catalogRepo.FindAlbumById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if album == nil {
		return nil, utils.ErrRecordNotFound
	}

	view := toAlbumView(album)
	return &view, nil
}

func (c *CatalogService) CreateSong(ctx context.Context, request request_models.CreateSongRequest) (*response_models.SongView, error) {

	album, err := c.catalogRepo.FindAlbumById(ctx, request.AlbumID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if album == nil {
		return nil, utils.ErrRecordNotFound
	}

	artistID, err := uuid.Parse(request.ArtistID)
	if err != nil || artistID != album.ArtistID {
		return nil, utils.ErrInvalidInput
	}

	song := &db_models.Song{
		Name:     request.Name,
		SongURL:  request.SongURL,
		AlbumID:  album.ID,
		ArtistID: artistID,
	}

	if err := c.catalogRepo.InsertSong(ctx, song); err != nil {
		return nil, utils.ErrDatabaseError
	}

	view := toSongView(song)
	return &view, nil
}

func (c *CatalogService) GetAllSongs(ctx context.Context) ([]response_models.SongView, error) {

	songs, err := c.catalogRepo.FindAllSongs(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.SongView, 0, len(songs))
	for i := range songs {
		views = append(views, toSongView(&songs[i]))
	}

	return views, nil
}

func (c *CatalogService) GetSongById(ctx context.Context, id string) (*response_models.SongView, error) {

	song, err := c.catalogRepo.FindSongById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if song == nil {
		return nil, utils.ErrRecordNotFound
	}

	view := toSongView(song)
	return &view, nil
}

func toAlbumView(album *db_models.Album) response_models.AlbumView {
	view := response_models.AlbumView{
		ID:       album.ID,
		Name:     album.Name,
		Image:    album.Image,
		Year:     album.Year,
		ArtistID: album.ArtistID,
	}
	for i := range album.Songs {
		view.Songs = append(view.Songs, toSongView(&album.Songs[i]))
	}
	return view
}

func toSongView(song *db_models.Song) response_models.SongView {
	return response_models.SongView{
		ID:       song.ID,
		Name:     song.Name,
		SongURL:  song.SongURL,
		AlbumID:  song.AlbumID,
		ArtistID: song.ArtistID,
	}
}
