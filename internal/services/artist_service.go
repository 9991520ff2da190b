package services

import (
	"context"

	"melodia/internal/models/db_models"
	"melodia/internal/models/request_models"
	"melodia/internal/models/response_models"
	"melodia/internal/repositories"
	"melodia/pkg/utils"
)

type ArtistServiceInterface interface {
	CreateArtist(ctx context.Context, request request_models.CreateArtistRequest) (*response_models.ArtistView, error)
	GetAllArtists(ctx context.Context) ([]response_models.ArtistView, error)
	GetArtistById(ctx context.Context, id string) (*response_models.ArtistView, error)
	UpdateArtist(ctx context.Context, id string, request request_models.UpdateArtistRequest) (*response_models.ArtistView, error)
	DeleteArtist(ctx context.Context, id string) error
}

type ArtistService struct {
	artistRepo   repositories.ArtistRepository
	countryRepo  repositories.CountryRepository
	categoryRepo repositories.CategoryRepository
}

func NewArtistService(
	artistRepo repositories.ArtistRepository,
	countryRepo repositories.CountryRepository,
	categoryRepo repositories.CategoryRepository,
) ArtistServiceInterface {
	return &ArtistService{
		artistRepo:   artistRepo,
		countryRepo:  countryRepo,
		categoryRepo: categoryRepo,
	}
}

func (a *ArtistService) CreateArtist(ctx context.Context, request request_models.CreateArtistRequest) (*response_models.ArtistView, error) {

	if err := utils.VerifyPasswordConfirmation(request.Password, request.ConfirmPassword); err != nil {
		return nil, err
	}

	existing, err := a.artistRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	country, err := a.countryRepo.FindById(ctx, request.CountryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrRecordNotFound
	}

	category, err := a.categoryRepo.FindByName(ctx, "artist")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrRecordNotFound
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newArtist := &db_models.Artist{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Image:        request.Image,
		CPF:          request.CPF,
		About:        request.About,
		CategoryID:   category.ID,
		CountryID:    country.ID,
	}

	if err := a.artistRepo.Insert(ctx, newArtist); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ArtistView{
		ID:       newArtist.ID,
		Name:     newArtist.Name,
		Email:    newArtist.Email,
		Image:    newArtist.Image,
		About:    newArtist.About,
		Country:  country.Name,
		Category: category.Name,
	}, nil
}

func (a *ArtistService) GetAllArtists(ctx context.Context) ([]response_models.ArtistView, error) {

	artists, err := a.artistRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.ArtistView, 0, len(artists))
	for _, artist := range artists {
		views = append(views, response_models.ArtistView{
			ID:    artist.ID,
			Name:  artist.Name,
			Image: artist.Image,
		})
	}

	return views, nil
}

func (a *ArtistService) GetArtistById(ctx context.Context, id string) (*response_models.ArtistView, error) {

	artist, err := a.artistRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if artist == nil {
		return nil, utils.ErrRecordNotFound
	}

	view := toArtistView(artist)
	return &view, nil
}

func (a *ArtistService) UpdateArtist(ctx context.Context, id string, request request_models.UpdateArtistRequest) (*response_models.ArtistView, error) {

	artist, err := a.artistRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if artist == nil {
		return nil, utils.ErrRecordNotFound
	}

	if request.Password != "" {
		if err := utils.VerifyPasswordConfirmation(request.Password, request.ConfirmPassword); err != nil {
			return nil, err
		}
		hashedPassword, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		artist.PasswordHash = hashedPassword
	}

	if request.Name != "" {
		artist.Name = request.Name
	}
	if request.Image != "" {
		artist.Image = request.Image
	}
	if request.About != "" {
		artist.About = request.About
	}
	if request.CountryID != "" {
		country, err := a.countryRepo.FindById(ctx, request.CountryID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if country == nil {
			return nil, utils.ErrRecordNotFound
		}
		artist.CountryID = country.ID
		artist.Country = *country
	}

	if err := a.artistRepo.Update(ctx, artist); err != nil {
		return nil, utils.ErrDatabaseError
	}

	view := toArtistView(artist)
	return &view, nil
}

func (a *ArtistService) DeleteArtist(ctx context.Context, id string) error {

	artist, err := a.artistRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if artist == nil {
		return utils.ErrRecordNotFound
	}

	if err := a.artistRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
