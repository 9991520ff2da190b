package services

import (
	"context"

	"melodia/internal/models/db_models"
	"melodia/internal/models/request_models"
	"melodia/internal/models/response_models"
	"melodia/internal/repositories"
	"melodia/pkg/utils"
)

type CountryServiceInterface interface {
	CreateCountry(ctx context.Context, request request_models.CreateCountryRequest) (*response_models.CountryView, error)
	GetAllCountries(ctx context.Context) ([]response_models.CountryView, error)
	GetCountryById(ctx context.Context, id string) (*response_models.CountryView, error)
	UpdateCountry(ctx context.Context, id string, request request_models.UpdateCountryRequest) (*response_models.CountryView, error)
	DeleteCountry(ctx context.Context, id string) error
}

type CountryService struct {
	countryRepo repositories.CountryRepository
}

func NewCountryService(countryRepo repositories.CountryRepository) CountryServiceInterface {
	return &CountryService{
		countryRepo: countryRepo,
	}
}

func (c *CountryService) CreateCountry(ctx context.Context, request request_models.CreateCountryRequest) (*response_models.CountryView, error) {

	country := &db_models.Country{Name: request.Name}

	if err := c.countryRepo.Insert(ctx, country); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CountryView{ID: country.ID, Name: country.Name}, nil
}

func (c *CountryService) GetAllCountries(ctx context.Context) ([]response_models.CountryView, error) {

	countries, err := c.countryRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.CountryView, 0, len(countries))
	for _, country := range countries {
		views = append(views, response_models.CountryView{ID: country.ID, Name: country.Name})
	}

	return views, nil
}

func (c *CountryService) GetCountryById(ctx context.Context, id string) (*response_models.CountryView, error) {

	country, err := c.countryRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrRecordNotFound
	}

	return &response_models.CountryView{ID: country.ID, Name: country.Name}, nil
}

func (c *CountryService) UpdateCountry(ctx context.Context, id string, request request_models.UpdateCountryRequest) (*response_models.CountryView, error) {

	country, err := c.countryRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrRecordNotFound
	}

	country.Name = request.Name
	if err := c.countryRepo.Update(ctx, country); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CountryView{ID: country.ID, Name: country.Name}, nil
}

func (c *CountryService) DeleteCountry(ctx context.Context, id string) error {

	country, err := c.countryRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if country == nil {
		return utils.ErrRecordNotFound
	}

	if err := c.countryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
