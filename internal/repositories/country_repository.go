package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"melodia/internal/models/db_models"
)

type CountryRepository interface {
	Insert(ctx context.Context, country *db_models.Country) error
	FindById(ctx context.Context, id string) (*db_models.Country, error)
	FindAll(ctx context.Context) ([]db_models.Country, error)
	Update(ctx context.Context, country *db_models.Country) error
	Delete(ctx context.Context, id string) error
}

type countryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

func (c *countryRepository) Insert(ctx context.Context, country *db_models.Country) error {
	return c.db.WithContext(ctx).Create(country).Error
}

func (c *countryRepository) FindById(ctx context.Context, id string) (*db_models.Country, error) {
	var country db_models.Country
	err := c.db.WithContext(ctx).First(&country, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &country, nil
}

func (c *countryRepository) FindAll(ctx context.Context) ([]db_models.Country, error) {
	var countries []db_models.Country
	err := c.db.WithContext(ctx).Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (c *countryRepository) Update(ctx context.Context, country *db_models.Country) error {
	return c.db.WithContext(ctx).Save(country).Error
}

func (c *countryRepository) Delete(ctx context.Context, id string) error {
	return c.db.WithContext(ctx).Delete(&db_models.Country{}, "id = ?", id).Error
}
