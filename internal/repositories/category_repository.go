package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"melodia/internal/models/db_models"
)

type CategoryRepository interface {
	Insert(ctx context.Context, category *db_models.Category) error
	FindById(ctx context.Context, id string) (*db_models.Category, error)
	FindByName(ctx context.Context, name string) (*db_models.Category, error)
	FindAll(ctx context.Context) ([]db_models.Category, error)
	Update(ctx context.Context, category *db_models.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (c *categoryRepository) Insert(ctx context.Context, category *db_models.Category) error {
	return c.db.WithContext(ctx).Create(category).Error
}

func (c *categoryRepository) FindById(ctx context.Context, id string) (*db_models.Category, error) {
	var category db_models.Category
	err := c.db.WithContext(ctx).First(&category, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

// FindByName backs the role-label lookups ("user", "admin", "artist") made
// when principals are created.
func (c *categoryRepository) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	var category db_models.Category
	err := c.db.WithContext(ctx).First(&category, "name = ?", name).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

func (c *categoryRepository) FindAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := c.db.WithContext(ctx).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *categoryRepository) Update(ctx context.Context, category *db_models.Category) error {
	return c.db.WithContext(ctx).Save(category).Error
}

func (c *categoryRepository) Delete(ctx context.Context, id string) error {
	return c.db.WithContext(ctx).Delete(&db_models.Category{}, "id = ?", id).Error
}
