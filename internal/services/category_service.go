package services

import (
	"context"

	"melodia/internal/models/db_models"
	"melodia/internal/models/request_models"
	"melodia/internal/models/response_models"
	"melodia/internal/repositories"
	"melodia/pkg/utils"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*response_models.CategoryView, error)
	GetAllCategories(ctx context.Context) ([]response_models.CategoryView, error)
	GetCategoryById(ctx context.Context, id string) (*response_models.CategoryView, error)
	UpdateCategory(ctx context.Context, id string, request request_models.UpdateCategoryRequest) (*response_models.CategoryView, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

func (c *CategoryService) CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*response_models.CategoryView, error) {

	existing, err := c.categoryRepo.FindByName(ctx, request.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateRecord
	}

	category := &db_models.Category{Name: request.Name}
	if err := c.categoryRepo.Insert(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CategoryView{ID: category.ID, Name: category.Name}, nil
}

func (c *CategoryService) GetAllCategories(ctx context.Context) ([]response_models.CategoryView, error) {

	categories, err := c.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, response_models.CategoryView{ID: category.ID, Name: category.Name})
	}

	return views, nil
}

func (c *CategoryService) GetCategoryById(ctx context.Context, id string) (*response_models.CategoryView, error) {

	category, err := c.categoryRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrRecordNotFound
	}

	return &response_models.CategoryView{ID: category.ID, Name: category.Name}, nil
}

func (c *CategoryService) UpdateCategory(ctx context.Context, id string, request request_models.UpdateCategoryRequest) (*response_models.CategoryView, error) {

	category, err := c.categoryRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrRecordNotFound
	}

	category.Name = request.Name
	if err := c.categoryRepo.Update(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CategoryView{ID: category.ID, Name: category.Name}, nil
}

func (c *CategoryService) DeleteCategory(ctx context.Context, id string) error {

	category, err := c.categoryRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrRecordNotFound
	}

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
