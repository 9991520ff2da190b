package request_models

type CreateCountryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=80"`
}

type UpdateCountryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=80"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}
