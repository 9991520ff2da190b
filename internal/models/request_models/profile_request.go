package request_models

type CreateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=50"`
	Image string `json:"image" binding:"omitempty,url"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"omitempty,min=2,max=50"`
	Image string `json:"image" binding:"omitempty,url"`
}
