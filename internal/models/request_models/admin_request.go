package request_models

type CreateAdminRequest struct {
	Name            string `json:"name" binding:"required,min=3,max=50"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Image           string `json:"image" binding:"omitempty,url"`
	CPF             string `json:"cpf" binding:"omitempty"`
}
