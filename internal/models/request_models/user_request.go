package request_models

type CreateUserRequest struct {
	Name            string `json:"name" binding:"required,min=3,max=50"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Image           string `json:"image" binding:"omitempty,url"`
	CPF             string `json:"cpf" binding:"omitempty"`
	PlanID          string `json:"plan_id" binding:"required,uuid"`
}

type UpdateUserRequest struct {
	Name            string `json:"name" binding:"omitempty,min=3,max=50"`
	Image           string `json:"image" binding:"omitempty,url"`
	Password        string `json:"password" binding:"omitempty,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"omitempty"`
	PlanID          string `json:"plan_id" binding:"omitempty,uuid"`
}
