package request_models

type CreateArtistRequest struct {
	Name            string `json:"name" binding:"required,min=3,max=50"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Image           string `json:"image" binding:"omitempty,url"`
	CPF             string `json:"cpf" binding:"omitempty"`
	About           string `json:"about" binding:"omitempty,max=2000"`
	CountryID       string `json:"country_id" binding:"required,uuid"`
}

type UpdateArtistRequest struct {
	Name            string `json:"name" binding:"omitempty,min=3,max=50"`
	Image           string `json:"image" binding:"omitempty,url"`
	About           string `json:"about" binding:"omitempty,max=2000"`
	Password        string `json:"password" binding:"omitempty,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"omitempty"`
	CountryID       string `json:"country_id" binding:"omitempty,uuid"`
}
