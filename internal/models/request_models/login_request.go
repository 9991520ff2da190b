package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type ActivateProfileRequest struct {
	ProfileID string `json:"profile_id" binding:"required,uuid"`
}
