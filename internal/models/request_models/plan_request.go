package request_models

type CreatePlanRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Accounts    int    `json:"accounts" binding:"min=0"`
	PriceMinor  int64  `json:"price_minor" binding:"min=0"`
	Currency    string `json:"currency" binding:"required,len=3"`
}
