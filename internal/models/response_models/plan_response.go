package response_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PlanView struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Accounts    int            `json:"accounts"`
	PriceMinor  int64          `json:"price_minor"`
	Currency    string         `json:"currency"`
	IsActive    bool           `json:"is_active"`
	Features    datatypes.JSON `json:"features,omitempty"`
}
