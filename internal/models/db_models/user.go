package db_models

import (
	"github.com/google/uuid"
)

// User is the internal projection of an end-user account. PasswordHash never
// leaves the repository layer; external callers see response_models.UserView.
type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Image        string
	CPF          string

	CategoryID uuid.UUID `gorm:"index"`
	Category   Category  `gorm:"foreignKey:CategoryID"`

	PlanID *uuid.UUID `gorm:"index"`
	Plan   *Plan      `gorm:"foreignKey:PlanID"`

	Profiles []Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
