package db_models

import (
	"github.com/google/uuid"
)

// Admin lives in its own table; an admin and a user may share an email value.
type Admin struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Image        string
	CPF          string

	CategoryID uuid.UUID `gorm:"index"`
	Category   Category  `gorm:"foreignKey:CategoryID"`
}
