package db_models

import (
	"github.com/google/uuid"
)

type Artist struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Image        string
	CPF          string
	About        string

	CategoryID uuid.UUID `gorm:"index"`
	Category   Category  `gorm:"foreignKey:CategoryID"`

	CountryID uuid.UUID `gorm:"index"`
	Country   Country   `gorm:"foreignKey:CountryID"`

	Albums []Album `gorm:"foreignKey:ArtistID"`
}
