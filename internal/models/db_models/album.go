package db_models

import (
	"github.com/google/uuid"
)

type Album struct {
	BaseModel
	Name  string
	Image string
	Year  int

	ArtistID uuid.UUID `gorm:"index;not null"`

	Songs []Song `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
}
