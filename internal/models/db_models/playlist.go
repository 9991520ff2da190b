package db_models

import (
	"github.com/google/uuid"
)

type Playlist struct {
	BaseModel
	Name    string
	Image   string
	Private bool `gorm:"default:false"`

	ProfileID uuid.UUID `gorm:"index;not null"`

	Songs []Song `gorm:"many2many:playlist_songs"`
}
