package db_models

import (
	"github.com/google/uuid"
)

type Song struct {
	BaseModel
	Name    string
	SongURL string

	AlbumID  uuid.UUID `gorm:"index;not null"`
	ArtistID uuid.UUID `gorm:"index;not null"`
}
