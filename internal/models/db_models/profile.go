package db_models

import (
	"github.com/google/uuid"
)

// Profile is a viewing sub-identity owned by exactly one User. Creation goes
// through the quota-checked path only; the plan's account limit caps how many
// a user may own.
type Profile struct {
	BaseModel
	Name  string
	Image string

	// IsDefault marks the platform's curated default profile whose playlists
	// seed the home page.
	IsDefault bool `gorm:"default:false"`

	UserID uuid.UUID `gorm:"index;not null"`

	Playlists         []Playlist `gorm:"foreignKey:ProfileID"`
	FavoritePlaylists []Playlist `gorm:"many2many:profile_favorite_playlists"`
}
