package db_models

import (
	"gorm.io/datatypes"
)

// Plan is a subscription tier. Accounts is the hard ceiling on how many
// Profiles a subscribed User may own; 0 means no profiles at all.
type Plan struct {
	BaseModel
	Name        string `gorm:"uniqueIndex"`
	Description *string
	Accounts    int    `gorm:"not null;default:0"`
	PriceMinor  int64  // 999 = $9.99
	Currency    string `gorm:"size:3"`
	IsActive    bool   `gorm:"default:true"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
