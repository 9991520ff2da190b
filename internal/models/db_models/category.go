package db_models

// Category is the role label attached to every principal variant:
// "user", "admin" or "artist".
type Category struct {
	BaseModel
	Name string `gorm:"unique;not null"`
}
