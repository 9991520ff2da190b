package db_models

type Country struct {
	BaseModel
	Name string `gorm:"unique;not null"`
}
