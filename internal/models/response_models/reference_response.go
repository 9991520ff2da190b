package response_models

import "github.com/google/uuid"

type CountryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CategoryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
