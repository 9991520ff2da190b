package response_models

import "github.com/google/uuid"

// External projections of the principal tables. None of them carry the
// password hash; the conversion happens once at the service boundary.

type UserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Image    string    `json:"image,omitempty"`
	Category string    `json:"category,omitempty"`
	Plan     *PlanView `json:"plan,omitempty"`
}

type AdminView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Category string    `json:"category"`
}

type ArtistView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Image    string    `json:"image,omitempty"`
	About    string    `json:"about,omitempty"`
	Country  string    `json:"country,omitempty"`
	Category string    `json:"category,omitempty"`
}
