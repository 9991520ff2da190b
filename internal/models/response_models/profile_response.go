package response_models

import "github.com/google/uuid"

type ProfileView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	IsDefault bool      `json:"is_default"`
}

type ProfileOwner struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProfileCreatedResponse echoes the new profile together with its owner,
// mirroring what the create endpoint exposes.
type ProfileCreatedResponse struct {
	ID    uuid.UUID    `json:"id"`
	Name  string       `json:"name"`
	Image string       `json:"image,omitempty"`
	User  ProfileOwner `json:"user"`
}
