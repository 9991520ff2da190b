package response_models

type UserLoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type AdminLoginResponse struct {
	Token string    `json:"token"`
	Admin AdminView `json:"admin"`
}

type ArtistLoginResponse struct {
	Token  string     `json:"token"`
	Artist ArtistView `json:"artist"`
}

// TokenResponse is returned by profile activation: a fresh token scoped to
// the chosen profile, nothing else.
type TokenResponse struct {
	Token string `json:"token"`
}
