package response_models

import "github.com/google/uuid"

type AlbumView struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Image    string     `json:"image,omitempty"`
	Year     int        `json:"year,omitempty"`
	ArtistID uuid.UUID  `json:"artist_id"`
	Songs    []SongView `json:"songs,omitempty"`
}

type SongView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	SongURL  string    `json:"song_url"`
	AlbumID  uuid.UUID `json:"album_id"`
	ArtistID uuid.UUID `json:"artist_id"`
}

type PlaylistView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Image   string    `json:"image,omitempty"`
	Private bool      `json:"private"`
}
