package request_models

type CreateAlbumRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=120"`
	Image    string `json:"image" binding:"omitempty,url"`
	Year     int    `json:"year" binding:"omitempty,min=1900"`
	ArtistID string `json:"artist_id" binding:"required,uuid"`
}

type CreateSongRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=120"`
	SongURL  string `json:"song_url" binding:"required,url"`
	AlbumID  string `json:"album_id" binding:"required,uuid"`
	ArtistID string `json:"artist_id" binding:"required,uuid"`
}
