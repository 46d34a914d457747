package models

// Movie es una película del catálogo en memoria. viewCount y avgRating
// vienen fijos del CSV de carga; el catálogo no se edita en runtime.
type Movie struct {
	MovieID   int     `json:"movieId"`
	Title     string  `json:"title"`
	Genre     string  `json:"genre"` // puede traer varios géneros ("Action|Crime")
	Year      int     `json:"year,omitempty"`
	ViewCount int     `json:"viewCount"`
	AvgRating float64 `json:"avgRating"`
}
