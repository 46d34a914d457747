package models

import "time"

// RecItem es una entrada de la lista ordenada que devuelve cada estrategia.
// Score depende de la estrategia: rating promedio, rating propio, rating
// predicho o score acumulado de similitud.
type RecItem struct {
	MovieID   int     `bson:"movieId" json:"movieId"`
	Title     string  `bson:"title" json:"title"`
	Genre     string  `bson:"genre" json:"genre"`
	AvgRating float64 `bson:"avgRating" json:"avgRating"`
	Score     float64 `bson:"score" json:"score"`
}

// Recommendation es el historial que se guarda en Mongo (best-effort).
type Recommendation struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    int       `bson:"userId" json:"userId"`
	Strategy  string    `bson:"strategy" json:"strategy"`
	Items     []RecItem `bson:"items" json:"items"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
