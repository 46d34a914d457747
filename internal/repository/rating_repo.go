package repository

import (
	"fmt"
	"sync"

	"github.com/chang085/Recommendation-system/internal/apperr"
	"github.com/chang085/Recommendation-system/internal/models"
)

// RatingRepository guarda un vector de ratings por usuario. Get y All
// devuelven copias: una estrategia puede estar iterando todos los vectores
// mientras un registro inserta uno nuevo, y nadie debe ver mutaciones a
// mitad de camino.
type RatingRepository struct {
	mu      sync.RWMutex
	order   []int
	vectors map[int]models.RatingVector
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{vectors: make(map[int]models.RatingVector)}
}

func (r *RatingRepository) Load(entries []models.UserRatings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entries {
		r.putLocked(e.UserID, e.Ratings)
	}
}

func (r *RatingRepository) Put(userID int, vec models.RatingVector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.putLocked(userID, vec)
}

func (r *RatingRepository) putLocked(userID int, vec models.RatingVector) {
	if _, ok := r.vectors[userID]; !ok {
		r.order = append(r.order, userID)
	}
	r.vectors[userID] = vec
}

func (r *RatingRepository) Get(userID int) (models.RatingVector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vec, ok := r.vectors[userID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := make(models.RatingVector, len(vec))
	copy(out, vec)
	return out, nil
}

// All devuelve todos los vectores en orden de inserción (orden del archivo,
// id ascendente), copiados.
func (r *RatingRepository) All() []models.UserRatings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.UserRatings, 0, len(r.order))
	for _, id := range r.order {
		vec := make(models.RatingVector, len(r.vectors[id]))
		copy(vec, r.vectors[id])
		out = append(out, models.UserRatings{UserID: id, Ratings: vec})
	}
	return out
}

// SetRating edita un slot del vector del usuario (rating 0 = borrar).
// Los slots van por movieId: slot = movieId - 1.
func (r *RatingRepository) SetRating(userID, movieID, rating int) error {
	if rating < 0 || rating > 10 {
		return apperr.Validation("rating %d fuera de rango [0,10]", rating)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	vec, ok := r.vectors[userID]
	if !ok {
		return apperr.ErrNotFound
	}
	slot := movieID - 1
	if slot < 0 || slot >= len(vec) {
		return fmt.Errorf("movieId %d fuera del vector de %d slots: %w", movieID, len(vec), apperr.ErrNotFound)
	}
	vec[slot] = rating
	return nil
}
