package service

import (
	"github.com/chang085/Recommendation-system/internal/apperr"
	"github.com/chang085/Recommendation-system/internal/models"
	"github.com/chang085/Recommendation-system/internal/repository"
)

// RatingService edita el vector de ratings del usuario logueado. El
// catálogo no se toca: viewCount y avgRating son hechos de carga, no se
// recalculan por ediciones de sesión.
type RatingService struct {
	ratings *repository.RatingRepository
	movies  *repository.MovieRepository
}

func NewRatingService(r *repository.RatingRepository, m *repository.MovieRepository) *RatingService {
	return &RatingService{ratings: r, movies: m}
}

// SetRating valida que la película exista y escribe el slot (0 = borrar).
func (s *RatingService) SetRating(userID, movieID, rating int) error {
	if userID <= 0 {
		return apperr.ErrSessionRequired
	}
	if _, err := s.movies.GetByID(movieID); err != nil {
		return err
	}
	return s.ratings.SetRating(userID, movieID, rating)
}

// GetVector devuelve el vector completo del usuario (copia).
func (s *RatingService) GetVector(userID int) (models.RatingVector, error) {
	if userID <= 0 {
		return nil, apperr.ErrSessionRequired
	}
	return s.ratings.Get(userID)
}
