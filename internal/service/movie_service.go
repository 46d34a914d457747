// internal/service/movie_service.go
package service

import (
	"github.com/chang085/Recommendation-system/internal/models"
	"github.com/chang085/Recommendation-system/internal/repository"
)

type MovieService struct {
	movies *repository.MovieRepository
}

func NewMovieService(m *repository.MovieRepository) *MovieService {
	return &MovieService{movies: m}
}

func (s *MovieService) GetMovie(id int) (models.Movie, error) {
	return s.movies.GetByID(id)
}

func (s *MovieService) All() []models.Movie {
	return s.movies.All()
}

func (s *MovieService) Top(metric string, limit int) []models.Movie {
	return s.movies.Top(metric, limit)
}
