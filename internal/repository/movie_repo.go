// internal/repository/movie_repo.go
package repository

import (
	"sort"
	"sync"

	"github.com/chang085/Recommendation-system/internal/apperr"
	"github.com/chang085/Recommendation-system/internal/models"
)

// MovieRepository es el catálogo en memoria. Se carga una vez al arrancar
// y después es de solo lectura; All devuelve copias para que nadie itere
// sobre el estado interno.
type MovieRepository struct {
	mu     sync.RWMutex
	order  []int // ids en orden de inserción
	movies map[int]models.Movie
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{movies: make(map[int]models.Movie)}
}

func (r *MovieRepository) Load(ms []models.Movie) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range ms {
		if _, ok := r.movies[m.MovieID]; !ok {
			r.order = append(r.order, m.MovieID)
		}
		r.movies[m.MovieID] = m
	}
}

func (r *MovieRepository) GetByID(movieID int) (models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.movies[movieID]
	if !ok {
		return models.Movie{}, apperr.ErrNotFound
	}
	return m, nil
}

// All devuelve el catálogo en orden de inserción.
func (r *MovieRepository) All() []models.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Movie, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.movies[id])
	}
	return out
}

func (r *MovieRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.movies)
}

// Top por rating promedio o por vistas. Empates: orden de inserción,
// gracias al sort estable.
func (r *MovieRepository) Top(metric string, limit int) []models.Movie {
	out := r.All()

	if metric == "views" {
		sort.SliceStable(out, func(i, j int) bool { return out[i].ViewCount > out[j].ViewCount })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].AvgRating > out[j].AvgRating })
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
