package handler

import (
	"net/http"
	"strconv"

	"github.com/chang085/Recommendation-system/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: s}
}

// @Summary Catálogo completo
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.All())
}

// @Summary Película por id
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.Movie
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	m, err := h.svc.GetMovie(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// @Summary Top por rating promedio o por vistas
// @Tags movies
// @Produce json
// @Param by query string false "rating|views (default: rating)"
// @Param limit query int false "límite (default: 5)"
// @Success 200 {array} models.Movie
// @Router /movies/top [get]
func (h *MovieHandler) Top(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("by")
	if metric == "" {
		metric = "rating"
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 5
	}

	writeJSON(w, http.StatusOK, h.svc.Top(metric, limit))
}
