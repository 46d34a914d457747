package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chang085/Recommendation-system/internal/service"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(s *service.RatingService) *RatingHandler { return &RatingHandler{svc: s} }

type ratingRequest struct {
	MovieID int `json:"movieId"`
	Rating  int `json:"rating"`
}

// @Summary Vector de ratings del usuario logueado
// @Tags ratings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.UserRatings
// @Router /me/ratings [get]
func (h *RatingHandler) GetMyRatings(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	vec, err := h.svc.GetVector(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"userId":  userID,
		"ratings": vec,
	})
}

// @Summary Editar un rating del vector propio
// @Description rating en [0,10]; 0 lo borra
// @Tags ratings
// @Security BearerAuth
// @Accept json
// @Param body body ratingRequest true "rating"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /me/ratings [put]
func (h *RatingHandler) PutMyRating(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetRating(userID, req.MovieID, req.Rating); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
