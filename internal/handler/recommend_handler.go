package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/chang085/Recommendation-system/internal/apperr"
	"github.com/chang085/Recommendation-system/internal/repository"
	"github.com/chang085/Recommendation-system/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc     *service.RecommendService
	recRepo *repository.RecommendationRepository // puede ser nil
}

func NewRecommendHandler(s *service.RecommendService, recRepo *repository.RecommendationRepository) *RecommendHandler {
	return &RecommendHandler{svc: s, recRepo: recRepo}
}

// @Summary Recomendaciones cold-start
// @Description Top 5 por rating promedio + top 2 por vistas, sin deduplicar
// @Tags recommend
// @Produce json
// @Success 200 {array} models.RecItem
// @Router /recommendations/new [get]
func (h *RecommendHandler) NewUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ForNewUsers())
}

// @Summary Recomendaciones por género demográfico (sin sesión)
// @Tags recommend
// @Produce json
// @Param gender query string true "male|female (case-insensitive)"
// @Success 200 {array} models.RecItem
// @Router /recommendations/genre [get]
func (h *RecommendHandler) ByGenderExplicit(w http.ResponseWriter, r *http.Request) {
	gender := r.URL.Query().Get("gender")
	writeJSON(w, http.StatusOK, h.svc.ByGender(gender))
}

// @Summary Mejores películas según el historial propio
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.RecItem
// @Router /me/recommendations/history [get]
func (h *RecommendHandler) ByHistory(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ByHistory(UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary Predicción de ratings por vecinos similares
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Router /me/recommendations/predicted [get]
func (h *RecommendHandler) Predicted(w http.ResponseWriter, r *http.Request) {
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.ByPredictedRatings(r.Context(), UserIDFromContext(r.Context()), refresh)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary Recomendaciones por género del perfil
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.RecItem
// @Router /me/recommendations/genre [get]
func (h *RecommendHandler) ByProfileGender(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.UserProfile(UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.ByGender(u.Gender))
}

// @Summary Recomendaciones por matriz de similitud ítem-ítem
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]any
// @Router /me/recommendations/similar [get]
func (h *RecommendHandler) BySimilarMovies(w http.ResponseWriter, r *http.Request) {
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.BySimilarMovies(r.Context(), UserIDFromContext(r.Context()), refresh)
	if errors.Is(err, apperr.ErrNoRecommendations) {
		// señal explícita, distinta de una lista vacía de candidatos
		writeJSON(w, http.StatusOK, map[string]any{
			"items":  []any{},
			"reason": err.Error(),
		})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// @Summary Historial de recomendaciones guardadas
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 10)"
// @Success 200 {array} models.Recommendation
// @Router /me/recommendations/log [get]
func (h *RecommendHandler) Log(w http.ResponseWriter, r *http.Request) {
	if h.recRepo == nil {
		http.Error(w, "historial deshabilitado (sin Mongo)", http.StatusServiceUnavailable)
		return
	}

	recs, err := h.recRepo.FindByUser(r.Context(), UserIDFromContext(r.Context()), 10)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Predicción por vecinos en tiempo real (WebSocket)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]interface{}
// @Router /me/ws/recommendations [get]
func (h *RecommendHandler) PredictedWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "no se pudo abrir WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	userID := UserIDFromContext(r.Context())
	refresh := r.URL.Query().Get("refresh") == "true"

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, buscando vecinos…",
	})

	ids, err := h.svc.FindSimilarUsers(userID, service.NeighborK)
	if err == nil {
		conn.WriteJSON(map[string]any{
			"type":      "neighbors",
			"neighbors": ids,
		})
	}

	items, err := h.svc.ByPredictedRatings(r.Context(), userID, refresh)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      userID,
		"items":       items,
		"generatedAt": time.Now(),
	})
}
