package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"prodrec-tf/internal/recommender"
	"prodrec-tf/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// serveRecommendations es el camino común: calcula, formatea con el
// catálogo y traduce los errores del modelo a códigos HTTP.
func (h *RecommendHandler) serveRecommendations(w http.ResponseWriter, r *http.Request, userID string) {
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		K:       k,
		Refresh: refresh,
	})
	switch {
	case errors.Is(err, recommender.ErrModelNotReady):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"message": "model not ready",
		})
		return
	case errors.Is(err, recommender.ErrUnknownUser):
		// usuario frío: resultado "no encontrado" explícito, no un 200 vacío
		writeJSON(w, http.StatusNotFound, map[string]string{
			"message": fmt.Sprintf("No recommendations found for user ID '%s'.", userID),
		})
		return
	case err != nil:
		http.Error(w, err.Error(), 500)
		return
	}

	writeJSON(w, http.StatusOK, h.svc.Format(r.Context(), items))
}

// @Summary Recomendaciones para un usuario
// @Tags recommend
// @Produce json
// @Param id path string true "userId"
// @Param k query int false "cantidad de recomendaciones (default 5, máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecommendedProduct
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /recommendations/{id} [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	h.serveRecommendations(w, r, chi.URLParam(r, "id"))
}

// @Summary Recomendaciones del usuario autenticado
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param k query int false "cantidad de recomendaciones (default 5, máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecommendedProduct
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	h.serveRecommendations(w, r, UserIDFromContext(r.Context()))
}

// @Summary Usuarios presentes en el modelo
// @Description Lista los userIds con columna en la matriz de ratings (para el selector del frontend).
// @Tags recommend
// @Produce json
// @Success 200 {array} string
// @Failure 503 {object} map[string]string
// @Router /users [get]
func (h *RecommendHandler) GetModelUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ModelUsers()
	if errors.Is(err, recommender.ErrModelNotReady) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"message": "model not ready",
		})
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param id path string true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/recommendations/ws [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	userID := chi.URLParam(r, "id")
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, calculando recomendaciones…",
	})

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		K:       k,
		Refresh: refresh,
	})
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
		"items":       h.svc.Format(r.Context(), items),
		"generatedAt": time.Now(),
	})
}
