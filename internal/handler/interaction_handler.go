package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"prodrec-tf/internal/service"
)

type InteractionHandler struct {
	svc *service.InteractionService
}

func NewInteractionHandler(s *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{svc: s}
}

type interactionRequest struct {
	ProductID string  `json:"productId"`
	Rating    float64 `json:"rating"`
}

// @Summary Crear/actualizar rating del usuario autenticado
// @Description El rating entra al modelo recién en el próximo rebuild.
// @Tags interactions
// @Security BearerAuth
// @Accept json
// @Param body body interactionRequest true "rating"
// @Success 204
// @Router /me/interactions [post]
func (h *InteractionHandler) PostMyInteraction(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if err := h.svc.AddOrUpdate(r.Context(), userID, req.ProductID, req.Rating); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar ratings del usuario autenticado
// @Tags interactions
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default 100)"
// @Param offset query int false "offset"
// @Success 200 {array} models.Interaction
// @Router /me/interactions [get]
func (h *InteractionHandler) GetMyInteractions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 100
	}

	list, err := h.svc.GetByUser(r.Context(), userID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}
