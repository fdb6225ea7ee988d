package handler

import (
	"encoding/json"
	"net/http"

	"prodrec-tf/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminModelHandler expone el mantenimiento del modelo en memoria.
type AdminModelHandler struct {
	svc *service.RecommendService
}

func NewAdminModelHandler(svc *service.RecommendService) *AdminModelHandler {
	return &AdminModelHandler{svc: svc}
}

// @Summary Estado del modelo
// @Description Dimensiones de las matrices, parámetros y fecha del último build.
// @Tags admin-model
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ModelStatus
// @Router /admin/model/status [get]
func (h *AdminModelHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Status())
}

// @Summary Reconstruir el modelo
// @Description Recarga las interacciones del origen configurado y publica las matrices nuevas con un swap atómico; las requests en vuelo siguen leyendo el modelo anterior hasta entonces.
// @Tags admin-model
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ModelStatus
// @Failure 500 {object} map[string]string
// @Router /admin/model/rebuild [post]
func (h *AdminModelHandler) PostRebuild(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.BuildModel(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Status())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Helper para montar rutas en main.go
func MountAdminModelRoutes(r chi.Router, h *AdminModelHandler) {
	r.Route("/admin/model", func(r chi.Router) {
		r.Get("/status", h.GetStatus)
		r.Post("/rebuild", h.PostRebuild)
	})
}
