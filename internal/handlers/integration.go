package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"topo-schedule/internal/services"
)

type IntegrationHandler struct {
	service *services.IntegrationService
	logr    *zap.Logger
}

func NewIntegrationHandler(svc *services.IntegrationService, logr *zap.Logger) *IntegrationHandler {
	return &IntegrationHandler{service: svc, logr: logr}
}

// ListActions handles GET /integrations
func (h *IntegrationHandler) ListActions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"actions": h.service.Actions(),
	})
}

// Trigger handles POST /integrations/{action}
func (h *IntegrationHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	ack, ok := h.service.Acknowledge(action)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"error":   "unknown integration action",
		})
		return
	}

	h.logr.Info("integration action acknowledged", zap.String("action", action))
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    ack,
	})
}
