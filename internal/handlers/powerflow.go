package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"topo-schedule/internal/middleware"
	"topo-schedule/internal/services"
)

type PowerflowHandler struct {
	service *services.TopologyService
	store   *services.SessionStore
	logr    *zap.Logger
}

func NewPowerflowHandler(svc *services.TopologyService, store *services.SessionStore, logr *zap.Logger) *PowerflowHandler {
	return &PowerflowHandler{service: svc, store: store, logr: logr}
}

// CreateSession handles POST /sessions
// Always starts a fresh session regardless of the request header.
func (h *PowerflowHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create()
	w.Header().Set(middleware.SessionHeader, sess.ID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"sessionId": sess.ID,
		"createdAt": sess.CreatedAt,
	})
}

// GetSession handles GET /sessions/current
func (h *PowerflowHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r, h.logr)
	if !ok {
		return
	}
	runCount, dirty := h.service.RunStatus(sess)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"sessionId": sess.ID,
		"createdAt": sess.CreatedAt,
		"runCount":  runCount,
		"dirty":     dirty,
	})
}

// RunPowerflow handles POST /powerflow/run
func (h *PowerflowHandler) RunPowerflow(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r, h.logr)
	if !ok {
		return
	}

	res, err := h.service.RunPowerflow(sess)
	if errors.Is(err, services.ErrNoChanges) {
		h.logr.Warn("powerflow run rejected, no pending changes", zap.String("session_id", sess.ID))
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"warning": res.Message,
			"data":    res,
		})
		return
	}
	if err != nil {
		writeCoreError(w, h.logr, err, zap.String("session_id", sess.ID))
		return
	}

	h.logr.Info("powerflow run completed",
		zap.String("session_id", sess.ID),
		zap.Int("run_count", res.RunCount))

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    res,
	})
}
