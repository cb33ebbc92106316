package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"topo-schedule/internal/services"
)

type FlowHandler struct {
	service *services.TopologyService
	logr    *zap.Logger
}

func NewFlowHandler(svc *services.TopologyService, logr *zap.Logger) *FlowHandler {
	return &FlowHandler{service: svc, logr: logr}
}

// GetComparison handles GET /flows/comparison
// Returns the initial and updated border flow windows for the session's run count.
func (h *FlowHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r, h.logr)
	if !ok {
		return
	}

	cmp, err := h.service.Comparison(sess)
	var exhausted *services.WindowExhaustedError
	if errors.As(err, &exhausted) {
		h.logr.Warn("updated flow window exhausted, showing initial data",
			zap.String("session_id", sess.ID),
			zap.Int("run_count", cmp.RunCount),
			zap.Error(err))
	} else if err != nil {
		writeCoreError(w, h.logr, err, zap.String("session_id", sess.ID))
		return
	}

	resp := map[string]any{
		"success": true,
		"data":    cmp,
	}
	if cmp.Warning != "" {
		resp["warning"] = cmp.Warning
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetColumns handles GET /flows/columns
func (h *FlowHandler) GetColumns(w http.ResponseWriter, r *http.Request) {
	ds := h.service.Dataset()
	resp := map[string]any{
		"success": true,
		"columns": ds.Columns(),
		"rows":    ds.Len(),
	}
	if ds.Len() == 0 {
		resp["message"] = "No data available."
	}
	writeJSON(w, http.StatusOK, resp)
}
