package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"topo-schedule/internal/models"
	"topo-schedule/internal/services"
)

type ElementHandler struct {
	service *services.TopologyService
	logr    *zap.Logger
}

func NewElementHandler(svc *services.TopologyService, logr *zap.Logger) *ElementHandler {
	return &ElementHandler{service: svc, logr: logr}
}

// UpdateStatusRequest is the body of PUT /elements/{type}/schedule
type UpdateStatusRequest struct {
	Name   string `json:"name"`
	Hour   string `json:"hour"`
	Status string `json:"status"`
}

// GetElementTypes handles GET /elements/types
func (h *ElementHandler) GetElementTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"types":    models.ElementTypes,
		"hours":    models.Hours,
		"statuses": models.Statuses,
		"groups":   models.Groups,
	})
}

// FilterElements handles GET /elements/{type}?mrid=&group=&name=
func (h *ElementHandler) FilterElements(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r, h.logr)
	if !ok {
		return
	}
	etype, ok := h.parseElementType(w, r)
	if !ok {
		return
	}

	params := parseFilterParams(r.URL.Query())
	elements := h.service.FilterElements(sess, etype, params)

	resp := map[string]any{
		"success": true,
		"data":    elements,
		"total":   len(elements),
	}
	if len(elements) == 0 {
		resp["message"] = "No elements found with the current search criteria."
	}
	writeJSON(w, http.StatusOK, resp)
}

// ProposeUpdate handles GET /elements/{type}/schedule?name=&hour=
func (h *ElementHandler) ProposeUpdate(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r, h.logr)
	if !ok {
		return
	}
	etype, ok := h.parseElementType(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	name, hour := q.Get("name"), q.Get("hour")
	proposal, err := h.service.ProposeUpdate(sess, etype, name, hour)
	if err != nil {
		writeCoreError(w, h.logr, err,
			zap.String("session_id", sess.ID),
			zap.String("element_type", string(etype)),
			zap.String("element", name),
			zap.String("hour", hour))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    proposal,
	})
}

// CommitUpdate handles PUT /elements/{type}/schedule
func (h *ElementHandler) CommitUpdate(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r, h.logr)
	if !ok {
		return
	}
	etype, ok := h.parseElementType(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logr.Warn("failed to decode request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	fields := []zap.Field{
		zap.String("session_id", sess.ID),
		zap.String("element_type", string(etype)),
		zap.String("element", req.Name),
		zap.String("hour", req.Hour),
		zap.String("status", req.Status),
	}

	res, err := h.service.CommitUpdate(sess, etype, req.Name, req.Hour, models.Status(strings.TrimSpace(req.Status)))
	if err != nil {
		writeCoreError(w, h.logr, err, fields...)
		return
	}

	if res.Applied {
		h.logr.Info("element status updated", fields...)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    res,
	})
}

func (h *ElementHandler) parseElementType(w http.ResponseWriter, r *http.Request) (models.ElementType, bool) {
	raw := chi.URLParam(r, "type")
	etype, ok := models.ParseElementType(raw)
	if !ok {
		h.logr.Warn("unknown element type", zap.String("element_type", raw))
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "element type must be one of Switch, Breaker, Disconnector, BusbarCoupler",
		})
		return "", false
	}
	return etype, true
}

// parseFilterParams extracts the search fields; surrounding spaces are kept so
// matching stays literal.
func parseFilterParams(q map[string][]string) models.ElementFilterParams {
	getParam := func(key string) string {
		if values, ok := q[key]; ok && len(values) > 0 {
			return values[0]
		}
		return ""
	}

	return models.ElementFilterParams{
		MRIDContains:  getParam("mrid"),
		GroupContains: getParam("group"),
		NameContains:  getParam("name"),
	}
}
