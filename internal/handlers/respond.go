package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"topo-schedule/internal/middleware"
	"topo-schedule/internal/services"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(data)
}

// sessionOrFail fetches the request session, answering 500 when the
// session middleware is not mounted.
func sessionOrFail(w http.ResponseWriter, r *http.Request, logr *zap.Logger) (*services.Session, bool) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		logr.Error("request reached handler without a session", zap.String("path", r.URL.Path))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "session unavailable",
		})
		return nil, false
	}
	return sess, true
}

// writeCoreError maps core errors to a warning response. NotFound and
// InvalidStatus are user mistakes; anything else is unexpected.
func writeCoreError(w http.ResponseWriter, logr *zap.Logger, err error, fields ...zap.Field) {
	var (
		notFound      *services.NotFoundError
		invalidStatus *services.InvalidStatusError
	)
	switch {
	case errors.As(err, &notFound):
		logr.Warn("element or hour not found", append(fields, zap.Error(err))...)
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"warning": "Selected element not found in the current table.",
			"error":   err.Error(),
		})
	case errors.As(err, &invalidStatus):
		logr.Warn("invalid status", append(fields, zap.Error(err))...)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
	default:
		logr.Error("unexpected core error", append(fields, zap.Error(err))...)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "internal error",
		})
	}
}
