package handlers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/msom-squad-service/internal/http/middleware"
	"github.com/preston-bernstein/msom-squad-service/internal/http/requestutil"
	"github.com/preston-bernstein/msom-squad-service/internal/logging"
)

const contentTypeHTML = "text/html; charset=utf-8"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	body := map[string]string{"error": message}
	if reqID := requestID(r); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeHTML renders into a buffer first so a template failure never sends a partial page.
func writeHTML(w http.ResponseWriter, r *http.Request, status int, tmpl *template.Template, data any, logger *slog.Logger) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logging.Error(logger, "failed to render template", err, slog.String("template", tmpl.Name()))
		writeError(w, r, http.StatusInternalServerError, "render failed", logger)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil && logger != nil {
		logger.Debug("failed to write response", "err", err)
	}
}

func writeErrorPage(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeHTML(w, r, status, errorTemplate, errorPage{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
		RequestID:  requestID(r),
	}, logger)
}

func requestID(r *http.Request) string {
	if r == nil {
		return ""
	}
	if reqID := middleware.RequestIDFromContext(r.Context()); reqID != "" {
		return reqID
	}
	return r.Header.Get(requestutil.HeaderRequestID)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
