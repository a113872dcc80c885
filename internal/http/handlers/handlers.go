package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/msom-squad-service/internal/app/page"
	"github.com/preston-bernstein/msom-squad-service/internal/domain/squads"
	"github.com/preston-bernstein/msom-squad-service/internal/logging"
)

const scheduleUnavailable = "schedule unavailable"

// PageService is the page composition the handlers depend on.
type PageService interface {
	Build(ctx context.Context) (page.View, error)
	Wins() []squads.WinRecord
	Season() int
}

// Handler wires HTTP routes to the page service.
type Handler struct {
	svc    PageService
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc PageService, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// gamesResponse is the /api/games payload.
type gamesResponse struct {
	Season int            `json:"season"`
	Games  []page.GameRow `json:"games"`
}

// Page renders the tally and schedule tables. A failed schedule fetch renders a 502 page and nothing else.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	view, err := h.svc.Build(r.Context())
	if err != nil {
		logging.Error(logger, "page build failed", err)
		writeErrorPage(w, r, http.StatusBadGateway, scheduleUnavailable, logger)
		return
	}
	writeHTML(w, r, http.StatusOK, pageTemplate, view, logger)
}

// Wins returns the squad tally sorted by name.
func (h *Handler) Wins(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Wins(), loggerFromContext(r, h.logger))
}

// Games returns the composed schedule rows.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	view, err := h.svc.Build(r.Context())
	if err != nil {
		logging.Error(logger, "schedule build failed", err)
		writeError(w, r, http.StatusBadGateway, scheduleUnavailable, logger)
		return
	}
	games := view.Games
	if games == nil {
		games = []page.GameRow{}
	}
	writeJSON(w, http.StatusOK, gamesResponse{Season: view.Season, Games: games}, logger)
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", loggerFromContext(r, h.logger))
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", loggerFromContext(r, h.logger))
}
