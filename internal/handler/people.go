package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pwseed/pwseed-go/internal/middleware"
	"github.com/pwseed/pwseed-go/internal/model"
	"github.com/pwseed/pwseed-go/internal/service"
	"github.com/pwseed/pwseed-go/internal/userfetch"
)

// PeopleHandler handles HTTP requests for seeded people.
type PeopleHandler struct {
	service *service.PeopleService
}

// NewPeopleHandler creates a new PeopleHandler.
func NewPeopleHandler(svc *service.PeopleService) *PeopleHandler {
	return &PeopleHandler{service: svc}
}

// HandleSeed handles POST /api/v1/people/seed requests.
func (h *PeopleHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	operator, ok := middleware.OperatorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.SeedRequest
	if !decodeBody(w, r, &req, true) {
		return
	}
	count := service.DefaultSeedCount
	if req.Count != nil {
		count = *req.Count
	}

	resp, err := h.service.Seed(r.Context(), count)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCount), errors.Is(err, service.ErrCountTooLarge):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, userfetch.ErrNetwork), errors.Is(err, userfetch.ErrParse):
			slog.Warn("seeding aborted by user directory", "operator", operator, "error", err)
			writeJSON(w, http.StatusBadGateway, errorResponse("user directory unavailable"))
		default:
			slog.Error("seeding failed", "operator", operator, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	slog.Info("people seeded", "operator", operator, "count", resp.Seeded)
	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/people requests. The optional limit query
// parameter caps the number of rows returned.
func (h *PeopleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	people, err := h.service.List(r.Context(), limit)
	if err != nil {
		slog.Error("listing people failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, people)
}
