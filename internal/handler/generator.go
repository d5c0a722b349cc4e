package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pwseed/pwseed-go/internal/crypto"
	"github.com/pwseed/pwseed-go/internal/model"
	"github.com/pwseed/pwseed-go/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

// GeneratorHandler handles HTTP requests for password generation and classification.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body uses defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writePasswordError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleClassify handles POST /api/v1/classify requests.
func (h *GeneratorHandler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req model.ClassifyRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resp, err := h.service.Classify(req)
	if err != nil {
		writePasswordError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// writePasswordError maps generator and classifier errors to status codes.
func writePasswordError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, crypto.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, crypto.ErrInvalidFormat):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

// decodeBody reads a JSON body into v, writing an error response on failure.
// When allowEmpty is set, a missing body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	if r.Body == nil || r.Body == http.NoBody {
		if allowEmpty {
			return true
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
		case allowEmpty && errors.Is(err, io.EOF):
			return true
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		}
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
