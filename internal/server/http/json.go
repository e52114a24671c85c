package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/policydesk/internal/common"
	"github.com/dmitrijs2005/policydesk/internal/server/validation"
	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
}

type fieldErrorsResponse struct {
	Errors validation.Errors `json:"errors"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps workflow errors onto status codes: field errors to
// 422, unknown partner to 404, everything else to 500.
func (s *HTTPServer) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	if errs, ok := validation.As(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, fieldErrorsResponse{Errors: errs})
		return
	}
	if errors.Is(err, common.ErrorNotFound) {
		writeError(w, http.StatusNotFound, "partner not found")
		return
	}
	s.logger.Error(ctx, "request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func partnerIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
