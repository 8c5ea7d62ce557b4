package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hirs/internal/bootstrap/logging"
	domainhazard "hirs/internal/domain/hazard"
	"hirs/internal/errs"
)

type errorBody struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps the engine's error taxonomy onto HTTP statuses:
// validation 400, unknown ids 404, illegal transitions 409, everything
// else 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domainhazard.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: verr.Error(), Fields: verr.Fields})
		return
	}
	if domainhazard.IsNotFound(err) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}
	if domainhazard.IsInvalidTransition(err) {
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
		return
	}
	if errors.Is(err, domainhazard.ErrUnknownStatus) ||
		errors.Is(err, domainhazard.ErrUnknownActionType) ||
		errors.Is(err, domainhazard.ErrUnknownPriority) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	logging.Error(r.Context(), "request failed", slog.Any("err", errs.Loggable(err)))
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
}

func decodeBody(r *http.Request, into any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return &domainhazard.ValidationError{Fields: []string{"Request body"}}
	}
	return nil
}
