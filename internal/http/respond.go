package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"tally/internal/core"
)

type errorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details []core.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps the core's typed errors onto status codes. This is
// the only place that translation happens; the core itself knows nothing
// about HTTP.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		idErr    *core.IdentityError
		authzErr *core.AuthorizationError
		isoErr   *core.TenantIsolationError
		valErr   *core.ValidationError
		stErr    *core.StorageError
	)

	switch {
	case errors.As(err, &idErr):
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error: idErr.Error(),
			Code:  string(idErr.Kind),
		})
	case errors.As(err, &authzErr):
		writeJSON(w, http.StatusForbidden, errorResponse{
			Error: authzErr.Error(),
			Code:  string(authzErr.Kind),
		})
	case errors.As(err, &isoErr):
		writeJSON(w, http.StatusForbidden, errorResponse{
			Error: isoErr.Error(),
			Code:  "tenant_isolation",
		})
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Validation Error",
			Code:    "validation",
			Details: valErr.Fields,
		})
	case errors.As(err, &stErr):
		slog.ErrorContext(r.Context(), "Storage failure", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		slog.ErrorContext(r.Context(), "Unhandled error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
