// Package respond writes JSON bodies and maps domain errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/carrier"
	"github.com/MrJamesThe3rd/commissions/internal/category"
	"github.com/MrJamesThe3rd/commissions/internal/http/middleware"
	"github.com/MrJamesThe3rd/commissions/internal/ingest"
	"github.com/MrJamesThe3rd/commissions/internal/mapping"
	"github.com/MrJamesThe3rd/commissions/internal/override"
	"github.com/MrJamesThe3rd/commissions/internal/statement"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

var statuses = []struct {
	target error
	status int
}{
	{access.ErrForbidden, http.StatusForbidden},
	{ingest.ErrWorkspaceNotAllowed, http.StatusForbidden},
	{transaction.ErrNotFound, http.StatusNotFound},
	{category.ErrNotFound, http.StatusNotFound},
	{carrier.ErrNotFound, http.StatusNotFound},
	{category.ErrDuplicate, http.StatusConflict},
	{category.ErrInvalidName, http.StatusBadRequest},
	{category.ErrInvalidKind, http.StatusBadRequest},
	{mapping.ErrInvalidField, http.StatusBadRequest},
	{override.ErrInvalidMode, http.StatusBadRequest},
	{override.ErrInvalidValue, http.StatusBadRequest},
	{override.ErrNoTransactions, http.StatusBadRequest},
	{statement.ErrMissingCarrierColumn, http.StatusUnprocessableEntity},
	{statement.ErrUnsupportedFormat, http.StatusUnsupportedMediaType},
}

// Error writes err with the status of the first sentinel it wraps. Anything unknown is
// logged and reported as a bare 500.
func Error(w http.ResponseWriter, err error) {
	for _, s := range statuses {
		if errors.Is(err, s.target) {
			http.Error(w, err.Error(), s.status)
			return
		}
	}

	slog.Error("request failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// Scope returns the authenticated actor or writes 401.
func Scope(w http.ResponseWriter, r *http.Request) (access.Scope, bool) {
	scope, ok := middleware.ScopeFrom(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
	}

	return scope, ok
}

// Manager returns the actor when it may change org-wide settings, writing 401 or 403
// otherwise.
func Manager(w http.ResponseWriter, r *http.Request) (access.Scope, bool) {
	scope, ok := Scope(w, r)
	if !ok {
		return scope, false
	}

	if !scope.Unrestricted() {
		http.Error(w, access.ErrForbidden.Error(), http.StatusForbidden)
		return scope, false
	}

	return scope, true
}
