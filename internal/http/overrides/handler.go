package overrides

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/http/respond"
	"github.com/MrJamesThe3rd/commissions/internal/override"
)

//go:generate mockgen -source=handler.go -destination=applier_mock.go -package=overrides
type Applier interface {
	Apply(ctx context.Context, scope access.Scope, req override.Request) (override.Result, error)
}

type Handler struct {
	svc Applier
}

func NewHandler(svc Applier) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.apply)
}

// decimalInput keeps the override value verbatim, whether sent as a string or a number,
// so the service decides what parses.
type decimalInput string

func (d *decimalInput) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = decimalInput(s)
		return nil
	}

	if string(b) != "null" {
		*d = decimalInput(b)
	}

	return nil
}

type applyRequest struct {
	TransactionIDs []int64       `json:"transaction_ids"`
	Mode           override.Mode `json:"override_mode"`
	Value          decimalInput  `json:"override_value"`
	Notes          *string       `json:"notes"`
}

type applyResponse struct {
	Updated int    `json:"updated"`
	Message string `json:"message"`
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.Apply(r.Context(), scope, override.Request{
		TransactionIDs: req.TransactionIDs,
		Mode:           req.Mode,
		Value:          string(req.Value),
		Notes:          req.Notes,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	msg := fmt.Sprintf("Applied overrides to %d transaction(s).", res.Applied)
	if res.Applied == 0 {
		msg = "No transactions were updated. Check your permissions."
	}

	respond.JSON(w, http.StatusOK, applyResponse{Updated: res.Applied, Message: msg})
}
