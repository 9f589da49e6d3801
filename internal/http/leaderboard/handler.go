package leaderboard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/http/respond"
	"github.com/MrJamesThe3rd/commissions/internal/report"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=leaderboard
type Service interface {
	Leaderboard(ctx context.Context, scope access.Scope) ([]report.Entry, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.Leaderboard(r.Context(), scope)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if entries == nil {
		entries = []report.Entry{}
	}

	respond.JSON(w, http.StatusOK, entries)
}
