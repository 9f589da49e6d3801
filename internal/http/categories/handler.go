package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/commissions/internal/category"
	"github.com/MrJamesThe3rd/commissions/internal/http/respond"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=categories
type Service interface {
	List(ctx context.Context, orgID int64) ([]*category.Tag, error)
	Create(ctx context.Context, orgID int64, name string, kind category.Kind) (*category.Tag, error)
	Update(ctx context.Context, orgID, id int64, name string, kind category.Kind) (*category.Tag, error)
	Delete(ctx context.Context, orgID, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type tagRequest struct {
	Name string        `json:"name"`
	Kind category.Kind `json:"kind"`
}

type tagResponse struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Kind      category.Kind `json:"kind"`
	IsDefault bool          `json:"is_default"`
	CreatedAt time.Time     `json:"created_at"`
}

func toResponse(t *category.Tag) tagResponse {
	return tagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Kind:      t.Kind,
		IsDefault: t.IsDefault,
		CreatedAt: t.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	tags, err := h.svc.List(r.Context(), scope.OrgID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]tagResponse, len(tags))
	for i, t := range tags {
		resp[i] = toResponse(t)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Manager(w, r)
	if !ok {
		return
	}

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tag, err := h.svc.Create(r.Context(), scope.OrgID, req.Name, req.Kind)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(tag))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Manager(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tag, err := h.svc.Update(r.Context(), scope.OrgID, id, req.Name, req.Kind)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tag))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Manager(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), scope.OrgID, id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
