package carriers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/commissions/internal/carrier"
	"github.com/MrJamesThe3rd/commissions/internal/http/respond"
	"github.com/MrJamesThe3rd/commissions/internal/statement"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=carriers
type Carriers interface {
	ListCarriers(ctx context.Context, orgID int64) ([]*carrier.Carrier, error)
}

type Mappings interface {
	Suggest(ctx context.Context, orgID, carrierID int64) (map[statement.Field][]string, error)
	Learn(ctx context.Context, orgID, carrierID int64, columns map[statement.Field][]string) error
}

type Handler struct {
	carriers Carriers
	mappings Mappings
}

func NewHandler(carriers Carriers, mappings Mappings) *Handler {
	return &Handler{carriers: carriers, mappings: mappings}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}/mapping", h.getMapping)
	r.Put("/{id}/mapping", h.putMapping)
}

type carrierResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	DownloadType *string `json:"download_type,omitempty"`
}

type mappingBody struct {
	Columns map[statement.Field][]string `json:"columns"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	carriers, err := h.carriers.ListCarriers(r.Context(), scope.OrgID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]carrierResponse, len(carriers))
	for i, c := range carriers {
		resp[i] = carrierResponse{ID: c.ID, Name: c.Name, DownloadType: c.DownloadType}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getMapping(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	columns, err := h.mappings.Suggest(r.Context(), scope.OrgID, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if columns == nil {
		columns = map[statement.Field][]string{}
	}

	respond.JSON(w, http.StatusOK, mappingBody{Columns: columns})
}

func (h *Handler) putMapping(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Manager(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var body mappingBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.mappings.Learn(r.Context(), scope.OrgID, id, body.Columns); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
