package imports

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/commissions/internal/http/respond"
	"github.com/MrJamesThe3rd/commissions/internal/ingest"
)

//go:generate mockgen -source=handler.go -destination=uploader_mock.go -package=imports
type Uploader interface {
	Upload(ctx context.Context, params ingest.UploadParams) ([]ingest.Summary, error)
}

type Handler struct {
	svc      Uploader
	maxBytes int64
}

func NewHandler(svc Uploader, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
}

type uploadResponse struct {
	Batches []ingest.Summary `json:"batches"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
		return
	}

	params := ingest.UploadParams{
		Scope:    scope,
		Filename: header.Filename,
		Data:     data,
	}

	if s := r.FormValue("workspace_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			http.Error(w, "invalid workspace_id", http.StatusBadRequest)
			return
		}

		params.WorkspaceID = &id
	}

	summaries, err := h.svc.Upload(r.Context(), params)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if summaries == nil {
		summaries = []ingest.Summary{}
	}

	respond.JSON(w, http.StatusCreated, uploadResponse{Batches: summaries})
}
