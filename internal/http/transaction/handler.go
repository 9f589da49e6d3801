package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/http/respond"
	"github.com/MrJamesThe3rd/commissions/internal/override"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=transaction
type Transactions interface {
	Create(ctx context.Context, scope access.Scope, params transaction.CreateParams) (*transaction.Transaction, error)
	List(ctx context.Context, scope access.Scope, filter transaction.ListFilter) ([]*transaction.Transaction, error)
	Get(ctx context.Context, scope access.Scope, id int64) (*transaction.Transaction, error)
	History(ctx context.Context, scope access.Scope, id int64) ([]*transaction.Override, error)
}

type Editor interface {
	Edit(ctx context.Context, scope access.Scope, req override.EditRequest) (*transaction.Transaction, error)
}

type Handler struct {
	svc    Transactions
	editor Editor
}

func NewHandler(svc Transactions, editor Editor) *Handler {
	return &Handler{svc: svc, editor: editor}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.edit)
	r.Get("/{id}/overrides", h.history)
}

type createTransactionRequest struct {
	WorkspaceID  *int64              `json:"workspace_id"`
	ProducerID   *int64              `json:"producer_id"`
	CarrierID    *int64              `json:"carrier_id"`
	CarrierName  *string             `json:"carrier_name"`
	PolicyNumber *string             `json:"policy_number"`
	Customer     *string             `json:"customer"`
	ProductType  *string             `json:"product_type"`
	Category     string              `json:"category"`
	TxnDate      string              `json:"txn_date"`
	Premium      decimal.NullDecimal `json:"premium"`
	Commission   decimal.NullDecimal `json:"commission"`
	SplitPct     decimal.NullDecimal `json:"split_pct"`
	Amount       decimal.NullDecimal `json:"amount"`
	Status       transaction.Status  `json:"status"`
	Notes        *string             `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := transaction.CreateParams{
		WorkspaceID:  req.WorkspaceID,
		ProducerID:   req.ProducerID,
		CarrierID:    req.CarrierID,
		CarrierName:  req.CarrierName,
		PolicyNumber: req.PolicyNumber,
		Customer:     req.Customer,
		ProductType:  req.ProductType,
		Category:     req.Category,
		Premium:      req.Premium,
		Commission:   req.Commission,
		SplitPct:     req.SplitPct,
		Amount:       req.Amount,
		Status:       req.Status,
		Notes:        req.Notes,
	}

	if req.TxnDate != "" {
		t, err := time.Parse(time.DateOnly, req.TxnDate)
		if err != nil {
			http.Error(w, "txn_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		params.TxnDate = &t
	}

	tx, err := h.svc.Create(r.Context(), scope, params)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := transaction.ListFilter{}

	if s := q.Get("producer_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			http.Error(w, "invalid producer_id", http.StatusBadRequest)
			return
		}

		filter.ProducerID = &id
	}

	if s := q.Get("category"); s != "" {
		filter.Category = new(s)
	}

	if s := q.Get("product_type"); s != "" {
		filter.ProductType = new(s)
	}

	if s := q.Get("status"); s != "" {
		filter.Status = new(transaction.Status(s))
	}

	if s := q.Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := q.Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	if s := q.Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			filter.Limit = n
		}
	}

	txs, err := h.svc.List(r.Context(), scope, filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	tx, err := h.svc.Get(r.Context(), scope, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}

type editRequest struct {
	ManualAmount      *string `json:"manual_amount"`
	ClearManualAmount bool    `json:"clear_manual_amount"`
	ManualSplitPct    *string `json:"manual_split_pct"`
	ClearManualSplit  bool    `json:"clear_manual_split"`
	Status            *string `json:"status"`
	Notes             *string `json:"notes"`
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.editor.Edit(r.Context(), scope, override.EditRequest{
		ID:           id,
		ManualAmount: req.ManualAmount,
		ClearAmount:  req.ClearManualAmount,
		ManualSplit:  req.ManualSplitPct,
		ClearSplit:   req.ClearManualSplit,
		Status:       req.Status,
		Notes:        req.Notes,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	overrides, err := h.svc.History(r.Context(), scope, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toOverrideList(overrides))
}
