package leaderboard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/http/leaderboard"
	"github.com/MrJamesThe3rd/commissions/internal/http/middleware"
	"github.com/MrJamesThe3rd/commissions/internal/report"
)

func TestHandler_Get(t *testing.T) {
	scope := access.Scope{OrgID: 1, UserID: 2, Role: access.RoleAgent, WorkspaceIDs: []int64{10}}

	tests := []struct {
		name       string
		entries    []report.Entry
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "Entries",
			entries: []report.Entry{
				{ProducerID: new(int64(4)), DisplayName: "Ana", Commission: decimal.NewFromInt(150), Premium: decimal.NewFromInt(1500), Transactions: 2},
				{DisplayName: report.UnassignedName, Commission: decimal.NewFromInt(20), Premium: decimal.Zero, Transactions: 1},
			},
			wantStatus: http.StatusOK,
			wantBody: `[
				{"producer_id":4,"display_name":"Ana","workspace_id":null,"commission":"150","premium":"1500","transactions":2},
				{"producer_id":null,"display_name":"Unassigned","workspace_id":null,"commission":"20","premium":"0","transactions":1}
			]`,
		},
		{
			name:       "Empty",
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "Failure",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := leaderboard.NewMockService(ctrl)
			svc.EXPECT().Leaderboard(gomock.Any(), scope).Return(tt.entries, tt.err)

			r := chi.NewRouter()
			leaderboard.NewHandler(svc).Routes(r)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(middleware.WithScope(req.Context(), scope))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
