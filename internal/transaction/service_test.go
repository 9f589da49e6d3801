package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/commission"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
)

func dec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

var (
	admin = access.Scope{OrgID: 1, UserID: 9, Role: access.RoleAdmin}
	agent = access.Scope{OrgID: 1, UserID: 8, Role: access.RoleAgent, WorkspaceIDs: []int64{10}}
)

func TestService_Create(t *testing.T) {
	type args struct {
		scope  access.Scope
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(repo *transaction.MockRepository, cats *transaction.MockCategories)
		check     func(t *testing.T, tx *transaction.Transaction)
		wantErr   bool
		wantErrIs error
	}

	tests := []testCase{
		{
			name: "Success Coerces Category And Derives Amount",
			args: args{
				scope: admin,
				params: transaction.CreateParams{
					WorkspaceID: new(int64(10)),
					Category:    "Mystery",
					Commission:  dec("200.00"),
					SplitPct:    dec("50"),
					TxnDate:     new(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
				},
			},
			setupMock: func(repo *transaction.MockRepository, cats *transaction.MockCategories) {
				cats.EXPECT().Coerce(gomock.Any(), int64(1), "Mystery").Return("other", nil)
				repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = 42
						return nil
					})
			},
			check: func(t *testing.T, tx *transaction.Transaction) {
				assert.Equal(t, int64(42), tx.ID)
				assert.Equal(t, "other", tx.Category)
				assert.Equal(t, transaction.SourceManual, tx.Source)
				assert.Equal(t, transaction.StatusProvisional, tx.Status)
				assert.Equal(t, commission.BasisSplit, tx.Basis)
				assert.True(t, tx.Amount.Decimal.Equal(decimal.NewFromInt(100)))
				require.NotNil(t, tx.CreatedBy)
				assert.Equal(t, int64(9), *tx.CreatedBy)
			},
		},
		{
			name: "Outside Scope",
			args: args{
				scope:  agent,
				params: transaction.CreateParams{WorkspaceID: new(int64(11))},
			},
			wantErr:   true,
			wantErrIs: access.ErrForbidden,
		},
		{
			name: "Repo Error",
			args: args{
				scope:  agent,
				params: transaction.CreateParams{WorkspaceID: new(int64(10)), Amount: dec("5")},
			},
			setupMock: func(repo *transaction.MockRepository, cats *transaction.MockCategories) {
				cats.EXPECT().Coerce(gomock.Any(), gomock.Any(), gomock.Any()).Return("other", nil)
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			cats := transaction.NewMockCategories(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, cats)
			}

			svc := transaction.NewService(repo, cats)
			got, err := svc.Create(context.Background(), tt.args.scope, tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}

				return
			}

			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestService_List(t *testing.T) {
	t.Run("Restricted Scope Filters Workspaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().
			ListTransactions(gomock.Any(), transaction.ListFilter{
				OrgID:        1,
				WorkspaceIDs: []int64{10},
				Category:     new("renewal"),
				Limit:        transaction.DefaultListLimit,
			}).
			Return([]*transaction.Transaction{{ID: 1}, {ID: 2}}, nil)

		svc := transaction.NewService(repo, nil)
		got, err := svc.List(context.Background(), agent, transaction.ListFilter{Category: new("renewal")})

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Admin Sees Everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().
			ListTransactions(gomock.Any(), transaction.ListFilter{OrgID: 1, Limit: 20}).
			Return(nil, nil)

		_, err := transaction.NewService(repo, nil).List(context.Background(), admin, transaction.ListFilter{Limit: 20})
		require.NoError(t, err)
	})

	t.Run("No Workspaces Short Circuits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		scope := access.Scope{OrgID: 1, Role: access.RoleMember}

		got, err := transaction.NewService(repo, nil).List(context.Background(), scope, transaction.ListFilter{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, nil)

	repo.EXPECT().GetTransaction(gomock.Any(), int64(1), int64(5)).Return(&transaction.Transaction{ID: 5, WorkspaceID: new(int64(99))}, nil)

	_, err := svc.Get(context.Background(), agent, 5)
	assert.ErrorIs(t, err, access.ErrForbidden)

	repo.EXPECT().GetTransaction(gomock.Any(), int64(1), int64(6)).Return(nil, transaction.ErrNotFound)

	_, err = svc.Get(context.Background(), agent, 6)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, nil)

	newest := &transaction.Override{ID: 3, Type: transaction.OverrideTypeManualEdit}
	oldest := &transaction.Override{ID: 1, Type: transaction.OverrideTypeFlat}

	gomock.InOrder(
		repo.EXPECT().GetTransaction(gomock.Any(), int64(1), int64(5)).Return(&transaction.Transaction{ID: 5, WorkspaceID: new(int64(10))}, nil),
		repo.EXPECT().ListOverrides(gomock.Any(), int64(1), int64(5)).Return([]*transaction.Override{newest, oldest}, nil),
	)

	got, err := svc.History(context.Background(), agent, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newest, got[0])
}
