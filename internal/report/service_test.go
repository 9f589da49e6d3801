package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/report"
)

func TestService_Leaderboard(t *testing.T) {
	t.Run("Sorted By Commission With Unassigned Labelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := report.NewMockRepository(ctrl)
		repo.EXPECT().Leaderboard(gomock.Any(), int64(1), []int64{10}).Return([]report.Entry{
			{ProducerID: new(int64(7)), DisplayName: "Jane", Commission: decimal.NewFromInt(50), Transactions: 1},
			{Commission: decimal.NewFromInt(300), Transactions: 4},
			{ProducerID: new(int64(8)), DisplayName: "John", Commission: decimal.NewFromInt(120), Transactions: 2},
			{ProducerID: new(int64(9)), DisplayName: "Abe", Commission: decimal.NewFromInt(50), Transactions: 3},
		}, nil)

		scope := access.Scope{OrgID: 1, Role: access.RoleAgent, WorkspaceIDs: []int64{10}}

		got, err := report.NewService(repo).Leaderboard(context.Background(), scope)
		require.NoError(t, err)
		require.Len(t, got, 4)

		names := make([]string, len(got))
		for i, e := range got {
			names[i] = e.DisplayName
		}

		assert.Equal(t, []string{report.UnassignedName, "John", "Abe", "Jane"}, names)
		assert.Nil(t, got[0].ProducerID)
	})

	t.Run("Admin Is Not Filtered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := report.NewMockRepository(ctrl)
		repo.EXPECT().Leaderboard(gomock.Any(), int64(1), gomock.Nil()).Return(nil, nil)

		_, err := report.NewService(repo).Leaderboard(context.Background(), access.Scope{OrgID: 1, Role: access.RoleOwner})
		require.NoError(t, err)
	})

	t.Run("No Workspaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := report.NewMockRepository(ctrl)

		got, err := report.NewService(repo).Leaderboard(context.Background(), access.Scope{OrgID: 1, Role: access.RoleProducer})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Repo Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := report.NewMockRepository(ctrl)
		repo.EXPECT().Leaderboard(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		_, err := report.NewService(repo).Leaderboard(context.Background(), access.Scope{OrgID: 1, Role: access.RoleAdmin})
		assert.ErrorContains(t, err, "loading leaderboard")
	})
}
