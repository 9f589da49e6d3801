package producer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/commissions/internal/producer"
)

func TestService_Roster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := producer.NewMockRepository(ctrl)
	svc := producer.NewService(repo)

	want := []*producer.Producer{{ID: 1, WorkspaceID: 7, DisplayName: "Jane"}}

	repo.EXPECT().
		ListProducers(gomock.Any(), int64(3), new(int64(7))).
		Return(want, nil)

	got, err := svc.Roster(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_RosterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := producer.NewMockRepository(ctrl)
	repo.EXPECT().ListProducers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := producer.NewService(repo).Roster(context.Background(), 3, 7)
	assert.ErrorContains(t, err, "loading roster")
}
