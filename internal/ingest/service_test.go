package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/carrier"
	"github.com/MrJamesThe3rd/commissions/internal/commission"
	"github.com/MrJamesThe3rd/commissions/internal/producer"
	"github.com/MrJamesThe3rd/commissions/internal/statement"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
)

var (
	testNow = time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)
	admin   = access.Scope{OrgID: 1, UserID: 3, Role: access.RoleAdmin}
)

type mocks struct {
	repo     *MockRepository
	itx      *MockImportTx
	roster   *MockRoster
	mappings *MockMappings
	files    *MockFileStore
	notifier *MockNotifier
}

func newTestService(t *testing.T) (*Service, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := mocks{
		repo:     NewMockRepository(ctrl),
		itx:      NewMockImportTx(ctrl),
		roster:   NewMockRoster(ctrl),
		mappings: NewMockMappings(ctrl),
		files:    NewMockFileStore(ctrl),
		notifier: NewMockNotifier(ctrl),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewService(m.repo, m.roster, m.mappings, m.files, m.notifier, statement.NewResolver(nil), logger)
	svc.now = func() time.Time { return testNow }

	return svc, m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// expectBatch wires one successful carrier batch and hands back what was written.
func (m mocks) expectBatch(c *carrier.Carrier, batchID int64, rows *[]*Row, txs *[]*transaction.Transaction) {
	m.repo.EXPECT().UpsertCarrier(gomock.Any(), c.OrgID, c.Name).Return(c, nil)
	m.mappings.EXPECT().Suggest(gomock.Any(), c.OrgID, c.ID).Return(nil, nil)
	m.repo.EXPECT().BeginImport(gomock.Any(), c.OrgID, c.ID).Return(m.itx, nil)

	m.itx.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *Batch) error {
			b.ID = batchID
			return nil
		})

	m.itx.EXPECT().
		CreateRows(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r []*Row) error {
			*rows = r
			return nil
		})

	m.itx.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t []*transaction.Transaction) error {
			*txs = t
			return nil
		}).
		MaxTimes(1)

	m.itx.EXPECT().MarkImported(gomock.Any(), batchID).Return(nil)
	m.itx.EXPECT().Commit().Return(nil)
	m.itx.EXPECT().Rollback().Return(errTxDone).AnyTimes()
}

var errTxDone = errors.New("sql: transaction has already been committed or rolled back")

func TestUpload_AcmeScenario(t *testing.T) {
	svc, m := newTestService(t)

	data := []byte("carrier,premium,commission\nAcme,1000,100\nAcme,2000,\n")

	var (
		rows []*Row
		txs  []*transaction.Transaction
	)

	m.files.EXPECT().Save(gomock.Any(), "acme.csv", data).Return("/uploads/acme.csv", nil)
	m.roster.EXPECT().Roster(gomock.Any(), int64(1), int64(10)).Return(nil, nil)

	acme := &carrier.Carrier{ID: 5, OrgID: 1, Name: "Acme"}
	m.expectBatch(acme, 100, &rows, &txs)

	m.notifier.EXPECT().
		Notify(gomock.Any(), admin, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ access.Scope, s []Summary) error {
			assert.Len(t, s, 1)
			return nil
		})

	summaries, err := svc.Upload(context.Background(), UploadParams{
		Scope:       admin,
		WorkspaceID: new(int64(10)),
		Filename:    "acme.csv",
		Data:        data,
	})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, map[string]string{"carrier": "Acme", "premium": "2000", "commission": ""}, rows[1].Raw)
	assert.Equal(t, int64(100), rows[0].BatchID)
	assert.True(t, rows[0].Normalized.Undated)

	require.Len(t, txs, 2)

	first := txs[0]
	assert.True(t, first.Amount.Decimal.Equal(dec("100")))
	assert.Equal(t, commission.BasisFlat, first.Basis)
	assert.False(t, first.SplitPct.Valid)
	assert.Equal(t, transaction.SourceImport, first.Source)
	assert.Equal(t, transaction.StatusProvisional, first.Status)
	assert.Equal(t, int64(100), *first.BatchID)
	assert.Equal(t, int64(5), *first.CarrierID)
	assert.Equal(t, int64(10), *first.WorkspaceID)
	assert.Nil(t, first.ProducerID)
	assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), first.TxnDate)

	second := txs[1]
	assert.False(t, second.Amount.Valid)
	assert.False(t, second.Commission.Valid)
	assert.True(t, second.Premium.Decimal.Equal(dec("2000")))
	assert.Equal(t, commission.RawCategory, second.Category)

	require.Len(t, summaries, 1)
	assert.Equal(t, "Acme", summaries[0].Carrier)
	assert.Equal(t, 2, summaries[0].Rows)
	assert.Equal(t, 2, summaries[0].Transactions)
	assert.True(t, summaries[0].Premium.Equal(dec("3000")))
	assert.True(t, summaries[0].Commission.Equal(dec("100")))
}

func TestUpload_RateCells(t *testing.T) {
	svc, m := newTestService(t)

	data := []byte("carrier,premium,commission_rate\nAcme,1000,1%\nAcme,1000,0.5%\nAcme,1000,10%\nAcme,1000,10\nAcme,1000,0.10\n")

	var (
		rows []*Row
		txs  []*transaction.Transaction
	)

	m.files.EXPECT().Save(gomock.Any(), "rates.csv", data).Return("/uploads/rates.csv", nil)
	m.roster.EXPECT().Roster(gomock.Any(), int64(1), int64(10)).Return(nil, nil)
	m.expectBatch(&carrier.Carrier{ID: 5, OrgID: 1, Name: "Acme"}, 100, &rows, &txs)
	m.notifier.EXPECT().Notify(gomock.Any(), admin, gomock.Any()).Return(nil)

	_, err := svc.Upload(context.Background(), UploadParams{
		Scope:       admin,
		WorkspaceID: new(int64(10)),
		Filename:    "rates.csv",
		Data:        data,
	})
	require.NoError(t, err)

	want := []string{"10", "5", "100", "100", "100"}
	require.Len(t, txs, len(want))

	for i, w := range want {
		assert.True(t, txs[i].Commission.Decimal.Equal(dec(w)), "row %d commission %s", i, txs[i].Commission.Decimal)
		assert.Equal(t, commission.BasisRate, txs[i].Basis)
	}
}

func TestUpload_MissingCarrierColumnWritesNothing(t *testing.T) {
	svc, _ := newTestService(t)

	summaries, err := svc.Upload(context.Background(), UploadParams{
		Scope:    admin,
		Filename: "s.csv",
		Data:     []byte("premium,commission\n1000,100\n"),
	})

	assert.ErrorIs(t, err, statement.ErrMissingCarrierColumn)
	assert.Empty(t, summaries)
}

func TestUpload_WorkspaceNotAllowed(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Upload(context.Background(), UploadParams{
		Scope:    access.Scope{OrgID: 1, Role: access.RoleMember},
		Filename: "s.csv",
		Data:     []byte("carrier,commission\nAcme,10\n"),
	})

	assert.ErrorIs(t, err, ErrWorkspaceNotAllowed)
}

func TestUpload_CarrierCaseFoldsToOneBatch(t *testing.T) {
	svc, m := newTestService(t)

	var (
		rows []*Row
		txs  []*transaction.Transaction
	)

	m.files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("/uploads/s.csv", nil)
	m.roster.EXPECT().Roster(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.expectBatch(&carrier.Carrier{ID: 5, OrgID: 1, Name: "Acme"}, 100, &rows, &txs)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	summaries, err := svc.Upload(context.Background(), UploadParams{
		Scope:       admin,
		WorkspaceID: new(int64(10)),
		Filename:    "s.csv",
		Data:        []byte("carrier,commission\nAcme,10\n acme ,20\n"),
	})
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	assert.Len(t, rows, 2)
	assert.Len(t, txs, 2)
	assert.Equal(t, "Acme", *txs[1].CarrierName)
}

func TestUpload_BatchesFollowFirstAppearance(t *testing.T) {
	svc, m := newTestService(t)

	var (
		rowsByBatch [][]*Row
		txsByBatch  [][]*transaction.Transaction
	)

	m.files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("/uploads/s.csv", nil)
	m.roster.EXPECT().Roster(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	gomock.InOrder(
		m.repo.EXPECT().UpsertCarrier(gomock.Any(), int64(1), "Beta").Return(&carrier.Carrier{ID: 6, OrgID: 1, Name: "Beta"}, nil),
		m.repo.EXPECT().UpsertCarrier(gomock.Any(), int64(1), "Acme").Return(&carrier.Carrier{ID: 5, OrgID: 1, Name: "Acme"}, nil),
	)

	m.mappings.EXPECT().Suggest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	m.repo.EXPECT().BeginImport(gomock.Any(), gomock.Any(), gomock.Any()).Return(m.itx, nil).Times(2)

	batchID := int64(200)
	m.itx.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *Batch) error {
		batchID++
		b.ID = batchID

		return nil
	}).Times(2)

	m.itx.EXPECT().CreateRows(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r []*Row) error {
		rowsByBatch = append(rowsByBatch, r)
		return nil
	}).Times(2)

	m.itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t []*transaction.Transaction) error {
		txsByBatch = append(txsByBatch, t)
		return nil
	}).Times(2)

	m.itx.EXPECT().MarkImported(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.itx.EXPECT().Commit().Return(nil).Times(2)
	m.itx.EXPECT().Rollback().Return(nil).AnyTimes()
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	summaries, err := svc.Upload(context.Background(), UploadParams{
		Scope:       admin,
		WorkspaceID: new(int64(10)),
		Filename:    "s.csv",
		Data:        []byte("carrier,commission\nBeta,1\nAcme,2\nBeta,3\n"),
	})
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "Beta", summaries[0].Carrier)
	assert.Equal(t, int64(201), summaries[0].BatchID)
	assert.Equal(t, 2, summaries[0].Rows)
	assert.Equal(t, "Acme", summaries[1].Carrier)
	assert.Equal(t, 1, summaries[1].Rows)

	require.Len(t, rowsByBatch, 2)
	assert.Len(t, rowsByBatch[0], 2)
	assert.Len(t, rowsByBatch[1], 1)

	require.Len(t, txsByBatch, 2)
	require.Len(t, txsByBatch[0], 2)
	assert.True(t, txsByBatch[0][1].Commission.Decimal.Equal(dec("3")))
	assert.Len(t, txsByBatch[1], 1)
}

func TestUpload_ProducerDefaultSplit(t *testing.T) {
	svc, m := newTestService(t)

	var (
		rows []*Row
		txs  []*transaction.Transaction
	)

	jane := &producer.Producer{
		ID:           7,
		WorkspaceID:  10,
		DisplayName:  "Jane Doe",
		DefaultSplit: decimal.NewNullDecimal(dec("50")),
	}
	john := &producer.Producer{ID: 8, WorkspaceID: 10, DisplayName: "John Roe", Email: "john@agency.test"}

	m.files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("/uploads/s.csv", nil)
	m.roster.EXPECT().Roster(gomock.Any(), int64(1), int64(10)).Return([]*producer.Producer{jane, john}, nil)
	m.expectBatch(&carrier.Carrier{ID: 5, OrgID: 1, Name: "Acme"}, 100, &rows, &txs)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	csv := "carrier,commission,Agent Name,Agent Email,Split\n" +
		"Acme,200,jane doe,,\n" +
		"Acme,200,,JOHN@agency.test,25\n" +
		"Acme,200,Nobody,,\n"

	_, err := svc.Upload(context.Background(), UploadParams{
		Scope:       admin,
		WorkspaceID: new(int64(10)),
		Filename:    "s.csv",
		Data:        []byte(csv),
	})
	require.NoError(t, err)
	require.Len(t, txs, 3)

	require.NotNil(t, txs[0].ProducerID)
	assert.Equal(t, int64(7), *txs[0].ProducerID)
	assert.Equal(t, commission.BasisSplit, txs[0].Basis)
	assert.True(t, txs[0].Amount.Decimal.Equal(dec("100")))

	require.NotNil(t, txs[1].ProducerID)
	assert.Equal(t, int64(8), *txs[1].ProducerID)
	assert.True(t, txs[1].Amount.Decimal.Equal(dec("50")))

	assert.Nil(t, txs[2].ProducerID, "ambiguous rows stay unassigned")
	assert.True(t, txs[2].Amount.Decimal.Equal(dec("200")))
}

func TestUpload_CarrierMappingTakesPriority(t *testing.T) {
	svc, m := newTestService(t)

	var txs []*transaction.Transaction

	acme := &carrier.Carrier{ID: 5, OrgID: 1, Name: "Acme"}

	m.files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("/uploads/s.csv", nil)
	m.roster.EXPECT().Roster(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().UpsertCarrier(gomock.Any(), int64(1), "Acme").Return(acme, nil)
	m.mappings.EXPECT().
		Suggest(gomock.Any(), int64(1), int64(5)).
		Return(map[statement.Field][]string{statement.FieldCommission: {"Comm Paid"}}, nil)
	m.repo.EXPECT().BeginImport(gomock.Any(), int64(1), int64(5)).Return(m.itx, nil)
	m.itx.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	m.itx.EXPECT().CreateRows(gomock.Any(), gomock.Any()).Return(nil)
	m.itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t []*transaction.Transaction) error {
		txs = t
		return nil
	})
	m.itx.EXPECT().MarkImported(gomock.Any(), gomock.Any()).Return(nil)
	m.itx.EXPECT().Commit().Return(nil)
	m.itx.EXPECT().Rollback().Return(nil).AnyTimes()
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Upload(context.Background(), UploadParams{
		Scope:       admin,
		WorkspaceID: new(int64(10)),
		Filename:    "s.csv",
		Data:        []byte("carrier,commission,Comm Paid\nAcme,99,30\n"),
	})
	require.NoError(t, err)

	require.Len(t, txs, 1)
	assert.True(t, txs[0].Commission.Decimal.Equal(dec("30")))
}

func TestUpload_AdministrativeRowsAreSkipped(t *testing.T) {
	svc, m := newTestService(t)

	var (
		rows []*Row
		txs  []*transaction.Transaction
	)

	m.files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("/uploads/s.csv", nil)
	m.roster.EXPECT().Roster(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.expectBatch(&carrier.Carrier{ID: 5, OrgID: 1, Name: "Acme"}, 100, &rows, &txs)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	summaries, err := svc.Upload(context.Background(), UploadParams{
		Scope:       admin,
		WorkspaceID: new(int64(10)),
		Filename:    "s.csv",
		Data:        []byte("carrier,premium,commission,note\nAcme,,,Statement totals\nAcme,n/a,,\n"),
	})
	require.NoError(t, err)

	assert.Len(t, rows, 2, "raw rows are still recorded")
	assert.Empty(t, txs)
	require.Len(t, summaries, 1)
	assert.Equal(t, 0, summaries[0].Transactions)
	assert.True(t, summaries[0].Premium.IsZero())
}

func TestUpload_PeriodFromEarliestDate(t *testing.T) {
	svc, m := newTestService(t)

	batches := make(chan *Batch, 1)
	acme := &carrier.Carrier{ID: 5, OrgID: 1, Name: "Acme"}

	m.files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("/uploads/s.csv", nil)
	m.roster.EXPECT().Roster(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().UpsertCarrier(gomock.Any(), gomock.Any(), gomock.Any()).Return(acme, nil)
	m.mappings.EXPECT().Suggest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().BeginImport(gomock.Any(), gomock.Any(), gomock.Any()).Return(m.itx, nil)
	m.itx.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *Batch) error {
		batches <- b
		return nil
	})
	m.itx.EXPECT().CreateRows(gomock.Any(), gomock.Any()).Return(nil)
	m.itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	m.itx.EXPECT().MarkImported(gomock.Any(), gomock.Any()).Return(nil)
	m.itx.EXPECT().Commit().Return(nil)
	m.itx.EXPECT().Rollback().Return(nil).AnyTimes()
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	csv := "carrier,commission,Effective Date,Entry Date\n" +
		"Acme,10,2024-03-05,2024-04-20\n" +
		"Acme,20,2024-02-11,2024-04-21\n"

	_, err := svc.Upload(context.Background(), UploadParams{
		Scope:       admin,
		WorkspaceID: new(int64(10)),
		Filename:    "s.csv",
		Data:        []byte(csv),
	})
	require.NoError(t, err)

	b := <-batches
	assert.Equal(t, "2024-02", b.PeriodMonth)
	assert.Equal(t, StatusImported, b.Status)
	assert.Equal(t, statement.FormatCSV, b.SourceType)
	require.NotNil(t, b.FilePath)
	assert.Equal(t, "/uploads/s.csv", *b.FilePath)
}

func TestUpload_BatchFailureRollsBack(t *testing.T) {
	svc, m := newTestService(t)

	acme := &carrier.Carrier{ID: 5, OrgID: 1, Name: "Acme"}

	m.files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("/uploads/s.csv", nil)
	m.roster.EXPECT().Roster(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().UpsertCarrier(gomock.Any(), gomock.Any(), gomock.Any()).Return(acme, nil)
	m.mappings.EXPECT().Suggest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().BeginImport(gomock.Any(), gomock.Any(), gomock.Any()).Return(m.itx, nil)
	m.itx.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	m.itx.EXPECT().CreateRows(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	m.itx.EXPECT().Rollback().Return(nil)

	_, err := svc.Upload(context.Background(), UploadParams{
		Scope:       admin,
		WorkspaceID: new(int64(10)),
		Filename:    "s.csv",
		Data:        []byte("carrier,commission\nAcme,10\n"),
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "importing Acme")
	assert.ErrorContains(t, err, "disk full")
}

func TestUpload_NotifierFailureIsLoggedOnly(t *testing.T) {
	svc, m := newTestService(t)

	var (
		rows []*Row
		txs  []*transaction.Transaction
	)

	m.files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("/uploads/s.csv", nil)
	m.roster.EXPECT().Roster(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.expectBatch(&carrier.Carrier{ID: 5, OrgID: 1, Name: "Acme"}, 100, &rows, &txs)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	summaries, err := svc.Upload(context.Background(), UploadParams{
		Scope:       admin,
		WorkspaceID: new(int64(10)),
		Filename:    "s.csv",
		Data:        []byte("carrier,commission\nAcme,10\n"),
	})

	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}
