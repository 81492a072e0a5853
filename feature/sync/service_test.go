package sync_test

import (
	"context"
	"errors"
	"fmt"
	stdsync "sync"
	"testing"
	"time"

	"asset-ledger/core/clock"
	"asset-ledger/core/database"
	"asset-ledger/core/events"
	"asset-ledger/core/source"
	"asset-ledger/feature/inventory/models"
	"asset-ledger/feature/inventory/store"
	"asset-ledger/feature/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	records   []source.Record
	malformed int
	err       error
}

func (s *stubSource) Fetch(context.Context, string) (*source.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &source.Result{
		Records:   s.records,
		Malformed: s.malformed,
		Total:     len(s.records) + s.malformed,
	}, nil
}

// blockingSource never answers until its context ends.
type blockingSource struct{}

func (blockingSource) Fetch(ctx context.Context, _ string) (*source.Result, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type recordingPublisher struct {
	mu     stdsync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	return nil
}

func (p *recordingPublisher) Close() {}

// failingStore fails the nth transaction.
type failingStore struct {
	store.Store
	failOn int
	calls  int
}

func (f *failingStore) Transaction(ctx context.Context, fn func(tx store.Tx) error) error {
	f.calls++
	if f.calls == f.failOn {
		return errors.New("deadlock detected")
	}
	return f.Store.Transaction(ctx, fn)
}

type fixture struct {
	store   store.Store
	source  *stubSource
	clock   *clock.Fixed
	service *sync.Service
}

func stores() map[string]func(t *testing.T) store.Store {
	return map[string]func(t *testing.T) store.Store{
		"sqlite": func(t *testing.T) store.Store {
			st, err := store.Open(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
			require.NoError(t, err)
			require.NoError(t, st.Migrate(context.Background()))
			t.Cleanup(func() { _ = st.Close() })
			return st
		},
		"memory": func(*testing.T) store.Store { return store.NewMemory() },
	}
}

func newFixture(st store.Store, batchSize int, publisher events.Publisher) *fixture {
	src := &stubSource{}
	clk := &clock.Fixed{T: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	if publisher == nil {
		publisher = events.Nop{}
	}
	svc := sync.NewService(sync.Config{Target: "inventory", BatchSize: batchSize, FetchTimeout: time.Second, StaleAfter: 10 * time.Minute},
		st, src, publisher, clk, zap.NewNop())
	return &fixture{store: st, source: src, clock: clk, service: svc}
}

func ledgerLen(t *testing.T, st store.Store) int64 {
	n, err := st.Movements().Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestRun_InitialSyncAddsItems(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			fx := newFixture(open(t), 500, nil)
			fx.source.records = []source.Record{{Key: "K1", Grade: "A"}, {Key: "K2", Grade: "B"}}

			res, err := fx.service.Run(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, res.Added)
			assert.Equal(t, 0, res.Updated)
			assert.Equal(t, res.Processed, res.Added+res.Updated+res.Unchanged)

			page, err := fx.store.Movements().Query(ctx, store.MovementFilter{Type: models.MovementAdded})
			require.NoError(t, err)
			assert.EqualValues(t, 2, page.Total)
			assert.EqualValues(t, 2, ledgerLen(t, fx.store))

			run, err := fx.service.LatestRun(ctx)
			require.NoError(t, err)
			require.NotNil(t, run)
			assert.Equal(t, models.RunCompleted, run.Status)
			assert.Equal(t, 2, run.SourceRowCount)
			assert.Equal(t, 2, run.StoreCount)
			assert.Equal(t, res.RunID, run.ID)
		})
	}
}

func TestRun_GradeChangeRecordsOneMovement(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			fx := newFixture(open(t), 500, nil)
			fx.source.records = []source.Record{{Key: "K1", Grade: "A"}}
			_, err := fx.service.Run(ctx)
			require.NoError(t, err)

			fx.clock.Advance(time.Hour)
			fx.source.records = []source.Record{{Key: "K1", Grade: "B"}}
			res, err := fx.service.Run(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, res.Updated)
			assert.Equal(t, 0, res.Added)

			history, err := fx.store.Movements().HistoryFor(ctx, "K1", 0)
			require.NoError(t, err)
			require.Len(t, history, 2)
			assert.Equal(t, models.MovementGradeChanged, history[0].Type)
			assert.Equal(t, "A", history[0].FromGrade)
			assert.Equal(t, "B", history[0].ToGrade)

			item, err := fx.store.Items().FindByKey(ctx, "K1")
			require.NoError(t, err)
			assert.Equal(t, "B", item.Grade)
			assert.True(t, item.LastSeenAt.Equal(fx.clock.T))
		})
	}
}

func TestRun_IsIdempotent(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			fx := newFixture(open(t), 2, nil)
			for i := 0; i < 5; i++ {
				fx.source.records = append(fx.source.records, source.Record{Key: fmt.Sprintf("K%d", i), Grade: "A", LockStatus: "unlocked"})
			}

			_, err := fx.service.Run(ctx)
			require.NoError(t, err)
			before := ledgerLen(t, fx.store)

			fx.clock.Advance(time.Minute)
			res, err := fx.service.Run(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, res.Added)
			assert.Equal(t, 0, res.Updated)
			assert.Equal(t, 5, res.Unchanged)
			assert.Equal(t, 5, res.Processed)
			assert.Equal(t, before, ledgerLen(t, fx.store))
		})
	}
}

func TestRun_DuplicateKeysProcessedOnce(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(store.NewMemory(), 500, nil)
	fx.source.records = []source.Record{{Key: "K1", Grade: "A"}, {Key: "K1", Grade: "C"}, {Key: "K2"}}
	fx.source.malformed = 1

	res, err := fx.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 1, res.Malformed)

	item, err := fx.store.Items().FindByKey(ctx, "K1")
	require.NoError(t, err)
	assert.Equal(t, "A", item.Grade)
}

func TestRun_BatchFailureKeepsEarlierBatches(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			// Transaction 1 is Begin, 2 the first batch, 3 the second batch.
			st := &failingStore{Store: open(t), failOn: 3}
			fx := newFixture(st, 2, nil)
			fx.source.records = []source.Record{{Key: "K1"}, {Key: "K2"}, {Key: "K3"}, {Key: "K4"}}

			_, err := fx.service.Run(ctx)
			require.Error(t, err)

			n, err := st.Items().Count(ctx)
			require.NoError(t, err)
			assert.EqualValues(t, 2, n)
			assert.EqualValues(t, 2, ledgerLen(t, st))

			run, err := fx.service.LatestRun(ctx)
			require.NoError(t, err)
			require.NotNil(t, run)
			assert.Equal(t, models.RunFailed, run.Status)
			assert.Equal(t, 2, run.Added)
			assert.Contains(t, run.ErrorMessage, "deadlock detected")
			assert.Contains(t, string(run.ErrorDetails), "stack")
			assert.NotNil(t, run.CompletedAt)
		})
	}
}

func TestRun_SourceUnavailableFailsRun(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(store.NewMemory(), 500, nil)
	fx.source.err = fmt.Errorf("%w: permission denied", source.ErrSourceUnavailable)

	_, err := fx.service.Run(ctx)
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)

	run, err := fx.service.LatestRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, models.RunFailed, run.Status)
	assert.Contains(t, run.ErrorMessage, "fetching")
}

func TestRun_FetchTimeoutFailsRun(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	clk := &clock.Fixed{T: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc := sync.NewService(sync.Config{Target: "inventory", BatchSize: 500, FetchTimeout: 10 * time.Millisecond, StaleAfter: 10 * time.Minute},
		st, blockingSource{}, events.Nop{}, clk, zap.NewNop())

	_, err := svc.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	run, err := svc.LatestRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, models.RunFailed, run.Status)
	assert.Contains(t, run.ErrorMessage, "fetching")
	assert.NotNil(t, run.CompletedAt)
}

func TestRun_RejectsConcurrentRun(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			fx := newFixture(open(t), 500, nil)

			_, err := fx.service.Tracker().Begin(ctx, "inventory")
			require.NoError(t, err)

			_, err = fx.service.Run(ctx)
			assert.ErrorIs(t, err, sync.ErrSyncInProgress)

			// A stuck run no longer blocks once it is stale.
			fx.clock.Advance(11 * time.Minute)
			_, err = fx.service.Run(ctx)
			assert.NoError(t, err)

			running, err := fx.store.Runs().InProgress(ctx, "inventory")
			require.NoError(t, err)
			assert.Empty(t, running)
		})
	}
}

func TestFixStale(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			fx := newFixture(open(t), 500, nil)
			fx.source.records = []source.Record{{Key: "K1"}, {Key: "K2"}, {Key: "K3"}}
			_, err := fx.service.Run(ctx)
			require.NoError(t, err)

			stuck, err := fx.service.Tracker().Begin(ctx, "inventory")
			require.NoError(t, err)
			fx.clock.Advance(15 * time.Minute)

			fixed, err := fx.service.FixStale(ctx, 10)
			require.NoError(t, err)
			assert.Equal(t, 1, fixed)

			run, err := fx.store.Runs().Get(ctx, stuck.ID)
			require.NoError(t, err)
			assert.Equal(t, models.RunCompleted, run.Status)
			assert.Equal(t, 3, run.Processed)
			assert.NotNil(t, run.CompletedAt)

			fixed, err = fx.service.FixStale(ctx, 10)
			require.NoError(t, err)
			assert.Equal(t, 0, fixed)
		})
	}
}

func TestRun_PublishesCommittedMovements(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	fx := newFixture(store.NewMemory(), 500, pub)
	fx.source.records = []source.Record{{Key: "K1", Grade: "A"}}

	_, err := fx.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"added"}, pub.events)
}
