package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"asset-ledger/feature/inventory/models"
)

type memState struct {
	items     map[string]models.Item
	movements []models.Movement
	runs      map[string]models.SyncRun
	snapshots map[[2]string]models.DailySnapshot
	nextID    uint
}

func (s *memState) clone() *memState {
	return &memState{
		items:     maps.Clone(s.items),
		movements: slices.Clone(s.movements),
		runs:      maps.Clone(s.runs),
		snapshots: maps.Clone(s.snapshots),
		nextID:    s.nextID,
	}
}

// MemoryStore implements Store in process memory. A transaction holds the
// store lock for its whole duration and restores the prior state on error.
type MemoryStore struct {
	mu    sync.Mutex
	state *memState
}

// NewMemory creates an empty MemoryStore.
func NewMemory() *MemoryStore {
	return &MemoryStore{state: &memState{
		items:     make(map[string]models.Item),
		runs:      make(map[string]models.SyncRun),
		snapshots: make(map[[2]string]models.DailySnapshot),
	}}
}

// memView binds repositories to the state, locking per call outside transactions.
type memView struct {
	store  *MemoryStore
	inTx   bool
	txData *memState
}

func (v *memView) do(fn func(st *memState) error) error {
	if v.inTx {
		return fn(v.txData)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.state)
}

func (m *MemoryStore) view() *memView { return &memView{store: m} }

func (m *MemoryStore) Items() ItemRepository         { return &memItems{m.view()} }
func (m *MemoryStore) Movements() MovementRepository { return &memMovements{m.view()} }
func (m *MemoryStore) Runs() RunRepository           { return &memRuns{m.view()} }
func (m *MemoryStore) Snapshots() SnapshotRepository { return &memSnapshots{m.view()} }

func (m *MemoryStore) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	backup := m.state.clone()
	if err := fn(&memTx{view: &memView{store: m, inTx: true, txData: m.state}}); err != nil {
		m.state = backup
		return err
	}
	return nil
}

func (m *MemoryStore) Migrate(context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }

type memTx struct {
	view *memView
}

func (t *memTx) Items() ItemRepository         { return &memItems{t.view} }
func (t *memTx) Movements() MovementRepository { return &memMovements{t.view} }
func (t *memTx) Runs() RunRepository           { return &memRuns{t.view} }
func (t *memTx) Snapshots() SnapshotRepository { return &memSnapshots{t.view} }

type memItems struct {
	v *memView
}

func (r *memItems) FindByKey(_ context.Context, key string) (*models.Item, error) {
	var out *models.Item
	err := r.v.do(func(st *memState) error {
		item, ok := st.items[key]
		if !ok {
			return ErrNotFound
		}
		out = &item
		return nil
	})
	return out, err
}

func (r *memItems) FindByKeys(_ context.Context, keys []string) (map[string]models.Item, error) {
	found := make(map[string]models.Item, len(keys))
	err := r.v.do(func(st *memState) error {
		for _, key := range keys {
			if item, ok := st.items[key]; ok {
				found[key] = item
			}
		}
		return nil
	})
	return found, err
}

func (r *memItems) FindForUpdate(ctx context.Context, key string) (*models.Item, error) {
	return r.FindByKey(ctx, key)
}

func (r *memItems) ListInStock(_ context.Context, location string) ([]models.Item, error) {
	var items []models.Item
	err := r.v.do(func(st *memState) error {
		for _, item := range st.items {
			if item.Status != models.StatusInStock {
				continue
			}
			if location != "" && item.Location != location {
				continue
			}
			items = append(items, item)
		}
		return nil
	})
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items, err
}

func (r *memItems) Count(context.Context) (int64, error) {
	var n int64
	err := r.v.do(func(st *memState) error {
		n = int64(len(st.items))
		return nil
	})
	return n, err
}

func (r *memItems) CreateBatch(_ context.Context, items []models.Item) error {
	return r.v.do(func(st *memState) error {
		for _, item := range items {
			if _, exists := st.items[item.Key]; exists {
				return ErrDuplicateKey
			}
		}
		now := time.Now().UTC()
		for _, item := range items {
			if item.CreatedAt.IsZero() {
				item.CreatedAt = now
			}
			item.UpdatedAt = item.CreatedAt
			st.items[item.Key] = item
		}
		return nil
	})
}

func (r *memItems) Update(_ context.Context, item *models.Item) error {
	return r.v.do(func(st *memState) error {
		current, ok := st.items[item.Key]
		if !ok {
			return fmt.Errorf("failed to update item %s: %w", item.Key, ErrNotFound)
		}
		item.CreatedAt = current.CreatedAt
		item.FirstSeenAt = current.FirstSeenAt
		item.UpdatedAt = time.Now().UTC()
		st.items[item.Key] = *item
		return nil
	})
}

func (r *memItems) TouchSeen(_ context.Context, keys []string, at time.Time) error {
	return r.v.do(func(st *memState) error {
		for _, key := range keys {
			if item, ok := st.items[key]; ok && item.LastSeenAt.Before(at) {
				item.LastSeenAt = at
				st.items[key] = item
			}
		}
		return nil
	})
}

type memMovements struct {
	v *memView
}

func (r *memMovements) Append(_ context.Context, movement *models.Movement) error {
	return r.v.do(func(st *memState) error {
		prepareMovement(movement)
		st.movements = append(st.movements, *movement)
		return nil
	})
}

func (r *memMovements) AppendBatch(_ context.Context, movements []models.Movement) error {
	return r.v.do(func(st *memState) error {
		for i := range movements {
			prepareMovement(&movements[i])
		}
		st.movements = append(st.movements, movements...)
		return nil
	})
}

func (r *memMovements) matching(f MovementFilter) []models.Movement {
	var out []models.Movement
	_ = r.v.do(func(st *memState) error {
		for _, m := range st.movements {
			if f.matches(m) {
				out = append(out, m)
			}
		}
		return nil
	})
	slices.SortStableFunc(out, newerFirst)
	return out
}

func (r *memMovements) HistoryFor(_ context.Context, key string, limit int) ([]models.Movement, error) {
	out := r.matching(MovementFilter{ItemKey: key})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memMovements) Query(_ context.Context, f MovementFilter) (*MovementPage, error) {
	f = f.normalized()
	all := r.matching(f)
	page := &MovementPage{Total: int64(len(all)), Limit: f.Limit, Offset: f.Offset}
	if f.Offset < len(all) {
		end := min(f.Offset+f.Limit, len(all))
		page.Movements = all[f.Offset:end]
	}
	return page, nil
}

func (r *memMovements) CountByType(_ context.Context, f MovementFilter) (map[models.MovementType]int64, error) {
	counts := make(map[models.MovementType]int64)
	for _, m := range r.matching(f) {
		counts[m.Type]++
	}
	return counts, nil
}

func (r *memMovements) Count(context.Context) (int64, error) {
	var n int64
	err := r.v.do(func(st *memState) error {
		n = int64(len(st.movements))
		return nil
	})
	return n, err
}

type memRuns struct {
	v *memView
}

func (r *memRuns) Create(_ context.Context, run *models.SyncRun) error {
	return r.v.do(func(st *memState) error {
		if _, exists := st.runs[run.ID]; exists {
			return fmt.Errorf("sync run %s already exists", run.ID)
		}
		st.runs[run.ID] = *run
		return nil
	})
}

func (r *memRuns) Update(_ context.Context, run *models.SyncRun) error {
	return r.v.do(func(st *memState) error {
		st.runs[run.ID] = *run
		return nil
	})
}

func (r *memRuns) Get(_ context.Context, id string) (*models.SyncRun, error) {
	var out *models.SyncRun
	err := r.v.do(func(st *memState) error {
		run, ok := st.runs[id]
		if !ok {
			return ErrNotFound
		}
		out = &run
		return nil
	})
	return out, err
}

func (r *memRuns) sorted(keep func(models.SyncRun) bool) []models.SyncRun {
	var out []models.SyncRun
	_ = r.v.do(func(st *memState) error {
		for _, run := range st.runs {
			if keep(run) {
				out = append(out, run)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out
}

func (r *memRuns) Latest(_ context.Context, target string) (*models.SyncRun, error) {
	runs := r.sorted(func(run models.SyncRun) bool {
		return target == "" || run.Target == target
	})
	if len(runs) == 0 {
		return nil, ErrNotFound
	}
	latest := runs[len(runs)-1]
	return &latest, nil
}

func (r *memRuns) InProgress(_ context.Context, target string) ([]models.SyncRun, error) {
	return r.sorted(func(run models.SyncRun) bool {
		return run.Target == target && run.Status == models.RunInProgress
	}), nil
}

func (r *memRuns) StartedBefore(_ context.Context, cutoff time.Time) ([]models.SyncRun, error) {
	return r.sorted(func(run models.SyncRun) bool {
		return run.Status == models.RunInProgress && run.StartedAt.Before(cutoff)
	}), nil
}

type memSnapshots struct {
	v *memView
}

func (r *memSnapshots) Upsert(_ context.Context, snapshot *models.DailySnapshot) error {
	return r.v.do(func(st *memState) error {
		key := [2]string{snapshot.SnapshotDate, snapshot.LocationID}
		if existing, ok := st.snapshots[key]; ok {
			snapshot.ID = existing.ID
		} else {
			st.nextID++
			snapshot.ID = st.nextID
		}
		st.snapshots[key] = *snapshot
		return nil
	})
}

func (r *memSnapshots) Get(_ context.Context, date, location string) (*models.DailySnapshot, error) {
	var out *models.DailySnapshot
	err := r.v.do(func(st *memState) error {
		snapshot, ok := st.snapshots[[2]string{date, location}]
		if !ok {
			return ErrNotFound
		}
		out = &snapshot
		return nil
	})
	return out, err
}

func (r *memSnapshots) Range(_ context.Context, from, to, location string) ([]models.DailySnapshot, error) {
	var out []models.DailySnapshot
	err := r.v.do(func(st *memState) error {
		for key, snapshot := range st.snapshots {
			if key[1] == location && key[0] >= from && key[0] <= to {
				out = append(out, snapshot)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].SnapshotDate < out[j].SnapshotDate })
	return out, err
}
