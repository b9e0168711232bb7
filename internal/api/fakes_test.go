package api

import (
	"context"
	"sort"
	"strings"
	"time"

	"retirement_planner/internal/advisor"
	"retirement_planner/internal/domain"
	"retirement_planner/internal/store"

	json "github.com/goccy/go-json"
)

type fakeUsers struct {
	rows   map[uint]*domain.User
	nextID uint
}

func newFakeUsers() *fakeUsers { return &fakeUsers{rows: map[uint]*domain.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	u.Email = strings.ToLower(u.Email)
	for _, existing := range f.rows {
		if existing.Email == u.Email {
			return store.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.rows {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) TouchLastSignedIn(_ context.Context, id uint, at time.Time) error {
	u, ok := f.rows[id]
	if !ok {
		return store.ErrNotFound
	}
	u.LastSignedIn = at
	return nil
}

func (f *fakeUsers) List(_ context.Context, page store.Page) ([]domain.User, int64, error) {
	out := []domain.User{}
	for id := uint(1); id <= f.nextID; id++ {
		if u, ok := f.rows[id]; ok {
			out = append(out, *u)
		}
	}
	return paginate(out, page), int64(len(out)), nil
}

type fakeScenarios struct {
	rows   map[uint]*domain.Scenario
	nextID uint
}

func newFakeScenarios() *fakeScenarios { return &fakeScenarios{rows: map[uint]*domain.Scenario{}} }

func (f *fakeScenarios) Create(_ context.Context, sc *domain.Scenario) error {
	f.nextID++
	sc.ID = f.nextID
	sc.CreatedAt = time.Now()
	sc.UpdatedAt = sc.CreatedAt.Add(time.Duration(f.nextID)) // strictly increasing
	cp := *sc
	f.rows[sc.ID] = &cp
	return nil
}

func (f *fakeScenarios) ListByUser(_ context.Context, userID uint, page store.Page) ([]domain.Scenario, int64, error) {
	out := []domain.Scenario{}
	for _, sc := range f.rows {
		if sc.UserID == userID {
			out = append(out, *sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return paginate(out, page), int64(len(out)), nil
}

func (f *fakeScenarios) Get(_ context.Context, id, userID uint) (*domain.Scenario, error) {
	sc, ok := f.rows[id]
	if !ok || sc.UserID != userID {
		return nil, store.ErrNotFound
	}
	cp := *sc
	return &cp, nil
}

func (f *fakeScenarios) Update(_ context.Context, userID uint, sc *domain.Scenario) error {
	existing, ok := f.rows[sc.ID]
	if !ok || existing.UserID != userID {
		return store.ErrNotFound
	}
	sc.UserID = existing.UserID
	sc.UpdatedAt = time.Now()
	cp := *sc
	f.rows[sc.ID] = &cp
	return nil
}

func (f *fakeScenarios) Delete(_ context.Context, id, userID uint) error {
	sc, ok := f.rows[id]
	if !ok || sc.UserID != userID {
		return store.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeScenarios) Compare(_ context.Context, userID uint, ids []uint) ([]domain.Scenario, error) {
	out := []domain.Scenario{}
	for _, id := range ids {
		if sc, ok := f.rows[id]; ok && sc.UserID == userID {
			out = append(out, *sc)
		}
	}
	return out, nil
}

type fakeRoth struct {
	rows []domain.RothConversion
}

func (f *fakeRoth) Create(_ context.Context, rc *domain.RothConversion) error {
	rc.ID = uint(len(f.rows) + 1)
	rc.CreatedAt = time.Now()
	f.rows = append(f.rows, *rc)
	return nil
}

func (f *fakeRoth) ListByUser(_ context.Context, userID uint, page store.Page) ([]domain.RothConversion, int64, error) {
	out := []domain.RothConversion{}
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return paginate(out, page), int64(len(out)), nil
}

func paginate[T any](rows []T, page store.Page) []T {
	start := page.Offset()
	if start >= len(rows) {
		return []T{}
	}
	end := start + page.Size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// memCache stores JSON like the redis cache does
type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache { return &memCache{entries: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (m *memCache) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = b
	return nil
}

func (m *memCache) DeletePrefix(_ context.Context, prefix string) error {
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}

type fakeAdvisor struct {
	recs []advisor.Recommendation
	err  error
}

func (f *fakeAdvisor) Recommend(context.Context, *domain.Scenario) ([]advisor.Recommendation, error) {
	return f.recs, f.err
}
