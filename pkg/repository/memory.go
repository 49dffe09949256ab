package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/models"
)

// MemoryStore is a map-backed Store for tests and local development
type MemoryStore struct {
	mu     sync.RWMutex
	shifts map[string]models.ShiftRequest
	staff  map[string]models.Staff
	now    func() time.Time
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		shifts: make(map[string]models.ShiftRequest),
		staff:  make(map[string]models.Staff),
		now:    time.Now,
	}
}

func (m *MemoryStore) CreateShiftRequest(ctx context.Context, req *models.ShiftRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	PrepareNew(req, m.now())
	if _, exists := m.shifts[req.ID]; exists {
		return ErrAlreadyExists
	}
	m.shifts[req.ID] = *req
	return nil
}

func (m *MemoryStore) GetShiftRequest(ctx context.Context, id string) (*models.ShiftRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	req, ok := m.shifts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &req, nil
}

func (m *MemoryStore) ListShiftRequests(ctx context.Context, filter ShiftFilter) ([]models.ShiftRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.ShiftRequest, 0, len(m.shifts))
	for _, req := range m.shifts {
		if filter.Match(req) {
			out = append(out, req)
		}
	}
	SortShiftRequests(out)
	return out, nil
}

func (m *MemoryStore) UpdateShiftStatus(ctx context.Context, id string, status models.Status) (*models.ShiftRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req, ok := m.shifts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := ValidateTransition(req.Status, status); err != nil {
		return nil, err
	}
	req.Status = status
	req.UpdatedAt = m.now().UTC()
	m.shifts[id] = req
	return &req, nil
}

func (m *MemoryStore) CreateStaff(ctx context.Context, staff *models.Staff) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.staff[staff.ID]; exists {
		return ErrAlreadyExists
	}
	if staff.CreatedAt.IsZero() {
		staff.CreatedAt = m.now().UTC()
	}
	m.staff[staff.ID] = *staff
	return nil
}

func (m *MemoryStore) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.staff[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) ListStaff(ctx context.Context) ([]models.Staff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Staff, 0, len(m.staff))
	for _, s := range m.staff {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.staff[staff.ID]
	if !ok {
		return ErrNotFound
	}
	staff.CreatedAt = existing.CreatedAt
	m.staff[staff.ID] = *staff
	return nil
}

func (m *MemoryStore) DeleteStaff(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.staff[id]; !ok {
		return ErrNotFound
	}
	delete(m.staff, id)
	return nil
}

func (m *MemoryStore) Ping(ctx context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }

// SortShiftRequests orders requests by date, start time and id
func SortShiftRequests(reqs []models.ShiftRequest) {
	sort.Slice(reqs, func(i, j int) bool {
		a, b := reqs[i], reqs[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.ID < b.ID
	})
}
