package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"lastmile/internal/domain"
)

// ──────────────────────────────────────────────
// MOCK TRIP SOURCE
// ──────────────────────────────────────────────

// MockTripSource is a mock implementation of repository.TripSource.
type MockTripSource struct {
	mu   sync.RWMutex
	rows []domain.RawTripRow

	// Counters for verification
	FetchCallCount int32

	// Error injection
	FetchError error
}

// NewMockTripSource creates a new mock trip source.
func NewMockTripSource(rows ...domain.RawTripRow) *MockTripSource {
	return &MockTripSource{rows: rows}
}

// SetRows replaces the rows the source will return.
func (m *MockTripSource) SetRows(rows []domain.RawTripRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = rows
}

func (m *MockTripSource) FetchAllTrips(ctx context.Context) ([]domain.RawTripRow, error) {
	atomic.AddInt32(&m.FetchCallCount, 1)
	if m.FetchError != nil {
		return nil, m.FetchError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.RawTripRow, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

// ──────────────────────────────────────────────
// MOCK MANUAL TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockManualTripRepository is a mock implementation of
// repository.ManualTripRepository.
type MockManualTripRepository struct {
	mu    sync.RWMutex
	trips []*domain.ManualTrip

	// Counters for verification
	SaveCallCount   int32
	GetAllCallCount int32

	// Error injection
	SaveError   error
	GetAllError error
}

// NewMockManualTripRepository creates a new mock manual trip repository.
func NewMockManualTripRepository() *MockManualTripRepository {
	return &MockManualTripRepository{}
}

func (m *MockManualTripRepository) Save(ctx context.Context, trip *domain.ManualTrip) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips = append(m.trips, trip)
	return nil
}

func (m *MockManualTripRepository) GetAll(ctx context.Context) ([]*domain.ManualTrip, error) {
	atomic.AddInt32(&m.GetAllCallCount, 1)
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.ManualTrip, len(m.trips))
	copy(out, m.trips)
	return out, nil
}
