package service

import (
	"sync"

	"lastmile/internal/domain"
	"lastmile/internal/search"
)

// SearchService evaluates free-text queries against per-day search indices.
// Indices are rebuilt lazily whenever the ledger's data version moves.
type SearchService struct {
	ledgers *LedgerService

	mu      sync.Mutex
	indices []search.DayIndex
	version uint64
	fresh   bool
}

// NewSearchService creates a new SearchService.
func NewSearchService(ledgers *LedgerService) *SearchService {
	return &SearchService{ledgers: ledgers}
}

// Search parses the query and filters the day indices with it. A blank
// query matches every day; contradictory numeric bounds are not an error
// and simply match nothing.
func (s *SearchService) Search(query string) (search.Predicate, search.Result, error) {
	predicate := search.ParseQuery(query)

	indices, err := s.currentIndices()
	if err != nil {
		return search.Predicate{}, search.Result{}, err
	}
	return predicate, search.Filter(indices, predicate), nil
}

// currentIndices returns the cached indices, rebuilding them if the ledger
// has changed since they were built.
func (s *SearchService) currentIndices() ([]search.DayIndex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.ledgers.Version()
	if s.fresh && version == s.version {
		return s.indices, nil
	}

	err := s.ledgers.Read(func(l *domain.Ledger, v uint64) {
		s.indices = search.IndexLedger(l)
		s.version = v
		s.fresh = true
	})
	if err != nil {
		return nil, err
	}
	return s.indices, nil
}
