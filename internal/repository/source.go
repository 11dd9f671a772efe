package repository

import (
	"context"

	"lastmile/internal/domain"
)

// TripSource provides the full raw trip history from the backing store. A
// fetch failure is fatal to aggregation; there is no partial-data path.
type TripSource interface {
	// FetchAllTrips retrieves every raw trip row, ordered ascending by
	// start timestamp.
	FetchAllTrips(ctx context.Context) ([]domain.RawTripRow, error)
}
