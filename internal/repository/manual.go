package repository

import (
	"context"

	"lastmile/internal/domain"
)

// ManualTripRepository persists user-entered trips so they survive reloads.
type ManualTripRepository interface {
	// Save persists a manual trip.
	Save(ctx context.Context, trip *domain.ManualTrip) error

	// GetAll retrieves all persisted manual trips, ordered by date.
	GetAll(ctx context.Context) ([]*domain.ManualTrip, error)
}
