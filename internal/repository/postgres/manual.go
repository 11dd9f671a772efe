package postgres

import (
	"context"
	"database/sql"
	"time"

	"lastmile/internal/domain"
)

// ManualTripRepository is a PostgreSQL implementation of
// repository.ManualTripRepository.
type ManualTripRepository struct {
	q Querier
}

// NewManualTripRepository creates a new PostgreSQL manual trip repository.
func NewManualTripRepository(db *sql.DB) *ManualTripRepository {
	return &ManualTripRepository{q: db}
}

// Save persists a manual trip. Re-saving an existing ID is a no-op so
// clients can retry safely.
func (r *ManualTripRepository) Save(ctx context.Context, trip *domain.ManualTrip) error {
	query := `
		INSERT INTO manual_trips (
			id, trip_date, restaurant, pickup_address, dropoff_address,
			request_time, dropoff_time, duration_minutes, distance_miles,
			base_fare, tip, incentive, total_pay, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.Date,
		trip.Trip.Restaurant,
		trip.Trip.PickupAddress,
		trip.Trip.DropoffAddress,
		trip.Trip.RequestTime,
		trip.Trip.DropoffTime,
		trip.Trip.DurationMinutes,
		trip.Trip.DistanceMiles,
		trip.Trip.BaseFare,
		trip.Trip.Tip,
		trip.Trip.Incentive,
		trip.Trip.TotalPay,
		time.Now(),
	)
	return err
}

// GetAll retrieves all persisted manual trips ordered by date, then by
// insertion time within a day.
func (r *ManualTripRepository) GetAll(ctx context.Context) ([]*domain.ManualTrip, error) {
	query := `
		SELECT id, trip_date, restaurant, pickup_address, dropoff_address,
		       request_time, dropoff_time, duration_minutes, distance_miles,
		       base_fare, tip, incentive, total_pay
		FROM manual_trips
		ORDER BY trip_date ASC, created_at ASC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.ManualTrip
	for rows.Next() {
		var trip domain.ManualTrip
		if err := rows.Scan(
			&trip.ID,
			&trip.Date,
			&trip.Trip.Restaurant,
			&trip.Trip.PickupAddress,
			&trip.Trip.DropoffAddress,
			&trip.Trip.RequestTime,
			&trip.Trip.DropoffTime,
			&trip.Trip.DurationMinutes,
			&trip.Trip.DistanceMiles,
			&trip.Trip.BaseFare,
			&trip.Trip.Tip,
			&trip.Trip.Incentive,
			&trip.Trip.TotalPay,
		); err != nil {
			return nil, err
		}
		trip.Trip.ManualEntry = true
		trips = append(trips, &trip)
	}

	return trips, rows.Err()
}
