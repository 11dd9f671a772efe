package postgres

import (
	"context"
	"database/sql"

	"lastmile/internal/domain"
)

// TripSourceRepository is a PostgreSQL implementation of
// repository.TripSource, reading the trips table the platform importer
// writes to.
type TripSourceRepository struct {
	q Querier
}

// NewTripSourceRepository creates a new PostgreSQL trip source.
func NewTripSourceRepository(db *sql.DB) *TripSourceRepository {
	return &TripSourceRepository{q: db}
}

// FetchAllTrips retrieves every raw trip row ordered by start timestamp.
// Every column is read as text; the importer is inconsistent about numeric
// types and the normalizer owns parsing.
func (r *TripSourceRepository) FetchAllTrips(ctx context.Context) ([]domain.RawTripRow, error) {
	query := `
		SELECT trip_id, external_trip_id, timestamp_start, timestamp_end,
		       restaurant, pickup_address, dropoff_address,
		       distance, net_earnings, tips, base_fare, bonuses, fees,
		       pickup_lng, pickup_lat, dropoff_lng, dropoff_lat,
		       service_type, product_type
		FROM trips
		ORDER BY timestamp_start ASC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []domain.RawTripRow
	for rows.Next() {
		var (
			row  domain.RawTripRow
			cols [19]sql.NullString
		)

		dest := make([]any, len(cols))
		for i := range cols {
			dest[i] = &cols[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		row.TripID = cols[0].String
		row.ExternalTripID = cols[1].String
		row.TimestampStart = cols[2].String
		row.TimestampEnd = cols[3].String
		row.Restaurant = cols[4].String
		row.PickupAddress = cols[5].String
		row.DropoffAddress = cols[6].String
		row.Distance = cols[7].String
		row.NetEarnings = cols[8].String
		row.Tips = cols[9].String
		row.BaseFare = cols[10].String
		row.Bonuses = cols[11].String
		row.Fees = cols[12].String
		row.PickupLng = cols[13].String
		row.PickupLat = cols[14].String
		row.DropoffLng = cols[15].String
		row.DropoffLat = cols[16].String
		row.ServiceType = cols[17].String
		row.ProductType = cols[18].String

		trips = append(trips, row)
	}

	return trips, rows.Err()
}
