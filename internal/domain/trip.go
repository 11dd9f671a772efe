package domain

// RawTripRow is a trip row as returned by the backing trips store, before
// normalization. Numeric fields arrive as text because the upstream importer
// writes everything as strings; parsing with a zero fallback happens in the
// normalizer.
type RawTripRow struct {
	TripID         string
	ExternalTripID string
	TimestampStart string // ISO datetime
	TimestampEnd   string // ISO datetime
	Restaurant     string
	PickupAddress  string
	DropoffAddress string
	Distance       string
	NetEarnings    string
	Tips           string
	BaseFare       string
	Bonuses        string
	Fees           string
	PickupLng      string
	PickupLat      string
	DropoffLng     string
	DropoffLat     string
	ServiceType    string
	ProductType    string
}

// Coords is a (longitude, latitude) pair.
type Coords struct {
	Lng float64
	Lat float64
}

// TripRecord is the canonical trip shape. All fields are fully populated by
// the normalizer; consumers never need to re-apply defaults.
type TripRecord struct {
	ID              string
	Restaurant      string // "Unknown" when the source row has none
	PickupAddress   string
	DropoffAddress  string
	RequestTime     string // 12-hour clock, e.g. "07:09 PM"
	DropoffTime     string
	DurationMinutes int // clamped to >= 0
	DistanceMiles   float64
	PickupCoords    *Coords
	DropoffCoords   *Coords
	TotalPay        float64 // net earnings; authoritative, not BaseFare+Tip+Incentive
	BaseFare        float64
	Tip             float64
	Incentive       float64
	OrderRefund     float64
	ServiceType     string
	ProductType     string
	ManualEntry     bool
}

// PerHour returns the trip's earnings rate per hour, or 0 when duration is
// unknown.
func (t *TripRecord) PerHour() float64 {
	if t.DurationMinutes <= 0 {
		return 0
	}
	return t.TotalPay / (float64(t.DurationMinutes) / 60.0)
}

// PerMile returns the trip's earnings rate per mile, or 0 when distance is
// unknown.
func (t *TripRecord) PerMile() float64 {
	if t.DistanceMiles <= 0 {
		return 0
	}
	return t.TotalPay / t.DistanceMiles
}
