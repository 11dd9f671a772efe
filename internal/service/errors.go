package service

import "errors"

var (
	// ErrLoadFailed is returned when the trip source fetch fails outright.
	// There is no partial-data recovery; the caller must retry the full load.
	ErrLoadFailed = errors.New("trip history load failed")

	// ErrNotLoaded is returned when the ledger has not been built yet.
	ErrNotLoaded = errors.New("trip history not loaded")

	// ErrInvalidTripDate is returned when a manual trip date is not a valid
	// YYYY-MM-DD day.
	ErrInvalidTripDate = errors.New("invalid trip date")

	// ErrInvalidRestaurant is returned when a manual trip has no restaurant
	// name.
	ErrInvalidRestaurant = errors.New("invalid restaurant name")

	// ErrInvalidAmount is returned when a manual trip carries a negative
	// fare, tip, incentive, or distance.
	ErrInvalidAmount = errors.New("invalid negative amount")

	// ErrInvalidWeekStart is returned when a week query parameter is not a
	// valid date.
	ErrInvalidWeekStart = errors.New("invalid week start date")

	// ErrDayNotFound is returned when no day bucket exists for a date.
	ErrDayNotFound = errors.New("day not found")
)
