/*
	Package taxipark computes statistics over an in-memory taxi park: the registered drivers
	and passengers and the list of completed trips. Queries are methods on Park, they never
	mutate it and they are safe to call concurrently on a park nobody is modifying.

	Analyzer wraps the same queries with logging, Prometheus metrics and configurable
	thresholds.
*/
package taxipark

import "errors"

var (
	// ErrNegativeMinTrips is returned when a trip count threshold is below zero
	ErrNegativeMinTrips = errors.New("minTrips should not be negative")
	// ErrInvalidTrip is returned by trip validation
	ErrInvalidTrip = errors.New("invalid trip")
	// ErrInvalidConfig is returned by Config.Validate
	ErrInvalidConfig = errors.New("invalid config")
)

// Driver identifies a driver
type Driver string

// Passenger identifies a passenger
type Passenger string

// Discount is an optional discount rate applied to a trip.
// The zero value means no discount.
type Discount struct {
	Rate  float64
	Valid bool
}

// NoDiscount is the absent discount
var NoDiscount = Discount{}

// WithDiscount returns a present discount of the given rate
func WithDiscount(rate float64) Discount {
	return Discount{Rate: rate, Valid: true}
}
