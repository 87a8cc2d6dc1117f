package taxipark

import "fmt"

// Trip is one completed ride
type Trip struct {
	Driver     Driver
	Passengers Set[Passenger]
	// Duration in minutes
	Duration int
	Cost     float64
	Discount Discount
}

// NewTrip creates a Trip and validates it
func NewTrip(driver Driver, passengers []Passenger, duration int, cost float64, discount Discount) (Trip, error) {
	trip := Trip{
		Driver:     driver,
		Passengers: NewSet(passengers...),
		Duration:   duration,
		Cost:       cost,
		Discount:   discount,
	}
	if err := trip.Validate(); err != nil {
		return Trip{}, err
	}

	return trip, nil
}

// Validate checks the trip invariants. It does not check that the driver
// or the passengers are registered in any park.
func (t Trip) Validate() error {
	switch {
	case len(t.Passengers) == 0:
		return fmt.Errorf("%w: no passengers", ErrInvalidTrip)
	case t.Duration < 0:
		return fmt.Errorf("%w: negative duration %d", ErrInvalidTrip, t.Duration)
	case t.Cost < 0:
		return fmt.Errorf("%w: negative cost %v", ErrInvalidTrip, t.Cost)
	case t.Discount.Valid && (t.Discount.Rate <= 0 || t.Discount.Rate >= 1):
		return fmt.Errorf("%w: discount %v is out of (0,1)", ErrInvalidTrip, t.Discount.Rate)
	}

	return nil
}

// passengerList is a collect expandFunc listing the passengers of a trip
func passengerList(t Trip) []Passenger {
	return t.Passengers.Values()
}
