package taxipark

import "fmt"

// Park is the dataset the queries run against.
// Trips may reference drivers and passengers that are not registered.
type Park struct {
	AllDrivers    Set[Driver]
	AllPassengers Set[Passenger]
	Trips         []Trip
}

// NewPark creates a Park; nil sets are replaced with empty ones
func NewPark(drivers Set[Driver], passengers Set[Passenger], trips []Trip) *Park {
	if drivers == nil {
		drivers = NewSet[Driver]()
	}
	if passengers == nil {
		passengers = NewSet[Passenger]()
	}

	return &Park{
		AllDrivers:    drivers,
		AllPassengers: passengers,
		Trips:         trips,
	}
}

// Validate validates every trip of the park
func (p *Park) Validate() error {
	for i, trip := range p.Trips {
		if err := trip.Validate(); err != nil {
			return fmt.Errorf("trip %d: %w", i, err)
		}
	}

	return nil
}

// Unregistered returns the drivers and passengers that take part in trips
// but are missing from the registered sets
func (p *Park) Unregistered() (Set[Driver], Set[Passenger]) {
	drivers := NewSet[Driver]()
	passengers := NewSet[Passenger]()
	for _, trip := range p.Trips {
		if !p.AllDrivers.Has(trip.Driver) {
			drivers.Add(trip.Driver)
		}
		for passenger := range trip.Passengers {
			if !p.AllPassengers.Has(passenger) {
				passengers.Add(passenger)
			}
		}
	}

	return drivers, passengers
}
