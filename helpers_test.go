package taxipark

func drivers(names ...string) Set[Driver] {
	s := NewSet[Driver]()
	for _, n := range names {
		s.Add(Driver(n))
	}
	return s
}

func passengers(names ...string) Set[Passenger] {
	s := NewSet[Passenger]()
	for _, n := range names {
		s.Add(Passenger(n))
	}
	return s
}

// trip builds a trip without validation; an optional trailing rate sets a discount
func trip(driver string, riders []string, duration int, cost float64, rate ...float64) Trip {
	t := Trip{
		Driver:     Driver(driver),
		Passengers: passengers(riders...),
		Duration:   duration,
		Cost:       cost,
	}
	if len(rate) > 0 {
		t.Discount = WithDiscount(rate[0])
	}
	return t
}

func durations(ds ...int) []Trip {
	trips := make([]Trip, 0, len(ds))
	for _, d := range ds {
		trips = append(trips, trip("d1", []string{"p1"}, d, 1))
	}
	return trips
}
