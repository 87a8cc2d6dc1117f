package taxipark

import (
	"fmt"
	"math"
	"slices"

	"github.com/cubny/taxipark/internal/collect"
)

// FakeDrivers returns the registered drivers who performed no trips
func (p *Park) FakeDrivers() Set[Driver] {
	active := NewSet[Driver]()
	for _, trip := range p.Trips {
		active.Add(trip.Driver)
	}

	fake := NewSet[Driver]()
	for driver := range p.AllDrivers {
		if !active.Has(driver) {
			fake.Add(driver)
		}
	}
	return fake
}

// FaithfulPassengers returns the registered passengers who completed at least minTrips trips.
// Registered passengers without trips count as zero, so minTrips 0 returns all of them.
func (p *Park) FaithfulPassengers(minTrips int) (Set[Passenger], error) {
	if minTrips < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeMinTrips, minTrips)
	}

	counts := collect.CountEach(p.Trips, passengerList, p.AllPassengers.Values()...)
	faithful := NewSet[Passenger]()
	for passenger := range p.AllPassengers {
		if counts[passenger] >= minTrips {
			faithful.Add(passenger)
		}
	}
	return faithful, nil
}

// FrequentPassengers returns the passengers who were taken by driver more than once
func (p *Park) FrequentPassengers(driver Driver) Set[Passenger] {
	var driven []Trip
	for _, trip := range p.Trips {
		if trip.Driver == driver {
			driven = append(driven, trip)
		}
	}

	counts := collect.CountEach(driven, passengerList)
	return NewSet(collect.KeysWhere(counts, func(c int) bool { return c > 1 })...)
}

// SmartPassengers returns the passengers who had a discount on the strict majority of their trips
func (p *Park) SmartPassengers() Set[Passenger] {
	// discounted trips count +1, full price trips -1
	balance := make(map[Passenger]int)
	for _, trip := range p.Trips {
		delta := -1
		if trip.Discount.Valid {
			delta = 1
		}
		for passenger := range trip.Passengers {
			balance[passenger] += delta
		}
	}

	return NewSet(collect.KeysWhere(balance, func(b int) bool { return b > 0 })...)
}

// MostFrequentTripDurationPeriod returns the period among 0..9, 10..19, 20..29 and so on
// holding the most trips. When periods tie the earliest one wins.
// ok is false when the park has no trips.
func (p *Park) MostFrequentTripDurationPeriod() (period Period, ok bool) {
	return mostFrequentPeriod(p.Trips, DefaultConfig().PeriodWidth)
}

// CheckParetoPrinciple reports whether the top 20% of drivers earned at least 80% of the income.
// It is false when the park has no trips.
func (p *Park) CheckParetoPrinciple() bool {
	c := DefaultConfig()
	return checkPareto(p, c.ParetoDriverShare, c.ParetoIncomeShare)
}

func mostFrequentPeriod(trips []Trip, width int) (Period, bool) {
	counts := collect.CountBy(trips, func(t Trip) int { return t.Duration / width })
	k, ok := collect.MaxBy(counts)
	if !ok {
		return Period{}, false
	}
	return periodOf(k*width, width), true
}

func checkPareto(p *Park, driverShare, incomeShare float64) bool {
	if len(p.Trips) == 0 {
		return false
	}

	topN := int(math.Floor(float64(p.AllDrivers.Len()) * driverShare))

	incomes := collect.SumBy(p.Trips, func(t Trip) Driver { return t.Driver }, func(t Trip) float64 { return t.Cost })
	total := 0.0
	for _, trip := range p.Trips {
		total += trip.Cost
	}
	sorted := make([]float64, 0, len(incomes))
	for _, income := range incomes {
		sorted = append(sorted, income)
	}
	slices.Sort(sorted)
	slices.Reverse(sorted)

	top := 0.0
	for _, income := range sorted[:min(topN, len(sorted))] {
		top += income
	}
	return top >= total*incomeShare
}
