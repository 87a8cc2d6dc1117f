package taxipark

import "fmt"

// Period is an inclusive range of trip durations in minutes, e.g. 20..29
type Period struct {
	Start, End int
}

// periodOf returns the period of the given width which contains duration
func periodOf(duration, width int) Period {
	start := duration / width * width
	return Period{Start: start, End: start + width - 1}
}

// Contains reports whether the duration falls in the period
func (p Period) Contains(duration int) bool {
	return duration >= p.Start && duration <= p.End
}

func (p Period) String() string {
	return fmt.Sprintf("%d..%d", p.Start, p.End)
}
