package daterange

import (
	"fmt"
	"math"
	"time"

	"stay/shared/failure"
)

const (
	// Layout is the wire format for stay dates.
	Layout = "2006-01-02"
)

// Range is a half-open date interval [Start, End) at whole-day granularity.
// A guest checking out on the 15th leaves the room free for a guest checking
// in on the 15th, so two back-to-back stays never overlap.
type Range struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// New builds a Range, rejecting zero-length and inverted intervals.
func New(start, end time.Time) (Range, error) {
	if !start.Before(end) {
		return Range{}, failure.InvalidRange("start date must be before end date") //nolint:wrapcheck
	}

	return Range{Start: start, End: end}, nil
}

// Parse builds a Range from two date strings in Layout format.
func Parse(start, end string) (Range, error) {
	startDate, err := time.Parse(Layout, start)
	if err != nil {
		return Range{}, failure.InvalidRange(fmt.Sprintf("invalid start date %q, expected format %s", start, Layout)) //nolint:wrapcheck
	}

	endDate, err := time.Parse(Layout, end)
	if err != nil {
		return Range{}, failure.InvalidRange(fmt.Sprintf("invalid end date %q, expected format %s", end, Layout)) //nolint:wrapcheck
	}

	return New(startDate, endDate)
}

// Overlaps reports whether two ranges share at least one night under
// half-open semantics. The predicate is symmetric.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// OverlapsAny reports whether the range overlaps any range in the set.
func (r Range) OverlapsAny(existing []Range) bool {
	for _, other := range existing {
		if r.Overlaps(other) {
			return true
		}
	}

	return false
}

// Equal reports whether both ranges cover the same interval.
func (r Range) Equal(other Range) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// Nights returns the number of nights covered by the range.
func (r Range) Nights() int {
	return int(math.Ceil(r.End.Sub(r.Start).Hours() / 24))
}

// StartString returns the start date in Layout format.
func (r Range) StartString() string {
	return r.Start.Format(Layout)
}

// EndString returns the end date in Layout format.
func (r Range) EndString() string {
	return r.End.Format(Layout)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.StartString(), r.EndString())
}
