package date

// Range represents an inclusive range of dates.
//
// A Range whose From is after its To contains no date.
type Range struct {
	From, To Date

	bounded bool // has an explicit end date
}

// On returns the range of a single day.
func On(d Date) Range { return Range{From: d, To: d} }

// Between returns the inclusive range [from, to]. It is not a single day
// range, even when from and to are equal.
func Between(from, to Date) Range { return Range{From: from, To: to, bounded: true} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsDay reports whether the range is a single day given without an end date.
func (r Range) IsDay() bool { return !r.bounded && r.From == r.To }

// String returns "2024-01-01" for a single day, "2024-01-01..2024-01-05" otherwise.
func (r Range) String() string {
	if r.IsDay() {
		return r.From.String()
	}
	return r.From.String() + ".." + r.To.String()
}
