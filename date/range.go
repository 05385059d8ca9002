package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range covering the standard period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains returns true if the date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days covered by the range.
func (r Range) Days() int { return r.From.DaysTo(r.To) + 1 }
