package wellness

// Aggregation selects how communication counts are reported
type Aggregation string

const (
	// AggregationAverage reports per-day averages over the window
	AggregationAverage Aggregation = "average"
	// AggregationTotal reports raw counts over the window
	AggregationTotal Aggregation = "total"
)

// Options tunes extraction. Zero value means 09:00-18:00 working hours and
// per-day averages for communication features
type Options struct {
	// WorkdayStart is the first in-hours hour of day (inclusive)
	WorkdayStart int
	// WorkdayEnd is the last in-hours hour of day (exclusive for messages)
	WorkdayEnd int
	// Aggregation picks average or total for communication counts
	Aggregation Aggregation
}

func (o Options) withDefaults() Options {
	if o.WorkdayStart == 0 && o.WorkdayEnd == 0 {
		o.WorkdayStart, o.WorkdayEnd = 9, 18
	}
	if o.Aggregation == "" {
		o.Aggregation = AggregationAverage
	}
	return o
}
