package wellness

import (
	"ekilibria/internal/core/weekwin"
)

// CommMetrics holds the three mail-derived features for one week.
// Values are per-day averages or window totals depending on Options
type CommMetrics struct {
	EmailsSent           float64
	EmailsSentOutOfHours float64
	EmailsReceived       float64
}

// ExtractComms computes mail metrics over the messages that fall in win.
// A message at exactly WorkdayEnd o'clock counts as out of hours
func ExtractComms(win weekwin.Window, msgs []MessageRecord, opts Options) CommMetrics {
	opts = opts.withDefaults()

	var sent, sentOut, received float64
	for _, msg := range msgs {
		if msg.Timestamp.IsZero() || !win.Contains(msg.Timestamp) {
			continue
		}
		switch msg.Direction {
		case DirectionSent:
			sent++
			h := msg.Timestamp.Hour()
			if h < opts.WorkdayStart || h >= opts.WorkdayEnd {
				sentOut++
			}
		case DirectionReceived:
			received++
		}
	}

	if opts.Aggregation == AggregationTotal {
		return CommMetrics{EmailsSent: sent, EmailsSentOutOfHours: sentOut, EmailsReceived: received}
	}

	days := float64(win.Days())
	if days <= 0 {
		days = 1
	}
	return CommMetrics{
		EmailsSent:           round2(sent / days),
		EmailsSentOutOfHours: round2(sentOut / days),
		EmailsReceived:       round2(received / days),
	}
}
