// Package weekwin computes closed Monday-to-Sunday week windows
package weekwin

import (
	"time"

	perr "ekilibria/internal/platform/errors"
)

// Window is an inclusive Monday-to-Sunday date range
// Start and End carry date precision only (midnight, UTC location of the ref)
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive day count of the window
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Contains reports whether t falls inside the window
// the end of the window stretches to the last instant of its Sunday
func (w Window) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	return t.Before(w.End.AddDate(0, 0, 1))
}

// FechaDesde returns the window start as an ISO date string
func (w Window) FechaDesde() string { return w.Start.Format("2006-01-02") }

// FechaHasta returns the window end as an ISO date string
func (w Window) FechaHasta() string { return w.End.Format("2006-01-02") }

// truncate drops the time-of-day component, keeping the location
func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// LastClosedWeek returns the most recently completed Monday-to-Sunday week
// strictly ending on or before ref. A ref that falls on a Sunday closes that
// same week
func LastClosedWeek(ref time.Time) Window {
	day := truncate(ref)
	// Go weekdays are Sunday=0; the scheme here counts Monday=0 .. Sunday=6
	weekday := (int(day.Weekday()) + 6) % 7
	daysSinceSunday := (weekday + 1) % 7
	sunday := day.AddDate(0, 0, -daysSinceSunday)
	return Window{Start: sunday.AddDate(0, 0, -6), End: sunday}
}

// Windows returns the last n closed weeks before ref in chronological order
// consecutive windows abut with no gaps or overlaps; n == 0 yields an empty
// slice and n < 0 is an error
func Windows(n int, ref time.Time) ([]Window, error) {
	if n < 0 {
		return nil, perr.InvalidArgf("week count must not be negative, got %d", n)
	}
	out := make([]Window, n)
	w := LastClosedWeek(ref)
	for i := n - 1; i >= 0; i-- {
		out[i] = w
		w = Window{Start: w.Start.AddDate(0, 0, -7), End: w.End.AddDate(0, 0, -7)}
	}
	return out, nil
}
