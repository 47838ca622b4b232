package wellness

import (
	"math"
	"sort"
	"time"

	"ekilibria/internal/core/weekwin"
)

// CalendarMetrics holds the six meeting-derived features for one week
type CalendarMetrics struct {
	NumEvents              float64
	NumEventsOutsideHours  float64
	TotalMeetingHours      float64
	AvgMeetingDuration     float64
	MeetingsWeekend        float64
	NumMeetingsNoBreaks    float64
	NumOverlappingMeetings float64
}

const backToBackGap = 15 * time.Minute

// ExtractCalendar computes meeting metrics over the events that fall in win.
// All-day events and events with unusable bounds are skipped
func ExtractCalendar(win weekwin.Window, events []CalendarEvent, opts Options) CalendarMetrics {
	opts = opts.withDefaults()

	timed := make([]CalendarEvent, 0, len(events))
	for _, ev := range events {
		if ev.AllDay {
			continue
		}
		if ev.Start.IsZero() || ev.End.IsZero() || ev.End.Before(ev.Start) {
			continue
		}
		if !win.Contains(ev.Start) {
			continue
		}
		timed = append(timed, ev)
	}
	sort.Slice(timed, func(i, j int) bool { return timed[i].Start.Before(timed[j].Start) })

	var m CalendarMetrics
	var totalMinutes float64
	for i, ev := range timed {
		m.NumEvents++
		totalMinutes += ev.End.Sub(ev.Start).Minutes()

		if ev.Start.Hour() < opts.WorkdayStart || ev.End.Hour() > opts.WorkdayEnd {
			m.NumEventsOutsideHours++
		}
		if wd := ev.Start.Weekday(); wd == time.Saturday || wd == time.Sunday {
			m.MeetingsWeekend++
		}

		if i == 0 {
			continue
		}
		prev := timed[i-1]
		if ev.Start.Before(prev.End) {
			// concurrent meetings never count as missing a break
			m.NumOverlappingMeetings++
		} else if ev.Start.Sub(prev.End) < backToBackGap {
			m.NumMeetingsNoBreaks++
		}
	}

	m.TotalMeetingHours = round2(totalMinutes / 60)
	if m.NumEvents > 0 {
		m.AvgMeetingDuration = round2(totalMinutes / m.NumEvents)
	}
	return m
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
