package wellness

import (
	"ekilibria/internal/core/weekwin"
)

// Aggregate combines per-source metrics into the full feature vector for win
func Aggregate(cal CalendarMetrics, comm CommMetrics, docs DocMetrics, win weekwin.Window) (FeatureVector, error) {
	v := FeatureVector{
		FechaDesde: win.FechaDesde(),
		FechaHasta: win.FechaHasta(),
		Features: map[string]float64{
			"num_events":               cal.NumEvents,
			"num_events_outside_hours": cal.NumEventsOutsideHours,
			"total_meeting_hours":      cal.TotalMeetingHours,
			"avg_meeting_duration":     cal.AvgMeetingDuration,
			"meetings_weekend":         cal.MeetingsWeekend,
			"emails_sent":              comm.EmailsSent,
			"emails_sent_out_of_hours": comm.EmailsSentOutOfHours,
			"docs_created":             docs.DocsCreated,
			"docs_edited":              docs.DocsEdited,
			"num_meetings_no_breaks":   cal.NumMeetingsNoBreaks,
			"emails_received":          comm.EmailsReceived,
			"num_overlapping_meetings": cal.NumOverlappingMeetings,
		},
	}
	if err := v.Validate(); err != nil {
		return FeatureVector{}, err
	}
	return v, nil
}
