package google

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"ekilibria/internal/adapters/workspace"
	"ekilibria/internal/core/weekwin"
	"ekilibria/internal/core/wellness"
	"ekilibria/internal/platform/logger"
)

type gcalListResponse struct {
	NextPageToken string      `json:"nextPageToken"`
	Items         []gcalEvent `json:"items"`
}

type gcalEvent struct {
	ID      string       `json:"id"`
	Status  string       `json:"status"`
	Summary string       `json:"summary"`
	Start   gcalDateTime `json:"start"`
	End     gcalDateTime `json:"end"`
}

type gcalDateTime struct {
	Date     string `json:"date"`     // all-day events (YYYY-MM-DD)
	DateTime string `json:"dateTime"` // timed events (RFC3339)
	TimeZone string `json:"timeZone"`
}

// FetchCalendarEvents lists the primary calendar over the window, recurring
// events expanded
func (c *Client) FetchCalendarEvents(ctx context.Context, auth workspace.AuthContext, win weekwin.Window) ([]wellness.CalendarEvent, error) {
	from, to := windowBounds(win)
	token := auth.Token

	params := url.Values{}
	params.Set("timeMin", from.Format(time.RFC3339))
	params.Set("timeMax", to.Format(time.RFC3339))
	params.Set("singleEvents", "true") // expand recurring events
	params.Set("orderBy", "startTime")
	params.Set("maxResults", "250")

	var out []wellness.CalendarEvent
	for {
		endpoint := fmt.Sprintf("%s/calendars/primary/events?%s", c.calendarBase, params.Encode())

		var page gcalListResponse
		if err := c.getJSON(ctx, token, endpoint, &page); err != nil {
			return nil, err
		}

		for _, evt := range page.Items {
			if evt.Status == "cancelled" {
				continue
			}
			mapped, ok := mapEvent(evt)
			if !ok {
				logger.C(ctx).Warn().Str("event_id", evt.ID).Msg("skipping calendar event with unusable times")
				continue
			}
			out = append(out, mapped)
		}

		if page.NextPageToken == "" {
			return out, nil
		}
		params.Set("pageToken", page.NextPageToken)
	}
}

func mapEvent(evt gcalEvent) (wellness.CalendarEvent, bool) {
	if evt.Start.Date != "" || evt.End.Date != "" {
		// date-only bounds mean an all-day event
		start, _ := time.Parse("2006-01-02", evt.Start.Date)
		end, _ := time.Parse("2006-01-02", evt.End.Date)
		return wellness.CalendarEvent{Start: start, End: end, AllDay: true}, true
	}

	start, err := time.Parse(time.RFC3339, evt.Start.DateTime)
	if err != nil {
		return wellness.CalendarEvent{}, false
	}
	end, err := time.Parse(time.RFC3339, evt.End.DateTime)
	if err != nil {
		return wellness.CalendarEvent{}, false
	}
	return wellness.CalendarEvent{Start: start, End: end}, true
}
