package msgraph

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

type graphEventsResponse struct {
	Value    []graphEvent `json:"value"`
	NextLink string       `json:"@odata.nextLink"`
}

type graphEvent struct {
	ID          string        `json:"id"`
	Subject     string        `json:"subject"`
	IsAllDay    bool          `json:"isAllDay"`
	IsCancelled bool          `json:"isCancelled"`
	Start       graphDateTime `json:"start"`
	End         graphDateTime `json:"end"`
}

type graphDateTime struct {
	DateTime string `json:"dateTime"` // local to TimeZone, no offset
	TimeZone string `json:"timeZone"`
}

// graph emits seven fractional digits and no offset
const graphTimeLayout = "2006-01-02T15:04:05"

// FetchCalendarEvents lists the default calendar over the window
func (c *Client) FetchCalendarEvents(ctx context.Context, auth workspace.AuthContext, win weekwin.Window) ([]wellness.CalendarEvent, error) {
	from, to := windowBounds(win)
	token := auth.Token

	params := url.Values{}
	params.Set("$filter", fmt.Sprintf(
		"start/dateTime ge '%s' and end/dateTime le '%s'",
		from.Format("2006-01-02T15:04:05Z"), to.Format("2006-01-02T15:04:05Z"),
	))
	params.Set("$orderby", "start/dateTime asc")
	params.Set("$select", "subject,start,end,isAllDay,isCancelled")
	params.Set("$top", "250")

	next := fmt.Sprintf("%s/me/events?%s", c.base, params.Encode())

	var out []wellness.CalendarEvent
	for next != "" {
		var page graphEventsResponse
		if err := c.getJSON(ctx, token, next, &page); err != nil {
			return nil, err
		}

		for _, evt := range page.Value {
			if evt.IsCancelled {
				continue
			}
			mapped, ok := mapEvent(evt)
			if !ok {
				logger.C(ctx).Warn().Str("event_id", evt.ID).Msg("skipping calendar event with unusable times")
				continue
			}
			out = append(out, mapped)
		}
		next = page.NextLink
	}
	return out, nil
}

func mapEvent(evt graphEvent) (wellness.CalendarEvent, bool) {
	start, err := time.Parse(graphTimeLayout, evt.Start.DateTime)
	if err != nil {
		return wellness.CalendarEvent{}, false
	}
	end, err := time.Parse(graphTimeLayout, evt.End.DateTime)
	if err != nil {
		return wellness.CalendarEvent{}, false
	}
	return wellness.CalendarEvent{Start: start, End: end, AllDay: evt.IsAllDay}, true
}
