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

type graphMessagesResponse struct {
	Value    []graphMessage `json:"value"`
	NextLink string         `json:"@odata.nextLink"`
}

type graphMessage struct {
	ID               string `json:"id"`
	ReceivedDateTime string `json:"receivedDateTime"` // RFC3339
	SentDateTime     string `json:"sentDateTime"`
}

// FetchMessages lists sent-items and inbox mail over the window
func (c *Client) FetchMessages(ctx context.Context, auth workspace.AuthContext, win weekwin.Window) ([]wellness.MessageRecord, error) {
	sent, err := c.messagesFromFolder(ctx, auth.Token, win, "SentItems", wellness.DirectionSent)
	if err != nil {
		return nil, err
	}
	received, err := c.messagesFromFolder(ctx, auth.Token, win, "Inbox", wellness.DirectionReceived)
	if err != nil {
		return nil, err
	}
	return append(sent, received...), nil
}

func (c *Client) messagesFromFolder(ctx context.Context, token string, win weekwin.Window, folder string, dir wellness.Direction) ([]wellness.MessageRecord, error) {
	from, to := windowBounds(win)

	params := url.Values{}
	params.Set("$filter", fmt.Sprintf(
		"receivedDateTime ge %s and receivedDateTime lt %s",
		from.Format("2006-01-02T15:04:05Z"), to.Format("2006-01-02T15:04:05Z"),
	))
	params.Set("$select", "receivedDateTime,sentDateTime")
	params.Set("$top", "500")

	next := fmt.Sprintf("%s/me/mailFolders/%s/messages?%s", c.base, url.PathEscape(folder), params.Encode())

	var out []wellness.MessageRecord
	for next != "" {
		var page graphMessagesResponse
		if err := c.getJSON(ctx, token, next, &page); err != nil {
			return nil, err
		}

		for _, msg := range page.Value {
			stamp := msg.ReceivedDateTime
			if dir == wellness.DirectionSent && msg.SentDateTime != "" {
				stamp = msg.SentDateTime
			}
			ts, err := time.Parse(time.RFC3339, stamp)
			if err != nil {
				logger.C(ctx).Warn().Str("message_id", msg.ID).Msg("skipping message without readable timestamp")
				continue
			}
			out = append(out, wellness.MessageRecord{Timestamp: ts, Direction: dir})
		}
		next = page.NextLink
	}
	return out, nil
}
