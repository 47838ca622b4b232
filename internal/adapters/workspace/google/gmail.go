package google

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"ekilibria/internal/adapters/workspace"
	"ekilibria/internal/core/weekwin"
	"ekilibria/internal/core/wellness"
	"ekilibria/internal/platform/logger"
)

type gmailListResponse struct {
	Messages      []gmailRef `json:"messages"`
	NextPageToken string     `json:"nextPageToken"`
}

type gmailRef struct {
	ID string `json:"id"`
}

type gmailMessage struct {
	ID           string `json:"id"`
	InternalDate string `json:"internalDate"` // epoch millis
}

// FetchMessages lists sent and primary-inbox mail over the window
func (c *Client) FetchMessages(ctx context.Context, auth workspace.AuthContext, win weekwin.Window) ([]wellness.MessageRecord, error) {
	from, to := windowBounds(win)
	token := auth.Token
	// Gmail date queries are day-granular: after is inclusive, before exclusive
	rangeQ := fmt.Sprintf("after:%s before:%s", from.Format("2006/01/02"), to.Format("2006/01/02"))

	sent, err := c.messagesByQuery(ctx, token, rangeQ+" in:sent", wellness.DirectionSent)
	if err != nil {
		return nil, err
	}
	received, err := c.messagesByQuery(ctx, token, rangeQ+" in:inbox category:primary", wellness.DirectionReceived)
	if err != nil {
		return nil, err
	}
	return append(sent, received...), nil
}

func (c *Client) messagesByQuery(ctx context.Context, token, query string, dir wellness.Direction) ([]wellness.MessageRecord, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", "500")

	var out []wellness.MessageRecord
	for {
		endpoint := fmt.Sprintf("%s/users/me/messages?%s", c.gmailBase, params.Encode())

		var page gmailListResponse
		if err := c.getJSON(ctx, token, endpoint, &page); err != nil {
			return nil, err
		}

		for _, ref := range page.Messages {
			ts, err := c.messageTimestamp(ctx, token, ref.ID)
			if err != nil {
				logger.C(ctx).Warn().Err(err).Str("message_id", ref.ID).Msg("skipping message without readable timestamp")
				continue
			}
			out = append(out, wellness.MessageRecord{Timestamp: ts, Direction: dir})
		}

		if page.NextPageToken == "" {
			return out, nil
		}
		params.Set("pageToken", page.NextPageToken)
	}
}

func (c *Client) messageTimestamp(ctx context.Context, token, id string) (time.Time, error) {
	endpoint := fmt.Sprintf("%s/users/me/messages/%s?format=metadata", c.gmailBase, url.PathEscape(id))

	var msg gmailMessage
	if err := c.getJSON(ctx, token, endpoint, &msg); err != nil {
		return time.Time{}, err
	}
	millis, err := strconv.ParseInt(msg.InternalDate, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(millis).UTC(), nil
}
