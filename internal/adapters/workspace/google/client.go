// Package google fetches calendar, mail, and drive activity through the
// Google Workspace REST APIs
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ekilibria/internal/adapters/workspace"
	"ekilibria/internal/core/weekwin"
	perr "ekilibria/internal/platform/errors"
)

const (
	calendarAPIBase = "https://www.googleapis.com/calendar/v3"
	gmailAPIBase    = "https://gmail.googleapis.com/gmail/v1"
	driveAPIBase    = "https://www.googleapis.com/drive/v3"
)

// Client is a read-only Google Workspace activity source
type Client struct {
	httpc        *http.Client
	calendarBase string
	gmailBase    string
	driveBase    string
}

// New returns a client with default endpoints and timeout
func New() *Client {
	return NewWithClient(workspace.DefaultHTTPClient())
}

// NewWithClient returns a client using the given http.Client
func NewWithClient(httpc *http.Client) *Client {
	return &Client{
		httpc:        httpc,
		calendarBase: calendarAPIBase,
		gmailBase:    gmailAPIBase,
		driveBase:    driveAPIBase,
	}
}

// NewWithBase points every endpoint at base (for tests against httptest)
func NewWithBase(httpc *http.Client, base string) *Client {
	return &Client{httpc: httpc, calendarBase: base, gmailBase: base, driveBase: base}
}

// getJSON performs an authorized GET and decodes the response into out
func (c *Client) getJSON(ctx context.Context, token, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "google api request")
	}
	defer resp.Body.Close() // nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return perr.Unauthorizedf("google api rejected token: %d", resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return perr.Upstreamf("google api error: %d - %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "decode google response")
	}
	return nil
}

// AccountEmail resolves the acting address through the drive about endpoint
func (c *Client) AccountEmail(ctx context.Context, auth workspace.AuthContext) (string, error) {
	return c.accountEmail(ctx, auth.Token)
}

func (c *Client) accountEmail(ctx context.Context, token string) (string, error) {
	var about struct {
		User struct {
			EmailAddress string `json:"emailAddress"`
		} `json:"user"`
	}
	url := fmt.Sprintf("%s/about?fields=user(emailAddress)", c.driveBase)
	if err := c.getJSON(ctx, token, url, &about); err != nil {
		return "", err
	}
	return about.User.EmailAddress, nil
}

// windowBounds returns the UTC fetch range: window start inclusive, the
// midnight after the last day exclusive
func windowBounds(win weekwin.Window) (time.Time, time.Time) {
	start := time.Date(win.Start.Year(), win.Start.Month(), win.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(win.End.Year(), win.End.Month(), win.End.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return start, end
}

var _ workspace.ActivityDataSource = (*Client)(nil)
