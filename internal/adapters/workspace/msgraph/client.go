// Package msgraph fetches calendar, mail, and drive activity through the
// Microsoft Graph REST API
package msgraph

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"ekilibria/internal/adapters/workspace"
	"ekilibria/internal/core/weekwin"
	perr "ekilibria/internal/platform/errors"
)

const graphAPIBase = "https://graph.microsoft.com/v1.0"

// Client is a read-only Microsoft 365 activity source
type Client struct {
	httpc *http.Client
	base  string
}

// New returns a client with the default endpoint and timeout
func New() *Client {
	return NewWithClient(workspace.DefaultHTTPClient())
}

// NewWithClient returns a client using the given http.Client
func NewWithClient(httpc *http.Client) *Client {
	return &Client{httpc: httpc, base: graphAPIBase}
}

// NewWithBase points the client at base (for tests against httptest)
func NewWithBase(httpc *http.Client, base string) *Client {
	return &Client{httpc: httpc, base: base}
}

// AccountEmail resolves the acting address through /me
func (c *Client) AccountEmail(ctx context.Context, auth workspace.AuthContext) (string, error) {
	return c.accountEmail(ctx, auth.Token)
}

// getJSON performs an authorized GET and decodes the response into out
func (c *Client) getJSON(ctx context.Context, token, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Prefer", `outlook.timezone="UTC"`)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "graph api request")
	}
	defer resp.Body.Close() // nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return perr.Unauthorizedf("graph api rejected token: %d", resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return perr.Upstreamf("graph api error: %d - %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "decode graph response")
	}
	return nil
}

func (c *Client) accountEmail(ctx context.Context, token string) (string, error) {
	var me struct {
		Mail              string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
	}
	if err := c.getJSON(ctx, token, c.base+"/me", &me); err != nil {
		return "", err
	}
	if me.Mail != "" {
		return me.Mail, nil
	}
	return me.UserPrincipalName, nil
}

// windowBounds returns the UTC fetch range: window start inclusive, the
// midnight after the last day exclusive
func windowBounds(win weekwin.Window) (time.Time, time.Time) {
	start := time.Date(win.Start.Year(), win.Start.Month(), win.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(win.End.Year(), win.End.Month(), win.End.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return start, end
}

var _ workspace.ActivityDataSource = (*Client)(nil)
