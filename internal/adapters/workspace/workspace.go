// Package workspace defines the provider boundary for workplace activity
// sources. Concrete clients live in the per-provider subpackages and map
// vendor payloads into the neutral record types consumed by feature
// extraction
package workspace

import (
	"context"
	"net/http"
	"time"

	"ekilibria/internal/core/weekwin"
	"ekilibria/internal/core/wellness"
	perr "ekilibria/internal/platform/errors"
)

// Supported provider identifiers
const (
	ProviderGoogle    = "google"
	ProviderMicrosoft = "microsoft"
)

// AuthContext carries the caller identity for one fetch.
// Token is a provider OAuth access token obtained out of band
type AuthContext struct {
	Provider     string
	Token        string
	AccountEmail string
}

// Activity bundles everything fetched for one window.
// Account is the provider-resolved address, used as the document-activity
// identity when AuthContext.AccountEmail was empty
type Activity struct {
	Account  string
	Events   []wellness.CalendarEvent
	Messages []wellness.MessageRecord
	Files    []wellness.FileRecord
}

// ActivityDataSource fetches one window of workplace activity for a user.
// Implementations map vendor payloads into the neutral record types and
// skip malformed entries with a warning
type ActivityDataSource interface {
	FetchCalendarEvents(ctx context.Context, auth AuthContext, win weekwin.Window) ([]wellness.CalendarEvent, error)
	FetchMessages(ctx context.Context, auth AuthContext, win weekwin.Window) ([]wellness.MessageRecord, error)
	FetchFiles(ctx context.Context, auth AuthContext, win weekwin.Window) ([]wellness.FileRecord, error)

	// AccountEmail resolves the acting address when AuthContext carries none
	AccountEmail(ctx context.Context, auth AuthContext) (string, error)
}

// FetchAll pulls one window across every source of src
func FetchAll(ctx context.Context, src ActivityDataSource, auth AuthContext, win weekwin.Window) (Activity, error) {
	account := auth.AccountEmail
	if account == "" {
		resolved, err := src.AccountEmail(ctx, auth)
		if err != nil {
			return Activity{}, err
		}
		account = resolved
	}

	events, err := src.FetchCalendarEvents(ctx, auth, win)
	if err != nil {
		return Activity{}, err
	}
	msgs, err := src.FetchMessages(ctx, auth, win)
	if err != nil {
		return Activity{}, err
	}
	files, err := src.FetchFiles(ctx, auth, win)
	if err != nil {
		return Activity{}, err
	}

	return Activity{Account: account, Events: events, Messages: msgs, Files: files}, nil
}

// ValidProvider reports whether p names a supported provider
func ValidProvider(p string) bool {
	return p == ProviderGoogle || p == ProviderMicrosoft
}

// UnknownProviderErr is the shared error for unrecognized provider ids
func UnknownProviderErr(p string) error {
	return perr.InvalidArgf("unknown provider %q", p)
}

// DefaultHTTPClient is the client the provider adapters use unless one is
// injected
func DefaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
