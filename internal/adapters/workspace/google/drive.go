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

type driveListResponse struct {
	Files         []driveFile `json:"files"`
	NextPageToken string      `json:"nextPageToken"`
}

type driveFile struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	CreatedTime       string        `json:"createdTime"`
	ModifiedTime      string        `json:"modifiedTime"`
	Owners            []drivePerson `json:"owners"`
	LastModifyingUser drivePerson   `json:"lastModifyingUser"`
}

type drivePerson struct {
	EmailAddress string `json:"emailAddress"`
}

// FetchFiles lists drive files modified during the window
func (c *Client) FetchFiles(ctx context.Context, auth workspace.AuthContext, win weekwin.Window) ([]wellness.FileRecord, error) {
	from, to := windowBounds(win)
	token := auth.Token

	params := url.Values{}
	params.Set("q", fmt.Sprintf(
		"modifiedTime >= '%s' and modifiedTime < '%s' and trashed = false",
		from.Format(time.RFC3339), to.Format(time.RFC3339),
	))
	params.Set("fields", "nextPageToken, files(id, name, createdTime, modifiedTime, owners, lastModifyingUser)")
	params.Set("pageSize", "1000")

	var out []wellness.FileRecord
	for {
		endpoint := fmt.Sprintf("%s/files?%s", c.driveBase, params.Encode())

		var page driveListResponse
		if err := c.getJSON(ctx, token, endpoint, &page); err != nil {
			return nil, err
		}

		for _, f := range page.Files {
			rec, ok := mapFile(f)
			if !ok {
				logger.C(ctx).Warn().Str("file_id", f.ID).Msg("skipping drive file with unusable timestamps")
				continue
			}
			out = append(out, rec)
		}

		if page.NextPageToken == "" {
			return out, nil
		}
		params.Set("pageToken", page.NextPageToken)
	}
}

func mapFile(f driveFile) (wellness.FileRecord, bool) {
	created, err := time.Parse(time.RFC3339, f.CreatedTime)
	if err != nil {
		return wellness.FileRecord{}, false
	}
	modified, err := time.Parse(time.RFC3339, f.ModifiedTime)
	if err != nil {
		return wellness.FileRecord{}, false
	}

	rec := wellness.FileRecord{CreatedAt: created, ModifiedAt: modified}
	if len(f.Owners) > 0 {
		rec.Owner = f.Owners[0].EmailAddress
	}
	rec.LastEditor = f.LastModifyingUser.EmailAddress
	return rec, true
}
