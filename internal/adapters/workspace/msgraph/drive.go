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

type graphDriveResponse struct {
	ID string `json:"id"`
}

type graphChildrenResponse struct {
	Value    []graphDriveItem `json:"value"`
	NextLink string           `json:"@odata.nextLink"`
}

type graphDriveItem struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	CreatedDateTime      string           `json:"createdDateTime"`
	LastModifiedDateTime string           `json:"lastModifiedDateTime"`
	Folder               *graphFolder     `json:"folder"`
	CreatedBy            graphIdentitySet `json:"createdBy"`
	LastModifiedBy       graphIdentitySet `json:"lastModifiedBy"`
}

type graphFolder struct {
	ChildCount int `json:"childCount"`
}

type graphIdentitySet struct {
	User graphIdentity `json:"user"`
}

type graphIdentity struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// FetchFiles walks the default drive and keeps files touched in the window
func (c *Client) FetchFiles(ctx context.Context, auth workspace.AuthContext, win weekwin.Window) ([]wellness.FileRecord, error) {
	token := auth.Token

	var drive graphDriveResponse
	if err := c.getJSON(ctx, token, c.base+"/me/drive", &drive); err != nil {
		return nil, err
	}

	items, err := c.listItems(ctx, token, drive.ID, "root", 0)
	if err != nil {
		return nil, err
	}

	// the children listing has no server-side time filter, so trim here
	from, to := windowBounds(win)

	out := make([]wellness.FileRecord, 0, len(items))
	for _, item := range items {
		rec, ok := mapDriveItem(item)
		if !ok {
			logger.C(ctx).Warn().Str("item_id", item.ID).Msg("skipping drive item with unusable timestamps")
			continue
		}
		if rec.ModifiedAt.Before(from) || !rec.ModifiedAt.Before(to) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// maxDriveDepth bounds the folder recursion
const maxDriveDepth = 10

// listItems walks the drive tree collecting files
func (c *Client) listItems(ctx context.Context, token, driveID, itemID string, depth int) ([]graphDriveItem, error) {
	if depth > maxDriveDepth {
		return nil, nil
	}

	next := fmt.Sprintf(
		"%s/drives/%s/items/%s/children?$select=id,name,createdDateTime,lastModifiedDateTime,folder,createdBy,lastModifiedBy",
		c.base, url.PathEscape(driveID), url.PathEscape(itemID),
	)

	var out []graphDriveItem
	for next != "" {
		var page graphChildrenResponse
		if err := c.getJSON(ctx, token, next, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Value {
			if item.Folder != nil {
				nested, err := c.listItems(ctx, token, driveID, item.ID, depth+1)
				if err != nil {
					return nil, err
				}
				out = append(out, nested...)
				continue
			}
			out = append(out, item)
		}
		next = page.NextLink
	}
	return out, nil
}

func mapDriveItem(item graphDriveItem) (wellness.FileRecord, bool) {
	created, err := time.Parse(time.RFC3339, item.CreatedDateTime)
	if err != nil {
		return wellness.FileRecord{}, false
	}
	modified, err := time.Parse(time.RFC3339, item.LastModifiedDateTime)
	if err != nil {
		return wellness.FileRecord{}, false
	}
	return wellness.FileRecord{
		CreatedAt:  created,
		ModifiedAt: modified,
		Owner:      item.CreatedBy.User.Email,
		LastEditor: item.LastModifiedBy.User.Email,
	}, true
}
