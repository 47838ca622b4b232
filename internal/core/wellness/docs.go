package wellness

import (
	"ekilibria/internal/core/weekwin"
)

// DocMetrics holds the two document-activity features for one week
type DocMetrics struct {
	DocsCreated float64
	DocsEdited  float64
}

// ExtractDocs computes document metrics over files the user touched in win.
// A file the user created in the window counts only as created, never also
// as edited, regardless of later modifications
func ExtractDocs(win weekwin.Window, files []FileRecord, user string) DocMetrics {
	var m DocMetrics
	for _, f := range files {
		createdHere := !f.CreatedAt.IsZero() && win.Contains(f.CreatedAt) && f.Owner == user
		if createdHere {
			m.DocsCreated++
			continue
		}
		if !f.ModifiedAt.IsZero() && win.Contains(f.ModifiedAt) && f.LastEditor == user {
			m.DocsEdited++
		}
	}
	return m
}
