package models

import (
	"strings"
	"time"
)

// JournalEntry is a single diary entry as served by the backend.
//
// The entry is owned by the server: ID is assigned on creation and the
// publish/moderation flags (IsPublished, HiddenByAdmin) only reflect
// server-side workflow state. The client never computes them, it just
// triggers transitions (publish, unpublish, admin hide/restore) and
// re-reads the authoritative record.
type JournalEntry struct {
	// ID is the server-assigned identifier, immutable once created.
	ID int64 `json:"id"`

	// Title and Content are free text. The backend validates length,
	// the client does not.
	Title   string `json:"title"`
	Content string `json:"content"`

	// Mood is an optional free-text tag used for filtering and
	// mood-to-color mapping in list views.
	Mood string `json:"mood"`

	// Tags is a comma-joined string, not a structured list. Use
	// [JournalEntry.TagList] for display; empty segments are dropped.
	Tags string `json:"tags"`

	// Date is a calendar date string. The backend defaults it to the
	// creation day; the user may edit it afterwards.
	Date string `json:"date"`

	// IsPrivate controls whether the entry is visible to other users
	// through the public read endpoints.
	IsPrivate bool `json:"isPrivate"`

	IsPublished   bool `json:"isPublished"`
	HiddenByAdmin bool `json:"hiddenByAdmin"`

	// MediaURLs holds attachment references in display order. The order
	// is not guaranteed stable across re-fetches.
	MediaURLs []string `json:"mediaUrls"`

	// Denormalized owner info attached by the server. Read-only here.
	UserID    int64  `json:"user"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// TagList splits the comma-joined Tags string into clean tags.
// Empty segments ("a,b,,c") and surrounding whitespace are discarded.
func (e JournalEntry) TagList() []string {
	if e.Tags == "" {
		return nil
	}

	parts := strings.Split(e.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}

	if len(tags) == 0 {
		return nil
	}
	return tags
}

// entryDateLayouts are the date formats the backend has been observed to
// return, tried in order.
var entryDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// EntryTime parses the Date field. A missing or unparsable date yields the
// zero time so chronological sorting pushes the entry to one end of the
// list instead of failing.
func (e JournalEntry) EntryTime() time.Time {
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, e.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
