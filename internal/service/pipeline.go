// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package service

import (
	"sort"
	"strings"

	"github.com/kolpakovda/go-journal-client/models"
)

// Sort keys accepted by [ListQuery].
const (
	SortByDate  = "date"
	SortByTitle = "title"
	SortByMood  = "mood"
)

// Sort directions accepted by [ListQuery].
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// MoodFilterAll disables the mood filter.
const MoodFilterAll = "all"

// ListQuery describes one pass of the dashboard's filter and sort pipeline.
// The zero value matches every entry and leaves the order untouched except
// for the default date sort.
type ListQuery struct {
	// Search is matched case-insensitively as a substring against title,
	// content, tags and mood; an entry qualifies when any field matches.
	Search string
	// Mood must match the entry mood exactly, ignoring case. Empty or
	// [MoodFilterAll] disables the filter.
	Mood string
	// SortBy is one of the SortBy* keys; anything else falls back to date.
	SortBy string
	// Order is [SortAsc] or [SortDesc]; anything else falls back to descending,
	// newest first being the natural dashboard order.
	Order string
}

// Apply runs the pipeline over a snapshot of entries and returns a new
// ordered slice. The input is never mutated and the sort is stable, so
// re-running the same query over the same snapshot never reshuffles ties.
func (q ListQuery) Apply(entries []models.JournalEntry) []models.JournalEntry {
	filtered := make([]models.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if q.matches(entry) {
			filtered = append(filtered, entry)
		}
	}

	sort.SliceStable(filtered, func(i, k int) bool {
		return q.less(filtered[i], filtered[k])
	})

	return filtered
}

func (q ListQuery) matches(entry models.JournalEntry) bool {
	if mood := strings.TrimSpace(q.Mood); mood != "" && !strings.EqualFold(mood, MoodFilterAll) {
		if !strings.EqualFold(entry.Mood, mood) {
			return false
		}
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search == "" {
		return true
	}

	for _, field := range []string{entry.Title, entry.Content, entry.Tags, entry.Mood} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (q ListQuery) less(a, b models.JournalEntry) bool {
	asc := q.Order == SortAsc

	switch q.SortBy {
	case SortByTitle:
		ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title)
		if asc {
			return ta < tb
		}
		return ta > tb
	case SortByMood:
		ma, mb := strings.ToLower(a.Mood), strings.ToLower(b.Mood)
		if asc {
			return ma < mb
		}
		return ma > mb
	default:
		if asc {
			return a.EntryTime().Before(b.EntryTime())
		}
		return a.EntryTime().After(b.EntryTime())
	}
}

// Moods returns the distinct moods present in entries, lower-cased and
// sorted, for populating the dashboard's mood filter choices.
func Moods(entries []models.JournalEntry) []string {
	seen := make(map[string]struct{})
	var moods []string
	for _, entry := range entries {
		mood := strings.ToLower(strings.TrimSpace(entry.Mood))
		if mood == "" {
			continue
		}
		if _, ok := seen[mood]; ok {
			continue
		}
		seen[mood] = struct{}{}
		moods = append(moods, mood)
	}
	sort.Strings(moods)
	return moods
}
