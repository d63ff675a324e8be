// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolpakovda/go-journal-client/models"
)

func sampleEntries() []models.JournalEntry {
	return []models.JournalEntry{
		{ID: 1, Title: "Morning run", Content: "5k around the park", Mood: "happy", Tags: "sport,outdoors", Date: "2026-08-01"},
		{ID: 2, Title: "Rainy day", Content: "stayed inside reading", Mood: "calm", Tags: "books", Date: "2026-08-03"},
		{ID: 3, Title: "Deadline", Content: "shipped the release", Mood: "stressed", Tags: "work", Date: "2026-08-02"},
		{ID: 4, Title: "brunch", Content: "pancakes with friends", Mood: "Happy", Tags: "", Date: "2026-08-04"},
	}
}

func entryIDs(entries []models.JournalEntry) []int64 {
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestListQuery_ZeroValue_KeepsEverything(t *testing.T) {
	got := ListQuery{}.Apply(sampleEntries())
	require.Len(t, got, 4)
	// default order is date descending, newest first
	assert.Equal(t, []int64{4, 2, 3, 1}, entryIDs(got))
}

func TestListQuery_Search_MatchesAnyField(t *testing.T) {
	entries := sampleEntries()

	tests := []struct {
		name   string
		search string
		want   []int64
	}{
		{"title match", "rainy", []int64{2}},
		{"content-only match", "pancakes", []int64{4}},
		{"tags match", "books", []int64{2}},
		{"mood match", "stressed", []int64{3}},
		{"case-insensitive", "MORNING", []int64{1}},
		{"no match", "vacation", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ListQuery{Search: tt.search, SortBy: SortByDate, Order: SortAsc}.Apply(entries)
			assert.Equal(t, tt.want, orNil(entryIDs(got)))
		})
	}
}

func orNil(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func TestListQuery_MoodFilter_ExactCaseInsensitive(t *testing.T) {
	entries := sampleEntries()

	got := ListQuery{Mood: "Happy", SortBy: SortByDate, Order: SortAsc}.Apply(entries)
	assert.Equal(t, []int64{1, 4}, entryIDs(got))

	// "all" sentinel disables the filter
	got = ListQuery{Mood: "all"}.Apply(entries)
	assert.Len(t, got, 4)
}

func TestListQuery_SortDirections_AreExactReverses(t *testing.T) {
	entries := sampleEntries()

	asc := ListQuery{SortBy: SortByDate, Order: SortAsc}.Apply(entries)
	desc := ListQuery{SortBy: SortByDate, Order: SortDesc}.Apply(entries)

	require.Len(t, asc, len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestListQuery_SortByTitle_CaseInsensitive(t *testing.T) {
	got := ListQuery{SortBy: SortByTitle, Order: SortAsc}.Apply(sampleEntries())
	// "brunch" sorts first only if case is ignored
	assert.Equal(t, []int64{4, 3, 1, 2}, entryIDs(got))
}

func TestListQuery_MissingFields_DoNotPanic(t *testing.T) {
	entries := []models.JournalEntry{
		{ID: 1},
		{ID: 2, Title: "only title"},
	}

	assert.NotPanics(t, func() {
		got := ListQuery{Search: "title", SortBy: SortByMood, Order: SortDesc}.Apply(entries)
		assert.Equal(t, []int64{2}, entryIDs(got))
	})
}

func TestListQuery_Apply_DoesNotMutateInput(t *testing.T) {
	entries := sampleEntries()
	original := entryIDs(entries)

	_ = ListQuery{SortBy: SortByTitle, Order: SortAsc}.Apply(entries)

	assert.Equal(t, original, entryIDs(entries))
}

func TestListQuery_StableOnTies(t *testing.T) {
	entries := []models.JournalEntry{
		{ID: 1, Mood: "calm", Date: "2026-08-01"},
		{ID: 2, Mood: "calm", Date: "2026-08-02"},
		{ID: 3, Mood: "calm", Date: "2026-08-03"},
	}

	got := ListQuery{SortBy: SortByMood, Order: SortAsc}.Apply(entries)
	assert.Equal(t, []int64{1, 2, 3}, entryIDs(got))
}

func TestMoods_DistinctLowercasedSorted(t *testing.T) {
	moods := Moods(sampleEntries())
	assert.Equal(t, []string{"calm", "happy", "stressed"}, moods)
}
