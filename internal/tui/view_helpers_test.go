package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
	}{
		{name: "short ascii stays", in: "short", max: 10},
		{name: "long ascii truncated", in: "a very long journal title", max: 10},
		{name: "cyrillic truncated on rune boundary", in: "дневник путешествий", max: 10},
		{name: "wide cjk truncated on rune boundary", in: "日記のタイトルがとても長い", max: 10},
		{name: "tiny max", in: "дневник", max: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitText(tt.in, tt.max)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, runewidth.StringWidth(got), tt.max)
		})
	}

	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "anything", fitText("anything", 0))
}
