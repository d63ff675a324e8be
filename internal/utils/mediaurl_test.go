package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestResolver() *MediaURLResolver {
	return NewMediaURLResolver("https://api.example.com", "/api/journals/media")
}

func TestMediaURLResolver_Resolve(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{
			name: "bare filename",
			ref:  "photo.png",
			want: "https://api.example.com/api/journals/media/photo.png",
		},
		{
			name: "absolute url unchanged",
			ref:  "https://cdn.x/y.png",
			want: "https://cdn.x/y.png",
		},
		{
			name: "absolute http url unchanged",
			ref:  "http://cdn.x/y.png",
			want: "http://cdn.x/y.png",
		},
		{
			name: "media path gets origin",
			ref:  "/api/journals/media/photo.png",
			want: "https://api.example.com/api/journals/media/photo.png",
		},
		{
			name: "other server path gets origin",
			ref:  "/uploads/misc.pdf",
			want: "https://api.example.com/uploads/misc.pdf",
		},
		{
			name: "empty reference",
			ref:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.ref))
		})
	}
}

func TestMediaURLResolver_Resolve_Idempotent(t *testing.T) {
	r := newTestResolver()

	once := r.Resolve("photo.png")
	twice := r.Resolve(once)

	assert.Equal(t, once, twice)
}

func TestMediaURLResolver_ResolveProfilePicture(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t,
		"https://api.example.com/profile-photos/me.jpg",
		r.ResolveProfilePicture("/profile-photos/me.jpg"))
	assert.Equal(t,
		"https://cdn.x/me.jpg",
		r.ResolveProfilePicture("https://cdn.x/me.jpg"))
	assert.Equal(t, "", r.ResolveProfilePicture(""))
}

func TestFilenameFromURL(t *testing.T) {
	assert.Equal(t, "photo.png", FilenameFromURL("https://api.example.com/api/journals/media/photo.png"))
	assert.Equal(t, "photo.png", FilenameFromURL("/api/journals/media/photo.png"))
	assert.Equal(t, "photo.png", FilenameFromURL("photo.png"))
	assert.Equal(t, "", FilenameFromURL("trailing/"))
}
