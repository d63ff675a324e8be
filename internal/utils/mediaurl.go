// Package utils provides general-purpose helper utilities used across
// different parts of the client, such as media URL resolution and filename
// extraction for attachment references returned by the backend.
package utils

import "strings"

// MediaURLResolver maps stored attachment references onto absolute,
// fetchable URLs for a configured backend origin.
//
// The backend is inconsistent about what it stores in mediaUrls: sometimes
// an absolute URL, sometimes a server-relative path, sometimes a bare
// filename. Every call site that renders or downloads media must go through
// the resolver instead of concatenating strings itself.
type MediaURLResolver struct {
	origin          string
	mediaPathPrefix string
}

// NewMediaURLResolver builds a resolver for the given backend origin
// (scheme://host, no trailing slash) and media path prefix
// (leading slash, no trailing slash).
func NewMediaURLResolver(origin, mediaPathPrefix string) *MediaURLResolver {
	return &MediaURLResolver{
		origin:          strings.TrimRight(origin, "/"),
		mediaPathPrefix: strings.TrimRight(mediaPathPrefix, "/"),
	}
}

// Resolve turns an attachment reference into an absolute URL:
//
//   - an already absolute reference is returned unchanged, which makes the
//     resolver idempotent;
//   - a reference under the media path prefix gets the origin prepended;
//   - a bare filename becomes <origin><prefix>/<filename>;
//   - any other server-relative path gets the origin prepended.
//
// An empty reference resolves to the empty string.
func (r *MediaURLResolver) Resolve(ref string) string {
	if ref == "" {
		return ""
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	if strings.HasPrefix(ref, r.mediaPathPrefix+"/") {
		return r.origin + ref
	}

	if !strings.HasPrefix(ref, "/") {
		return r.origin + r.mediaPathPrefix + "/" + ref
	}

	return r.origin + ref
}

// ResolveProfilePicture maps a profile picture reference onto an absolute
// URL. Profile pictures are served from their own path, so bare filenames
// are not rewritten under the media prefix.
func (r *MediaURLResolver) ResolveProfilePicture(ref string) string {
	if ref == "" {
		return ""
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	if !strings.HasPrefix(ref, "/") {
		return r.origin + "/" + ref
	}

	return r.origin + ref
}

// FilenameFromURL extracts the stored filename from an attachment reference:
// the last path segment. The delete-media endpoint addresses attachments by
// filename, not by full URL.
func FilenameFromURL(url string) string {
	if idx := strings.LastIndex(url, "/"); idx != -1 {
		return url[idx+1:]
	}
	return url
}
