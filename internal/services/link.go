package services

import (
	"regexp"
	"strings"

	"github.com/sbilibin2017/gw-stream-queue/internal/models"
)

// PlaceholderThumbnail is used when the lookup returns no thumbnail at all.
const PlaceholderThumbnail = "https://placehold.co/128x80/1f2937/ffffff?text=No+Image"

// DefaultTitle is used when the lookup returns an empty title.
const DefaultTitle = "Untitled Video"

var youtubeLink = regexp.MustCompile(
	`^(?:https?://)?(?:www\.)?(?:m\.)?(?:youtube\.com/(?:watch\?(?:.*&)?v=|embed/|v/)|youtu\.be/)([a-zA-Z0-9_-]{11})(?:[?&]\S+)?$`,
)

// ExtractVideoID returns the 11 character video id of a YouTube watch, embed or short link.
func ExtractVideoID(link string) (string, bool) {
	m := youtubeLink.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// pickThumbnail walks the quality ladder from highest to lowest resolution.
func pickThumbnail(t models.Thumbnails) string {
	for _, url := range []string{t.Maxres, t.High, t.Medium, t.Default} {
		if url != "" {
			return url
		}
	}
	return PlaceholderThumbnail
}

// sanitize strips NUL bytes, which Postgres rejects in text columns.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
