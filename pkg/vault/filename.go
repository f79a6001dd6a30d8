package vault

import (
	"regexp"
	"strings"

	"github.com/podsni/TMDB-media/pkg/media"
	"github.com/podsni/TMDB-media/pkg/note"
)

var (
	illegalFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	allowedFileChars = regexp.MustCompile(`[^\w\s\-().]`)
	spaceRun         = regexp.MustCompile(`\s+`)
	edgeDots         = regexp.MustCompile(`^\.+|\.+$`)
)

// FileName substitutes the name template for an item and sanitizes the
// result for common file systems. When sanitization leaves fewer than two
// characters, the raw title stripped of illegal characters is used instead.
func FileName(template string, item media.Item) string {
	name := note.Substitute(template, note.NameVariables(item))

	name = illegalFileChars.ReplaceAllString(name, "")
	name = allowedFileChars.ReplaceAllString(name, "")
	name = spaceRun.ReplaceAllString(name, " ")
	name = edgeDots.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)

	if len(name) < 2 {
		fallback := item.Title()
		if fallback == "" {
			fallback = "Unknown"
		}
		name = strings.TrimSpace(illegalFileChars.ReplaceAllString(fallback, ""))
	}

	return name
}
