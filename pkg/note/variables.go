// Package note turns catalog records into placeholder variables and renders
// user templates into YAML front-matter documents.
package note

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/podsni/TMDB-media/pkg/media"
)

// listPlaceholder marks a list whose data was never fetched, as opposed to a
// genuinely empty list.
const listPlaceholder = "  - TBD"

// Variables is an ordered placeholder name to rendered text mapping.
// A template placeholder with no entry here is left untouched by rendering.
type Variables struct {
	keys   []string
	values map[string]string
}

func NewVariables() *Variables {
	return &Variables{
		values: make(map[string]string),
	}
}

// Set adds or replaces a variable, preserving first-set ordering.
func (v *Variables) Set(key, value string) {
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = value
}

// Get looks up a variable by placeholder name.
func (v *Variables) Get(key string) (string, bool) {
	value, ok := v.values[key]
	return value, ok
}

// Keys returns the placeholder names in insertion order.
func (v *Variables) Keys() []string {
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)
	return keys
}

func (v *Variables) Len() int {
	return len(v.keys)
}

// Adapter normalizes raw catalog records into Variables.
type Adapter struct {
	// Provider names the anime catalog for the {{provider}} placeholder.
	Provider string
	// Now supplies the clock for {{current_date}}; nil uses time.Now.
	Now func() time.Time
}

func NewAdapter() Adapter {
	return Adapter{Provider: "Jikan"}
}

func (a Adapter) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a Adapter) currentDate() string {
	return media.ISODate(a.now().UTC())
}

// Normalize converts a record and its optional detail into the rendering
// variable map. It never fails; missing data degrades to defaults.
func (a Adapter) Normalize(item media.Item, detail *media.Detail) *Variables {
	switch item.Kind {
	case media.KindMovie:
		if detail != nil {
			return a.movieVariables(item.Movie, detail.Movie)
		}
		return a.movieVariables(item.Movie, nil)
	case media.KindTV:
		if detail != nil {
			return a.tvVariables(item.TV, detail.TV)
		}
		return a.tvVariables(item.TV, nil)
	case media.KindAnime:
		if detail != nil {
			return a.animeVariables(item.Anime, detail.Anime)
		}
		return a.animeVariables(item.Anime, nil)
	}
	return NewVariables()
}

func isoOr(date, fallback string) string {
	t, err := media.ParseDate(date)
	if err != nil {
		return fallback
	}
	return media.ISODate(t)
}

func formatTenths(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// yamlList renders names as a two-space indented YAML sequence block,
// defaulting to the TBD placeholder item when the list is empty.
func yamlList(names []string) string {
	if len(names) == 0 {
		return listPlaceholder
	}
	lines := make([]string, len(names))
	for i, n := range names {
		lines[i] = "  - " + n
	}
	return strings.Join(lines, "\n")
}

var (
	nonPrintableASCII = regexp.MustCompile(`[^\x20-\x7E]`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
	newlineChars      = strings.NewReplacer("\r", " ", "\n", " ")
)

// cleanValue strips characters that break the YAML front-matter: newlines,
// non-printable-ASCII, and whitespace runs. Lossy for non-Latin scripts;
// kept for compatibility with existing documents.
func cleanValue(value string) string {
	if value == "" {
		return ""
	}
	value = newlineChars.Replace(value)
	value = nonPrintableASCII.ReplaceAllString(value, "")
	value = whitespaceRun.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}
