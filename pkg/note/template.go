package note

import (
	"regexp"
	"strings"

	"github.com/podsni/TMDB-media/pkg/media"
)

var placeholderToken = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// Substitute replaces every {{name}} token with its variable value in a
// single pass over the template. A token with no matching variable is left
// as literal text; substitution never fails.
func Substitute(tmpl string, vars *Variables) string {
	return placeholderToken.ReplaceAllStringFunc(tmpl, func(token string) string {
		name := token[2 : len(token)-2]
		if value, ok := vars.Get(name); ok {
			return value
		}
		return token
	})
}

// Legacy artifacts from the pre-YAML template format. Templates authored
// against that format self-heal on render.
var (
	inlineImage    = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	boldMarker     = regexp.MustCompile(`\*\*.*?\*\*`)
	markdownHeader = regexp.MustCompile(`(?m)##.*$`)
	legacyFooter   = regexp.MustCompile(`(?m)---\s*\*Data from.*$`)
)

func stripLegacyArtifacts(doc string) string {
	doc = inlineImage.ReplaceAllString(doc, "")
	doc = boldMarker.ReplaceAllString(doc, "")
	doc = markdownHeader.ReplaceAllString(doc, "")
	doc = legacyFooter.ReplaceAllString(doc, "")
	return doc
}

var tagBlock = regexp.MustCompile(`(?s)\n\s*tags:.*?\n\s*categories:`)

var categoryTags = map[Category]string{
	CategoryMovie: "mediaDB/tv/movie",
	CategoryTV:    "mediaDB/tv/series",
	CategoryAnime: "mediaDB/tv/anime",
}

// rewriteTagBlock overwrites whatever sits between the tags: key and the
// next categories: key with the single canonical tag for the category.
func rewriteTagBlock(doc string, category Category) string {
	return tagBlock.ReplaceAllString(doc, "\ntags:\n  - "+categoryTags[category]+"\ncategories:")
}

var (
	keepEmptyScalar = regexp.MustCompile(`(?m)^(subType|lastWatched):[ \t]*$`)
	sentinelNA      = regexp.MustCompile(`(?m)^(\w+):[ \t]*N/A$`)
	sentinelUnknown = regexp.MustCompile(`(?m)^(\w+):[ \t]*unknown$`)
	emptyArrayKeys  = regexp.MustCompile(`(?m)^(streamingServices|actors):[ \t]*\[\s*\]$`)
	// The value must start on the same line and not at a quote: empty and
	// already-quoted values never match.
	quotableKeys = regexp.MustCompile(`(?m)^(title|englishTitle|japaneseTitle|plot|synopsis|duration|rating):[ \t]*([^"\s].*)$`)
	bareListKeys = regexp.MustCompile(`(?m)^(genres|studio|producers|director|writer|actors|tags|categories):[ \t]*$`)
	blankLineRun    = regexp.MustCompile(`\n[ \t]*\n[ \t]*\n`)
)

// cleanYAMLFormatting normalizes the substituted document into valid
// minimally-quoted YAML: sentinel values collapse to empty scalars, title-like
// values get quoted only when they need it, and blank-line runs shrink to one.
func cleanYAMLFormatting(doc string) string {
	doc = keepEmptyScalar.ReplaceAllString(doc, "$1: ")
	doc = sentinelNA.ReplaceAllString(doc, "$1:")
	doc = sentinelUnknown.ReplaceAllString(doc, "$1:")
	doc = emptyArrayKeys.ReplaceAllString(doc, "$1: []")
	doc = quoteSpecialValues(doc)
	doc = bareListKeys.ReplaceAllString(doc, "$1:")
	doc = collapseBlankLines(doc)
	return doc
}

func quoteSpecialValues(doc string) string {
	return quotableKeys.ReplaceAllStringFunc(doc, func(line string) string {
		m := quotableKeys.FindStringSubmatch(line)
		key, value := m[1], strings.TrimSpace(m[2])
		if needsQuoting(value) {
			return key + ": \"" + value + "\""
		}
		return key + ": " + value
	})
}

// needsQuoting follows conventional YAML minimal-quoting: quote only values
// containing a space, colon, hyphen, ampersand, or at-sign, or starting with
// a digit.
func needsQuoting(value string) bool {
	if value == "" {
		return false
	}
	if strings.ContainsAny(value, " :-&@") {
		return true
	}
	return value[0] >= '0' && value[0] <= '9'
}

func collapseBlankLines(doc string) string {
	for {
		collapsed := blankLineRun.ReplaceAllString(doc, "\n\n")
		if collapsed == doc {
			return doc
		}
		doc = collapsed
	}
}

var (
	titleLine        = regexp.MustCompile(`(?m)^(title:[ \t]*)([^"\s].*)$`)
	englishTitleLine = regexp.MustCompile(`(?m)^(englishTitle:[ \t]*)([^"\s].*)$`)
)

// quoteFirst force-quotes the first match of a title-like line, escaping any
// embedded quotes. Lines already quoted are skipped by the pattern.
func quoteFirst(doc string, re *regexp.Regexp) string {
	loc := re.FindStringSubmatchIndex(doc)
	if loc == nil {
		return doc
	}
	prefix := doc[loc[2]:loc[3]]
	value := doc[loc[4]:loc[5]]
	quoted := prefix + `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
	return doc[:loc[0]] + quoted + doc[loc[1]:]
}

// Engine renders templates into persisted documents.
type Engine struct{}

func NewEngine() Engine {
	return Engine{}
}

// Render runs the full pipeline: placeholder substitution, legacy artifact
// stripping, tag-block rewrite per classification, and YAML-safety cleanup.
// It never fails; at worst an unknown placeholder survives in the output.
func (e Engine) Render(tmpl string, vars *Variables, item media.Item) string {
	category := Classify(item)

	doc := Substitute(tmpl, vars)
	doc = stripLegacyArtifacts(doc)
	doc = rewriteTagBlock(doc, category)
	doc = cleanYAMLFormatting(doc)

	// Movie and tv documents always carry quoted titles, even when the
	// minimal-quoting rule would leave them bare.
	if item.Kind != media.KindAnime {
		doc = quoteFirst(doc, titleLine)
		doc = quoteFirst(doc, englishTitleLine)
	}

	return doc
}
