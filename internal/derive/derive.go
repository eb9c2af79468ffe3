// Package derive computes derived fields: the URL slug, SEO metadata and the
// searchable text dictionary. All functions are pure and total.
package derive

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugHyphens  = regexp.MustCompile(`^-+|-+$`)

	wordSplit = regexp.MustCompile(`[\s\n,.،!?"'():;]+`)
)

// SiteName is appended to derived SEO titles.
const SiteName = "Naat Academy"

const (
	seoTitleMax       = 60
	seoDescriptionMax = 160
)

// Slug derives the URL slug from a title: NFC-normalize, lowercase, strip
// everything outside word characters/whitespace/hyphens, collapse runs of
// whitespace/underscores/hyphens into a single hyphen, trim leading and
// trailing hyphens. Idempotent; an empty title yields an empty slug.
func Slug(title string) string {
	s := norm.NFC.String(title)
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return slugHyphens.ReplaceAllString(s, "")
}

// Summary returns the first non-empty candidate truncated to max runes.
func Summary(max int, candidates ...string) string {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		return truncate(c, max)
	}
	return ""
}

// SeoTitle derives the page title: "<title> | Naat Academy" truncated to the
// search-result display limit.
func SeoTitle(title string) string {
	return truncate(title+" | "+SiteName, seoTitleMax)
}

// SeoDescription picks the first non-empty text variant truncated to the
// search-result snippet limit.
func SeoDescription(candidates ...string) string {
	return Summary(seoDescriptionMax, candidates...)
}

// SeoSchema builds the fixed-shape JSON-LD metadata object. Invoking it
// always produces a fresh object; callers overwrite any previous value.
func SeoSchema(kind, name, description string) map[string]any {
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       kind,
		"name":        name,
		"description": description,
	}
}

// Dictionary builds the searchable word list for a record: the unique
// lowercased words across all text variants, sorted and joined with ", ".
func Dictionary(texts ...string) string {
	seen := make(map[string]struct{})
	for _, w := range wordSplit.Split(strings.Join(texts, " "), -1) {
		if w == "" {
			continue
		}
		seen[strings.ToLower(w)] = struct{}{}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return strings.Join(words, ", ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
