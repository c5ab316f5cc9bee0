package markdown

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-portfolio/content"
)

var (
	inlineCodeSpanRE = regexp.MustCompile("`(.+?)`")
	boldSpanRE       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicSpanRE     = regexp.MustCompile(`\*(.+?)\*`)
	linkSpanRE       = regexp.MustCompile(`\[(.+?)\]\(.+?\)`)
)

// ExtractHeadings scans raw Markdown for depth-2 and depth-3 headings and
// returns them in document order. It operates on the raw text, not the
// rendered tree, so it stays cheap enough for build-time table-of-contents
// generation. Identifiers are deduplicated per document and stable across
// repeated calls on the same input.
func ExtractHeadings(markdown string) []content.Heading {
	slugs := newSlugger()
	headings := []content.Heading{}

	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)

		var depth int
		switch {
		case strings.HasPrefix(line, "### "):
			depth = 3
		case strings.HasPrefix(line, "## "):
			depth = 2
		default:
			continue
		}

		text := stripInlineFormatting(strings.TrimSpace(line[depth+1:]))
		headings = append(headings, content.Heading{
			ID:    slugs.Slug(text),
			Text:  text,
			Depth: depth,
		})
	}

	return headings
}
