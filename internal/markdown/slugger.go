package markdown

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-portfolio/content"
)

// slugger assigns document-unique heading identifiers. Repeated heading text
// gets a running counter suffix, so the second "Overview" becomes
// "overview-1". Instances are scoped to a single document and are not safe
// for concurrent use.
type slugger struct {
	seen map[string]int
}

func newSlugger() *slugger {
	return &slugger{seen: map[string]int{}}
}

func (s *slugger) Slug(text string) string {
	base, err := content.NormalizeSlug(text)
	if err != nil || base == "" {
		base = "section"
	}

	count := s.seen[base]
	s.seen[base] = count + 1
	if count == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, count)
}

// stripInlineFormatting removes inline emphasis, code, and link markup from
// heading text before slugging.
func stripInlineFormatting(input string) string {
	out := inlineCodeSpanRE.ReplaceAllString(input, "$1")
	out = boldSpanRE.ReplaceAllString(out, "$1")
	out = italicSpanRE.ReplaceAllString(out, "$1")
	out = linkSpanRE.ReplaceAllString(out, "$1")
	return strings.TrimSpace(out)
}
