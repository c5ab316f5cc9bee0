package content

import (
	"math"
	"regexp"
	"strings"
)

const (
	// ReadingSpeedWPM is the fixed reading-speed constant used to estimate
	// reading time from body word counts.
	ReadingSpeedWPM = 220

	// ExcerptBudget is the character budget applied to generated excerpts.
	ExcerptBudget = 120

	excerptEllipsis = "..."
)

var (
	fencedCodeRE = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRE = regexp.MustCompile("`[^`\n]+`")
)

// EstimateReadingTime returns the estimated reading time in whole minutes for
// the supplied Markdown body. Fenced code blocks and inline code spans do not
// count toward the word total. The result is never below 1, even for an
// empty body.
func EstimateReadingTime(markdown string) int {
	cleaned := fencedCodeRE.ReplaceAllString(markdown, " ")
	cleaned = inlineCodeRE.ReplaceAllString(cleaned, " ")

	words := len(strings.Fields(cleaned))
	minutes := int(math.Round(float64(words) / ReadingSpeedWPM))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// GenerateExcerpt returns the first line of the body that is not empty, not a
// heading, and not an image, truncated to the excerpt budget with a trailing
// ellipsis marker when the line exceeds it. Calling it twice on the same
// input yields byte-identical output.
func GenerateExcerpt(body string) string {
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "![") {
			continue
		}

		runes := []rune(line)
		if len(runes) <= ExcerptBudget {
			return line
		}
		return string(runes[:ExcerptBudget-len(excerptEllipsis)]) + excerptEllipsis
	}
	return ""
}
