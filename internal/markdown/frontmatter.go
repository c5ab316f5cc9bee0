package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-portfolio/content"
)

// ParseBlogFrontMatter extracts blog metadata and the Markdown body from the
// provided source bytes. A missing or malformed metadata block is reported as
// content.ErrFrontMatterMissing so callers can skip the record.
func ParseBlogFrontMatter(source []byte) (content.BlogFrontMatter, []byte, error) {
	var meta content.BlogFrontMatter
	body, err := frontmatter.MustParse(bytes.NewReader(source), &meta)
	if err != nil {
		return content.BlogFrontMatter{}, nil, fmt.Errorf("%w: %v", content.ErrFrontMatterMissing, err)
	}
	return meta, body, nil
}

// ParseProjectFrontMatter extracts project metadata and the Markdown body
// from the provided source bytes.
func ParseProjectFrontMatter(source []byte) (content.ProjectFrontMatter, []byte, error) {
	var meta content.ProjectFrontMatter
	body, err := frontmatter.MustParse(bytes.NewReader(source), &meta)
	if err != nil {
		return content.ProjectFrontMatter{}, nil, fmt.Errorf("%w: %v", content.ErrFrontMatterMissing, err)
	}
	return meta, body, nil
}

// BuildPost assembles a normalized Post from a raw content record. The body
// is rendered and sanitized exactly once here; the returned entity is never
// mutated afterwards. Draft filtering is left to the repository boundary so
// both sources share one policy.
func BuildPost(slug string, source []byte, renderer *Renderer) (*content.Post, error) {
	if !content.IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", content.ErrSlugInvalid, slug)
	}

	meta, body, err := ParseBlogFrontMatter(source)
	if err != nil {
		return nil, err
	}
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrFrontMatterInvalid, err)
	}
	meta.ApplyDefaults()

	date, err := content.ParseDate(meta.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrFrontMatterInvalid, err)
	}

	var updated *time.Time
	if strings.TrimSpace(meta.Updated) != "" {
		ts, err := content.ParseDate(meta.Updated)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", content.ErrFrontMatterInvalid, err)
		}
		updated = &ts
	}

	html, err := renderer.Render(body)
	if err != nil {
		return nil, err
	}

	raw := string(body)
	return &content.Post{
		Slug:               slug,
		Title:              meta.Title,
		Summary:            meta.Summary,
		Date:               date,
		Updated:            updated,
		Tags:               copyStrings(meta.Tags),
		Category:           meta.Category,
		Featured:           meta.Featured,
		Draft:              meta.Draft,
		ReadingTimeMinutes: content.EstimateReadingTime(raw),
		Content:            raw,
		HTML:               html,
		Headings:           ExtractHeadings(raw),
	}, nil
}

// copyStrings detaches list fields from the parsed metadata. The result is
// never nil: empty lists stay empty so JSON consumers see [] rather than null.
func copyStrings(values []string) []string {
	return append(make([]string, 0, len(values)), values...)
}

// BuildProject assembles a normalized ProjectEntry from a raw content record.
func BuildProject(slug string, source []byte, renderer *Renderer) (*content.ProjectEntry, error) {
	if !content.IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", content.ErrSlugInvalid, slug)
	}

	meta, body, err := ParseProjectFrontMatter(source)
	if err != nil {
		return nil, err
	}
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrFrontMatterInvalid, err)
	}
	meta.ApplyDefaults()

	html, err := renderer.Render(body)
	if err != nil {
		return nil, err
	}

	raw := string(body)
	return &content.ProjectEntry{
		Slug:     slug,
		Title:    meta.Title,
		Summary:  meta.Summary,
		Role:     meta.Role,
		Timeline: meta.Timeline,
		Featured: meta.Featured,
		Order:    meta.SortOrder(),
		Stack:    copyStrings(meta.Stack),
		Impact:   copyStrings(meta.Impact),
		Links:    meta.Links,
		Content:  raw,
		HTML:     html,
		Headings: ExtractHeadings(raw),
	}, nil
}
