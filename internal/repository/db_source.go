package repository

import (
	"context"
	"fmt"

	"github.com/goliatone/go-portfolio/content"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/store"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// DBSource adapts the hosted store into the Source contract. Rows are
// normalized at read time: the Markdown body is rendered and sanitized here,
// once, so callers only ever see finished entities.
type DBSource struct {
	store    *store.Store
	renderer *markdown.Renderer
	logger   interfaces.Logger
}

// NewDBSource creates a Source backed by the hosted store.
func NewDBSource(st *store.Store, renderer *markdown.Renderer, logger interfaces.Logger) *DBSource {
	return &DBSource{
		store:    st,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *DBSource) Name() string { return "database" }

func (s *DBSource) Posts(ctx context.Context) ([]*content.Post, error) {
	records, err := s.store.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]*content.Post, 0, len(records))
	for _, record := range records {
		post, err := s.normalize(record)
		if err != nil {
			s.logger.Warn("skipping unrenderable post", "slug", record.Slug, "error", err)
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *DBSource) PostBySlug(ctx context.Context, slug string) (*content.Post, error) {
	record, err := s.store.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.normalize(record)
}

// Projects are authored as local Markdown only; the hosted store has no
// project collection, so the Facade always falls through to the filesystem.
func (s *DBSource) Projects(ctx context.Context) ([]*content.ProjectEntry, error) {
	return nil, nil
}

func (s *DBSource) ProjectBySlug(ctx context.Context, slug string) (*content.ProjectEntry, error) {
	return nil, &content.NotFoundError{Resource: "project", Key: slug}
}

func (s *DBSource) Categories(ctx context.Context) ([]string, error) {
	records, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.Name)
	}
	return names, nil
}

func (s *DBSource) normalize(record *store.PostRecord) (*content.Post, error) {
	html, err := s.renderer.Render([]byte(record.Body))
	if err != nil {
		return nil, fmt.Errorf("render post %q: %w", record.Slug, err)
	}

	summary := ""
	if record.Excerpt != nil {
		summary = *record.Excerpt
	}
	if summary == "" {
		summary = content.GenerateExcerpt(record.Body)
	}

	category := content.DefaultCategory
	if record.Category != nil && record.Category.Name != "" {
		category = record.Category.Name
	}

	readingTime := record.ReadingTime
	if readingTime < 1 {
		readingTime = content.EstimateReadingTime(record.Body)
	}

	date := record.CreatedAt
	if record.PublishedAt != nil {
		date = *record.PublishedAt
	}

	post := &content.Post{
		Slug:               record.Slug,
		Title:              record.Title,
		Summary:            summary,
		Date:               date,
		Tags:               append([]string(nil), record.Tags...),
		Category:           category,
		Draft:              !record.Published,
		ReadingTimeMinutes: readingTime,
		Content:            record.Body,
		HTML:               html,
		Headings:           markdown.ExtractHeadings(record.Body),
	}
	if record.UpdatedAt.After(record.CreatedAt) {
		updated := record.UpdatedAt
		post.Updated = &updated
	}
	return post, nil
}
