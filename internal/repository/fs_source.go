package repository

import (
	"context"

	"github.com/goliatone/go-portfolio/content"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// FSSource reads Markdown content from local directories. Records that fail
// front-matter parsing or validation are skipped with a warning so one broken
// file never takes down a listing.
type FSSource struct {
	loader     *markdown.Loader
	renderer   *markdown.Renderer
	blogDir    string
	projectDir string
	logger     interfaces.Logger
}

// NewFSSource creates a Source over the given filesystem directories.
func NewFSSource(loader *markdown.Loader, renderer *markdown.Renderer, blogDir, projectDir string, logger interfaces.Logger) *FSSource {
	return &FSSource{
		loader:     loader,
		renderer:   renderer,
		blogDir:    blogDir,
		projectDir: projectDir,
		logger:     logger,
	}
}

func (s *FSSource) Name() string { return "filesystem" }

func (s *FSSource) Posts(ctx context.Context) ([]*content.Post, error) {
	records, err := s.loader.LoadDirectory(ctx, s.blogDir)
	if err != nil {
		return nil, err
	}

	posts := make([]*content.Post, 0, len(records))
	for _, record := range records {
		slug, err := content.DeriveSlug(record.Path)
		if err != nil {
			s.logger.Warn("skipping file with underivable slug", "path", record.Path, "error", err)
			continue
		}
		post, err := markdown.BuildPost(slug, record.Data, s.renderer)
		if err != nil {
			s.logger.Warn("skipping malformed post file", "path", record.Path, "error", err)
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *FSSource) PostBySlug(ctx context.Context, slug string) (*content.Post, error) {
	records, err := s.loader.LoadDirectory(ctx, s.blogDir)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		derived, err := content.DeriveSlug(record.Path)
		if err != nil || derived != slug {
			continue
		}
		return markdown.BuildPost(slug, record.Data, s.renderer)
	}
	return nil, &content.NotFoundError{Resource: "post", Key: slug}
}

func (s *FSSource) Projects(ctx context.Context) ([]*content.ProjectEntry, error) {
	records, err := s.loader.LoadDirectory(ctx, s.projectDir)
	if err != nil {
		return nil, err
	}

	projects := make([]*content.ProjectEntry, 0, len(records))
	for _, record := range records {
		slug, err := content.DeriveSlug(record.Path)
		if err != nil {
			s.logger.Warn("skipping file with underivable slug", "path", record.Path, "error", err)
			continue
		}
		project, err := markdown.BuildProject(slug, record.Data, s.renderer)
		if err != nil {
			s.logger.Warn("skipping malformed project file", "path", record.Path, "error", err)
			continue
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (s *FSSource) ProjectBySlug(ctx context.Context, slug string) (*content.ProjectEntry, error) {
	records, err := s.loader.LoadDirectory(ctx, s.projectDir)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		derived, err := content.DeriveSlug(record.Path)
		if err != nil || derived != slug {
			continue
		}
		return markdown.BuildProject(slug, record.Data, s.renderer)
	}
	return nil, &content.NotFoundError{Resource: "project", Key: slug}
}

// Categories returns nil; the filesystem keeps no category collection, so
// the Facade derives category names from the posts themselves.
func (s *FSSource) Categories(ctx context.Context) ([]string, error) {
	return nil, nil
}
