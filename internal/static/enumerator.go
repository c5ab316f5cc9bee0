package static

import (
	"context"

	"github.com/goliatone/go-portfolio/content"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// ContentReader is the subset of repository reads the enumerator consumes.
type ContentReader interface {
	ListPosts(ctx context.Context) ([]*content.Post, error)
	ListTags(ctx context.Context) ([]string, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListProjects(ctx context.Context) ([]*content.ProjectEntry, error)
}

// Enumerator collects every content-addressed identifier a static build must
// pre-render. Each family is padded with the reserved offline placeholder
// when empty, so exports always emit at least one route per family.
type Enumerator struct {
	reader ContentReader
	logger interfaces.Logger
}

// NewEnumerator creates an Enumerator over the given repository.
func NewEnumerator(reader ContentReader, logger interfaces.Logger) *Enumerator {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Enumerator{
		reader: reader,
		logger: logger,
	}
}

// Paths enumerates post slugs, tags, categories and project slugs.
func (e *Enumerator) Paths(ctx context.Context) (content.StaticPaths, error) {
	posts, err := e.reader.ListPosts(ctx)
	if err != nil {
		return content.StaticPaths{}, err
	}
	postSlugs := make([]string, 0, len(posts))
	for _, post := range posts {
		postSlugs = append(postSlugs, post.Slug)
	}

	tags, err := e.reader.ListTags(ctx)
	if err != nil {
		return content.StaticPaths{}, err
	}

	categories, err := e.reader.ListCategories(ctx)
	if err != nil {
		return content.StaticPaths{}, err
	}

	projects, err := e.reader.ListProjects(ctx)
	if err != nil {
		return content.StaticPaths{}, err
	}
	projectSlugs := make([]string, 0, len(projects))
	for _, project := range projects {
		projectSlugs = append(projectSlugs, project.Slug)
	}

	paths := content.StaticPaths{
		PostSlugs:    ensureNonEmpty(postSlugs),
		Tags:         ensureNonEmpty(tags),
		Categories:   ensureNonEmpty(categories),
		ProjectSlugs: ensureNonEmpty(projectSlugs),
	}

	e.logger.Debug("static paths enumerated",
		"posts", len(paths.PostSlugs),
		"tags", len(paths.Tags),
		"categories", len(paths.Categories),
		"projects", len(paths.ProjectSlugs),
	)
	return paths, nil
}

// ensureNonEmpty substitutes the offline placeholder for an empty family.
// Static exporters reject empty route sets, so the placeholder guarantees a
// valid build even before any content exists.
func ensureNonEmpty(values []string) []string {
	if len(values) == 0 {
		return []string{content.FallbackSlug}
	}
	return values
}
