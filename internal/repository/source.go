package repository

import (
	"context"

	"github.com/goliatone/go-portfolio/content"
)

// Source supplies normalized content entities from one backing system. A
// source reports what it has without applying presentation policy: draft
// filtering, sorting, and cross-source fallback all live in the Facade.
type Source interface {
	// Name identifies the source in log entries.
	Name() string

	// Posts returns every post the source can produce, drafts included.
	Posts(ctx context.Context) ([]*content.Post, error)

	// PostBySlug returns a single post. Missing slugs are reported via
	// content.NotFoundError.
	PostBySlug(ctx context.Context, slug string) (*content.Post, error)

	// Projects returns every project entry the source can produce.
	Projects(ctx context.Context) ([]*content.ProjectEntry, error)

	// ProjectBySlug returns a single project entry.
	ProjectBySlug(ctx context.Context, slug string) (*content.ProjectEntry, error)

	// Categories returns the source's category names, when it maintains a
	// dedicated category collection. Sources without one return nil so the
	// Facade derives categories from posts instead.
	Categories(ctx context.Context) ([]string, error)
}
