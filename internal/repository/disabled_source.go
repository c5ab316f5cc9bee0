package repository

import (
	"context"

	"github.com/goliatone/go-portfolio/content"
)

// DisabledSource stands in for a source that is not configured, e.g. when no
// database DSN is provided. It always comes back empty so the Facade's
// per-call fallback engages without special casing.
type DisabledSource struct{}

// NewDisabledSource creates a Source that never produces content.
func NewDisabledSource() *DisabledSource {
	return &DisabledSource{}
}

func (*DisabledSource) Name() string { return "disabled" }

func (*DisabledSource) Posts(context.Context) ([]*content.Post, error) {
	return nil, nil
}

func (*DisabledSource) PostBySlug(_ context.Context, slug string) (*content.Post, error) {
	return nil, &content.NotFoundError{Resource: "post", Key: slug}
}

func (*DisabledSource) Projects(context.Context) ([]*content.ProjectEntry, error) {
	return nil, nil
}

func (*DisabledSource) ProjectBySlug(_ context.Context, slug string) (*content.ProjectEntry, error) {
	return nil, &content.NotFoundError{Resource: "project", Key: slug}
}

func (*DisabledSource) Categories(context.Context) ([]string, error) {
	return nil, nil
}
