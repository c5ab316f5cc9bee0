package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/content"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// Facade is the single read surface for portfolio content. It consults the
// primary source first and falls back to the secondary one when the primary
// errors or comes back empty; the decision is made per call, never cached.
// Infrastructure failures stay behind this boundary: listing calls degrade to
// empty results and lookups collapse to not-found.
type Facade struct {
	primary  Source
	fallback Source
	renderer *markdown.Renderer
	logger   interfaces.Logger
}

// Option configures a Facade.
type Option func(*Facade)

// WithLogger sets the facade logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(f *Facade) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithRenderer sets the renderer used for the offline placeholder post.
func WithRenderer(renderer *markdown.Renderer) Option {
	return func(f *Facade) {
		if renderer != nil {
			f.renderer = renderer
		}
	}
}

// New creates a Facade over a primary and a fallback source.
func New(primary, fallback Source, opts ...Option) *Facade {
	f := &Facade{
		primary:  primary,
		fallback: fallback,
		renderer: markdown.NewRenderer(markdown.Options{}),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ListPosts returns every published post, newest first.
func (f *Facade) ListPosts(ctx context.Context) ([]*content.Post, error) {
	posts := f.resolvePosts(ctx)
	posts = filterDrafts(posts)
	sortPostsByDate(posts)
	return posts, nil
}

// GetPostBySlug returns the published post with the given slug, consulting
// the fallback source before reporting not-found. The reserved offline slug
// resolves to a deterministic placeholder so static exports of an empty site
// still produce one valid page.
func (f *Facade) GetPostBySlug(ctx context.Context, slug string) (*content.Post, error) {
	if slug == "" {
		return nil, content.ErrSlugRequired
	}

	if post, err := f.primary.PostBySlug(ctx, slug); err == nil {
		if post.Draft {
			return nil, &content.NotFoundError{Resource: "post", Key: slug}
		}
		return post, nil
	} else if !content.IsNotFound(err) {
		f.logger.Warn("primary source lookup failed", "source", f.primary.Name(), "slug", slug, "error", err)
	}

	if post, err := f.fallback.PostBySlug(ctx, slug); err == nil {
		if post.Draft {
			return nil, &content.NotFoundError{Resource: "post", Key: slug}
		}
		return post, nil
	} else if !content.IsNotFound(err) {
		f.logger.Warn("fallback source lookup failed", "source", f.fallback.Name(), "slug", slug, "error", err)
	}

	if slug == content.FallbackSlug {
		return f.offlinePost(), nil
	}
	return nil, &content.NotFoundError{Resource: "post", Key: slug}
}

// LatestPosts returns the newest published posts, capped at limit. A
// non-positive limit applies the default.
func (f *Facade) LatestPosts(ctx context.Context, limit int) ([]*content.Post, error) {
	if limit <= 0 {
		limit = content.DefaultLatestLimit
	}

	posts, err := f.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// ListTags returns the distinct tags across published posts, sorted
// alphabetically. Matching is case-insensitive; the first spelling seen is
// the one preserved.
func (f *Facade) ListTags(ctx context.Context) ([]string, error) {
	posts, err := f.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, post := range posts {
		tags = append(tags, post.Tags...)
	}
	return dedupeFold(tags), nil
}

// ListCategories returns the distinct category names, preferring the hosted
// category collection and deriving from posts when no source maintains one.
func (f *Facade) ListCategories(ctx context.Context) ([]string, error) {
	for _, source := range []Source{f.primary, f.fallback} {
		names, err := source.Categories(ctx)
		if err != nil {
			f.logger.Warn("category listing failed", "source", source.Name(), "error", err)
			continue
		}
		if len(names) > 0 {
			return dedupeFold(names), nil
		}
	}

	posts, err := f.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, post := range posts {
		names = append(names, post.Category)
	}
	return dedupeFold(names), nil
}

// ListPostsByTag returns the published posts carrying the given tag.
func (f *Facade) ListPostsByTag(ctx context.Context, tag string) ([]*content.Post, error) {
	posts, err := f.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	matched := posts[:0:0]
	for _, post := range posts {
		for _, candidate := range post.Tags {
			if strings.EqualFold(candidate, tag) {
				matched = append(matched, post)
				break
			}
		}
	}
	return matched, nil
}

// ListPostsByCategory returns the published posts in the given category.
func (f *Facade) ListPostsByCategory(ctx context.Context, category string) ([]*content.Post, error) {
	posts, err := f.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	matched := posts[:0:0]
	for _, post := range posts {
		if strings.EqualFold(post.Category, category) {
			matched = append(matched, post)
		}
	}
	return matched, nil
}

// ListProjects returns every project, sorted by manual order then title.
func (f *Facade) ListProjects(ctx context.Context) ([]*content.ProjectEntry, error) {
	projects := f.resolveProjects(ctx)
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Order != projects[j].Order {
			return projects[i].Order < projects[j].Order
		}
		return projects[i].Title < projects[j].Title
	})
	return projects, nil
}

// GetProjectBySlug returns the project with the given slug.
func (f *Facade) GetProjectBySlug(ctx context.Context, slug string) (*content.ProjectEntry, error) {
	if slug == "" {
		return nil, content.ErrSlugRequired
	}

	if project, err := f.primary.ProjectBySlug(ctx, slug); err == nil {
		return project, nil
	} else if !content.IsNotFound(err) {
		f.logger.Warn("primary source lookup failed", "source", f.primary.Name(), "slug", slug, "error", err)
	}

	if project, err := f.fallback.ProjectBySlug(ctx, slug); err == nil {
		return project, nil
	} else if !content.IsNotFound(err) {
		f.logger.Warn("fallback source lookup failed", "source", f.fallback.Name(), "slug", slug, "error", err)
	}

	return nil, &content.NotFoundError{Resource: "project", Key: slug}
}

// FeaturedProjects returns the featured projects in display order, capped at
// the landing-page limit.
func (f *Facade) FeaturedProjects(ctx context.Context) ([]*content.ProjectEntry, error) {
	projects, err := f.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	featured := projects[:0:0]
	for _, project := range projects {
		if project.Featured {
			featured = append(featured, project)
		}
		if len(featured) == content.FeaturedProjectLimit {
			break
		}
	}
	return featured, nil
}

func (f *Facade) resolvePosts(ctx context.Context) []*content.Post {
	posts, err := f.primary.Posts(ctx)
	if err != nil {
		f.logger.Warn("primary source unavailable", "source", f.primary.Name(), "error", err)
	} else if len(posts) > 0 {
		return posts
	} else {
		f.logger.Debug("primary source empty, using fallback", "source", f.primary.Name())
	}

	posts, err = f.fallback.Posts(ctx)
	if err != nil {
		f.logger.Warn("fallback source unavailable", "source", f.fallback.Name(), "error", err)
		return nil
	}
	return posts
}

func (f *Facade) resolveProjects(ctx context.Context) []*content.ProjectEntry {
	projects, err := f.primary.Projects(ctx)
	if err != nil {
		f.logger.Warn("primary source unavailable", "source", f.primary.Name(), "error", err)
	} else if len(projects) > 0 {
		return projects
	}

	projects, err = f.fallback.Projects(ctx)
	if err != nil {
		f.logger.Warn("fallback source unavailable", "source", f.fallback.Name(), "error", err)
		return nil
	}
	return projects
}

// offlinePost is the deterministic placeholder served for the reserved slug
// so an empty site still exports one stable route.
func (f *Facade) offlinePost() *content.Post {
	body := strings.Join([]string{
		"## Offline-safe static page",
		"",
		"This page is generated as a reliable fallback for static export.",
		"Once the hosted store contains published posts, real post routes will be generated automatically.",
	}, "\n")

	html, err := f.renderer.Render([]byte(body))
	if err != nil {
		html = ""
	}

	return &content.Post{
		Slug:               content.FallbackSlug,
		Title:              "Blog is preparing content",
		Summary:            "The blog is currently in offline-safe mode. Publish at least one post to replace this fallback page.",
		Date:               time.Now().UTC(),
		Tags:               []string{"status", "fallback"},
		Category:           content.DefaultCategory,
		ReadingTimeMinutes: 1,
		Content:            body,
		HTML:               html,
		Headings:           markdown.ExtractHeadings(body),
	}
}

func filterDrafts(posts []*content.Post) []*content.Post {
	published := posts[:0:0]
	for _, post := range posts {
		if !post.Draft {
			published = append(published, post)
		}
	}
	return published
}

func sortPostsByDate(posts []*content.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}

// dedupeFold removes case-insensitive duplicates, keeps the first spelling
// seen, and sorts the result alphabetically.
func dedupeFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		key := strings.ToLower(value)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, value)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
