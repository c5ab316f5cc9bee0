package store

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-portfolio/content"
)

// Store exposes the hosted content collections through publish-aware read
// queries. Draft (unpublished) rows never leave this layer.
type Store struct {
	posts      repository.Repository[*PostRecord]
	categories repository.Repository[*CategoryRecord]
}

// New constructs a Store without caching.
func New(db *bun.DB) *Store {
	return NewWithCache(db, nil, nil)
}

// NewWithCache constructs a Store whose repositories are wrapped in a
// read-through cache when both a cache service and key serializer are
// provided.
func NewWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *Store {
	return &Store{
		posts:      wrapWithCache(NewPostRepository(db), cacheService, keySerializer),
		categories: wrapWithCache(NewCategoryRepository(db), cacheService, keySerializer),
	}
}

// ListPublished returns every published post ordered by publish timestamp
// descending, with the category relation preloaded.
func (s *Store) ListPublished(ctx context.Context) ([]*PostRecord, error) {
	records, _, err := s.posts.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Relation("Category").
				Where("?TableAlias.is_published = ?", true).
				OrderExpr("?TableAlias.published_at DESC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("store list posts: %w", err)
	}
	return records, nil
}

// GetPublishedBySlug returns the published post with the given slug. Draft
// rows are reported as not found, the same outcome as a genuinely missing
// slug.
func (s *Store) GetPublishedBySlug(ctx context.Context, slug string) (*PostRecord, error) {
	records, _, err := s.posts.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Relation("Category").
				Where("?TableAlias.slug = ?", slug).
				Where("?TableAlias.is_published = ?", true)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "post", slug)
	}
	if len(records) == 0 {
		return nil, &content.NotFoundError{Resource: "post", Key: slug}
	}
	return records[0], nil
}

// ListCategories returns every category ordered by manual sort priority.
func (s *Store) ListCategories(ctx context.Context) ([]*CategoryRecord, error) {
	records, _, err := s.categories.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.sort_order ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("store list categories: %w", err)
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &content.NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
