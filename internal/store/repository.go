package store

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewPostRepository(db *bun.DB) repository.Repository[*PostRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PostRecord]{
		NewRecord: func() *PostRecord { return &PostRecord{} },
		GetID: func(p *PostRecord) uuid.UUID {
			return p.ID
		},
		SetID: func(p *PostRecord, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *PostRecord) string {
			return p.Slug
		},
	})
}

func NewCategoryRepository(db *bun.DB) repository.Repository[*CategoryRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*CategoryRecord]{
		NewRecord: func() *CategoryRecord { return &CategoryRecord{} },
		GetID: func(c *CategoryRecord) uuid.UUID {
			return c.ID
		},
		SetID: func(c *CategoryRecord, id uuid.UUID) {
			c.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(c *CategoryRecord) string {
			return c.Slug
		},
	})
}
