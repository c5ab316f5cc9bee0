package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PostRecord mirrors the hosted store's blog_posts collection. The raw body
// is stored as Markdown; rendering happens at ingestion, never in the
// database layer.
type PostRecord struct {
	bun.BaseModel `bun:"table:blog_posts,alias:bp"`

	ID            uuid.UUID  `bun:",pk,type:uuid"                    json:"id"`
	AuthorID      uuid.UUID  `bun:"author_id,notnull,type:uuid"      json:"author_id"`
	CategoryID    *uuid.UUID `bun:"category_id,type:uuid"            json:"category_id,omitempty"`
	Title         string     `bun:"title,notnull"                    json:"title"`
	Slug          string     `bun:"slug,notnull,unique"              json:"slug"`
	Excerpt       *string    `bun:"excerpt"                          json:"excerpt,omitempty"`
	Body          string     `bun:"content_mdx,notnull"              json:"content_mdx"`
	CoverImageURL *string    `bun:"cover_image_url"                  json:"cover_image_url,omitempty"`
	Tags          []string   `bun:"tags,type:jsonb"                  json:"tags"`
	Published     bool       `bun:"is_published,notnull,default:false" json:"is_published"`
	ReadingTime   int        `bun:"reading_time_minutes,notnull,default:1" json:"reading_time_minutes"`
	PublishedAt   *time.Time `bun:"published_at,nullzero"            json:"published_at,omitempty"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Category *CategoryRecord `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}

// CategoryRecord mirrors the hosted store's categories collection.
type CategoryRecord struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`

	ID        uuid.UUID `bun:",pk,type:uuid"          json:"id"`
	Name      string    `bun:"name,notnull"           json:"name"`
	Slug      string    `bun:"slug,notnull,unique"    json:"slug"`
	SortOrder int       `bun:"sort_order,notnull,default:0" json:"sort_order"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}
