package repository_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-portfolio/content"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/repository"
	"github.com/goliatone/go-portfolio/internal/store"
	"github.com/goliatone/go-portfolio/pkg/testsupport"
)

func newDBSource(t *testing.T) *repository.DBSource {
	t.Helper()

	db, err := testsupport.NewBunSQLiteDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx := context.Background()
	if err := testsupport.CreateContentTables(ctx, db,
		(*store.CategoryRecord)(nil),
		(*store.PostRecord)(nil),
	); err != nil {
		t.Fatalf("create tables: %v", err)
	}

	categoryID := uuid.New()
	category := &store.CategoryRecord{ID: categoryID, Name: "Engineering", Slug: "engineering"}
	if _, err := db.NewInsert().Model(category).Exec(ctx); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	publishedAt := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	record := &store.PostRecord{
		ID:          uuid.New(),
		AuthorID:    uuid.New(),
		CategoryID:  &categoryID,
		Title:       "Hosted Post",
		Slug:        "hosted-post",
		Body:        "Intro paragraph for the hosted post.\n\n## Section\n\nBody text.",
		Tags:        []string{"go"},
		Published:   true,
		PublishedAt: &publishedAt,
	}
	if _, err := db.NewInsert().Model(record).Exec(ctx); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	return repository.NewDBSource(
		store.New(db),
		markdown.NewRenderer(markdown.Options{}),
		logging.NoOp(),
	)
}

func TestDBSourceNormalizesRows(t *testing.T) {
	source := newDBSource(t)

	posts, err := source.Posts(context.Background())
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}

	got := posts[0]
	if got.Category != "Engineering" {
		t.Fatalf("category relation not applied: %q", got.Category)
	}
	if got.Summary == "" || !strings.HasPrefix(got.Summary, "Intro paragraph") {
		t.Fatalf("summary not derived from body: %q", got.Summary)
	}
	if got.ReadingTimeMinutes < 1 {
		t.Fatalf("reading time must floor at 1, got %d", got.ReadingTimeMinutes)
	}
	if !strings.Contains(got.HTML, `<h2 id="section">`) {
		t.Fatalf("body not rendered with heading ids: %q", got.HTML)
	}
	if got.Date.IsZero() || !got.Date.Equal(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("date must come from published_at: %v", got.Date)
	}
}

func TestDBSourcePostBySlug(t *testing.T) {
	source := newDBSource(t)

	post, err := source.PostBySlug(context.Background(), "hosted-post")
	if err != nil {
		t.Fatalf("PostBySlug: %v", err)
	}
	if post.Title != "Hosted Post" {
		t.Fatalf("unexpected title: %q", post.Title)
	}

	if _, err := source.PostBySlug(context.Background(), "missing"); !content.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDBSourceHasNoProjects(t *testing.T) {
	source := newDBSource(t)

	projects, err := source.Projects(context.Background())
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("hosted store keeps no projects, got %d", len(projects))
	}
	if _, err := source.ProjectBySlug(context.Background(), "anything"); !content.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDBSourceCategories(t *testing.T) {
	source := newDBSource(t)

	names, err := source.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(names) != 1 || names[0] != "Engineering" {
		t.Fatalf("unexpected categories: %v", names)
	}
}
