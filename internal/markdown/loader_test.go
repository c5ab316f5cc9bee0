package markdown

import (
	"context"
	"testing"
	"testing/fstest"
)

func TestLoadDirectoryFiltersAndSorts(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/zeta.md":      {Data: []byte("z")},
		"blog/alpha.md":     {Data: []byte("a")},
		"blog/notes.mdx":    {Data: []byte("n")},
		"blog/ignore.txt":   {Data: []byte("x")},
		"blog/sub/hidden.md": {Data: []byte("h")},
	}

	records, err := NewLoader(fsys).LoadDirectory(context.Background(), "blog")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Path != "blog/alpha.md" || records[2].Path != "blog/zeta.md" {
		t.Fatalf("records not sorted by path: %#v", records)
	}
	for _, record := range records {
		if len(record.Data) == 0 {
			t.Fatalf("record %s has no data", record.Path)
		}
	}
}

func TestLoadDirectoryMissing(t *testing.T) {
	_, err := NewLoader(fstest.MapFS{}).LoadDirectory(context.Background(), "blog")
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{"blog/post.md": {Data: []byte("content")}}

	record, err := NewLoader(fsys).LoadFile(context.Background(), "blog/post.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if string(record.Data) != "content" {
		t.Fatalf("unexpected data: %q", record.Data)
	}
}

func TestLoadDirectoryHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fsys := fstest.MapFS{"blog/post.md": {Data: []byte("content")}}
	if _, err := NewLoader(fsys).LoadDirectory(ctx, "blog"); err == nil {
		t.Fatalf("expected context cancellation error")
	}
}
