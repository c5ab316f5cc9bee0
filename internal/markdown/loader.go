package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/goliatone/go-portfolio/content"
)

// FileRecord carries a raw content file read from the local store. It exists
// only during ingestion; the pipeline turns it into a normalized entity and
// discards it.
type FileRecord struct {
	Path string
	Data []byte
}

// Loader discovers content files within a filesystem. One file is one
// content record; the filename minus its extension is the record's slug.
type Loader struct {
	fs fs.FS
}

// NewLoader constructs a Loader over the provided filesystem.
func NewLoader(filesystem fs.FS) *Loader {
	return &Loader{fs: filesystem}
}

// LoadFile reads a single content file.
func (l *Loader) LoadFile(ctx context.Context, filePath string) (*FileRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel := path.Clean(filePath)
	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", rel, err)
	}

	return &FileRecord{Path: rel, Data: data}, nil
}

// LoadDirectory reads every content file directly under dir, sorted by path
// so ingestion order is deterministic. Sub-directories are not traversed:
// each content family lives flat in its own directory.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*FileRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := path.Clean(dir)
	entries, err := fs.ReadDir(l.fs, root)
	if err != nil {
		return nil, fmt.Errorf("markdown loader list %s: %w", root, err)
	}

	var records []*FileRecord
	for _, entry := range entries {
		if entry.IsDir() || !content.IsContentFile(entry.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := l.LoadFile(ctx, path.Join(root, entry.Name()))
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})

	return records, nil
}
