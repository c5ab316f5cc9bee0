package content

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("content: not found")
	ErrSlugRequired       = errors.New("content: slug is required")
	ErrSlugInvalid        = errors.New("content: slug contains invalid characters")
	ErrFrontMatterMissing = errors.New("content: front matter block is missing or malformed")
	ErrFrontMatterInvalid = errors.New("content: front matter failed schema validation")
)

// NotFoundError reports a missing record lookup. It deliberately carries no
// transport detail: "not found" and "source unavailable" collapse to the same
// observable outcome at the repository boundary.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	if e.Key != "" {
		return fmt.Sprintf("%s: %s %q", ErrNotFound.Error(), e.Resource, e.Key)
	}
	return fmt.Sprintf("%s: %s", ErrNotFound.Error(), e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IsNotFound reports whether err represents a routine missing-record outcome.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
