package content

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// dateLayouts enumerates the accepted front-matter date formats, most
// specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date or date/time string.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("content: invalid date %q", value)
}

func validISODate(value any) error {
	raw, _ := value.(string)
	if strings.TrimSpace(raw) == "" {
		return nil // Required handles the empty case with a clearer message.
	}
	if _, err := ParseDate(raw); err != nil {
		return validation.NewError("content.date_invalid", "must be an ISO-8601 date")
	}
	return nil
}

// BlogFrontMatter is the typed metadata block expected at the head of a blog
// record. Validate enforces the blog schema; ApplyDefaults fills optional
// fields the way the public site expects them.
type BlogFrontMatter struct {
	Title    string   `yaml:"title"`
	Summary  string   `yaml:"summary"`
	Date     string   `yaml:"date"`
	Updated  string   `yaml:"updated"`
	Tags     []string `yaml:"tags"`
	Category string   `yaml:"category"`
	Featured bool     `yaml:"featured"`
	Draft    bool     `yaml:"draft"`
}

// Validate checks the required blog fields and date formats.
func (m BlogFrontMatter) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Summary, validation.Required),
		validation.Field(&m.Date, validation.Required, validation.By(validISODate)),
		validation.Field(&m.Updated, validation.By(validISODate)),
	)
}

// ApplyDefaults fills optional blog fields: category falls back to
// DefaultCategory and tags are never nil.
func (m *BlogFrontMatter) ApplyDefaults() {
	if strings.TrimSpace(m.Category) == "" {
		m.Category = DefaultCategory
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
}

// ProjectFrontMatter is the typed metadata block expected at the head of a
// project record. Order uses a pointer so an absent value can be told apart
// from an explicit zero.
type ProjectFrontMatter struct {
	Title    string       `yaml:"title"`
	Summary  string       `yaml:"summary"`
	Role     string       `yaml:"role"`
	Timeline string       `yaml:"timeline"`
	Featured bool         `yaml:"featured"`
	Order    *int         `yaml:"order"`
	Stack    []string     `yaml:"stack"`
	Impact   []string     `yaml:"impact"`
	Links    ProjectLinks `yaml:"links"`
}

// Validate checks the required project fields and link URLs.
func (m ProjectFrontMatter) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Summary, validation.Required),
		validation.Field(&m.Role, validation.Required),
		validation.Field(&m.Timeline, validation.Required),
		validation.Field(&m.Links),
	)
}

// Validate checks that every provided project link is a well-formed URL.
func (l ProjectLinks) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Demo, is.URL),
		validation.Field(&l.Repo, is.URL),
		validation.Field(&l.CaseStudy, is.URL),
	)
}

// ApplyDefaults fills optional project fields: order falls back to
// DefaultProjectOrder and list fields are never nil.
func (m *ProjectFrontMatter) ApplyDefaults() {
	if m.Order == nil {
		order := DefaultProjectOrder
		m.Order = &order
	}
	if m.Stack == nil {
		m.Stack = []string{}
	}
	if m.Impact == nil {
		m.Impact = []string{}
	}
}

// SortOrder returns the effective manual sort priority.
func (m ProjectFrontMatter) SortOrder() int {
	if m.Order == nil {
		return DefaultProjectOrder
	}
	return *m.Order
}
