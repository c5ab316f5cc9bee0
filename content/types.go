package content

import "time"

const (
	// DefaultCategory is applied when a blog record carries no category.
	DefaultCategory = "General"

	// FallbackSlug identifies the deterministic placeholder route emitted when
	// every content source is empty, so static exports never build zero pages.
	FallbackSlug = "offline"

	// FeaturedProjectLimit caps the number of projects surfaced on the landing page.
	FeaturedProjectLimit = 3

	// DefaultLatestLimit is the number of posts returned by latest-post reads.
	DefaultLatestLimit = 3

	// DefaultProjectOrder is the manual sort priority assigned to projects
	// whose front matter omits an explicit order.
	DefaultProjectOrder = 999
)

// Heading is a table-of-contents entry extracted from raw Markdown. Depth is
// restricted to 2 and 3; IDs are unique within a single document.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Depth int    `json:"depth"`
}

// Post is the normalized blog entity produced by the ingestion pipeline.
// HTML is rendered and sanitized exactly once at construction; it is never
// regenerated lazily from Content.
type Post struct {
	Slug               string     `json:"slug"`
	Title              string     `json:"title"`
	Summary            string     `json:"summary"`
	Date               time.Time  `json:"date"`
	Updated            *time.Time `json:"updated,omitempty"`
	Tags               []string   `json:"tags"`
	Category           string     `json:"category"`
	Featured           bool       `json:"featured"`
	Draft              bool       `json:"draft"`
	ReadingTimeMinutes int        `json:"reading_time_minutes"`
	Content            string     `json:"content"`
	HTML               string     `json:"html"`
	Headings           []Heading  `json:"headings"`
}

// ProjectLinks groups the optional named URLs a project can expose.
type ProjectLinks struct {
	Demo      string `json:"demo,omitempty"      yaml:"demo"`
	Repo      string `json:"repo,omitempty"      yaml:"repo"`
	CaseStudy string `json:"case_study,omitempty" yaml:"caseStudy"`
}

// ProjectEntry is the normalized portfolio project entity. Projects carry no
// draft gate; every record that parses is public.
type ProjectEntry struct {
	Slug     string       `json:"slug"`
	Title    string       `json:"title"`
	Summary  string       `json:"summary"`
	Role     string       `json:"role"`
	Timeline string       `json:"timeline"`
	Featured bool         `json:"featured"`
	Order    int          `json:"order"`
	Stack    []string     `json:"stack"`
	Impact   []string     `json:"impact"`
	Links    ProjectLinks `json:"links"`
	Content  string       `json:"content"`
	HTML     string       `json:"html"`
	Headings []Heading    `json:"headings"`
}

// StaticPaths enumerates every content-addressed identifier a static build
// must pre-render. Each family is guaranteed non-empty by the enumerator.
type StaticPaths struct {
	PostSlugs    []string `json:"post_slugs"`
	Tags         []string `json:"tags"`
	Categories   []string `json:"categories"`
	ProjectSlugs []string `json:"project_slugs"`
}
