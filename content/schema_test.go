package content

import (
	"testing"
	"time"
)

func TestBlogFrontMatterValidateRequiredFields(t *testing.T) {
	valid := BlogFrontMatter{Title: "Hi", Summary: "Test", Date: "2024-01-01"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected minimal blog front matter to validate, got %v", err)
	}

	missing := []BlogFrontMatter{
		{Summary: "Test", Date: "2024-01-01"},
		{Title: "Hi", Date: "2024-01-01"},
		{Title: "Hi", Summary: "Test"},
	}
	for i, m := range missing {
		if err := m.Validate(); err == nil {
			t.Fatalf("case %d: expected validation failure for %+v", i, m)
		}
	}
}

func TestBlogFrontMatterValidateRejectsBadDate(t *testing.T) {
	m := BlogFrontMatter{Title: "Hi", Summary: "Test", Date: "January 1st"}
	if err := m.Validate(); err == nil {
		t.Fatalf("expected invalid date to fail validation")
	}
}

func TestBlogFrontMatterDefaults(t *testing.T) {
	m := BlogFrontMatter{Title: "Hi", Summary: "Test", Date: "2024-01-01"}
	m.ApplyDefaults()

	if m.Category != DefaultCategory {
		t.Fatalf("expected default category %q, got %q", DefaultCategory, m.Category)
	}
	if m.Tags == nil || len(m.Tags) != 0 {
		t.Fatalf("expected empty tag set, got %#v", m.Tags)
	}
	if m.Featured {
		t.Fatalf("featured should default to false")
	}
	if m.Draft {
		t.Fatalf("draft should default to false")
	}
}

func TestProjectFrontMatterValidate(t *testing.T) {
	valid := ProjectFrontMatter{
		Title:    "Search Engine",
		Summary:  "Full text search",
		Role:     "Lead",
		Timeline: "2023",
		Links:    ProjectLinks{Repo: "https://github.com/example/search"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected project front matter to validate, got %v", err)
	}

	invalid := valid
	invalid.Role = ""
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected missing role to fail validation")
	}

	badLink := valid
	badLink.Links = ProjectLinks{Demo: "not a url"}
	if err := badLink.Validate(); err == nil {
		t.Fatalf("expected malformed link to fail validation")
	}
}

func TestProjectFrontMatterDefaults(t *testing.T) {
	m := ProjectFrontMatter{Title: "T", Summary: "S", Role: "R", Timeline: "2024"}
	m.ApplyDefaults()

	if m.SortOrder() != DefaultProjectOrder {
		t.Fatalf("expected default order %d, got %d", DefaultProjectOrder, m.SortOrder())
	}
	if m.Stack == nil || m.Impact == nil {
		t.Fatalf("stack and impact must never be nil after defaults")
	}

	explicit := 0
	m.Order = &explicit
	if m.SortOrder() != 0 {
		t.Fatalf("explicit zero order must be preserved, got %d", m.SortOrder())
	}
}

func TestParseDateLayouts(t *testing.T) {
	for _, value := range []string{"2024-01-01", "2024-01-01T09:00:00Z", "2024-01-01T09:00:00"} {
		ts, err := ParseDate(value)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", value, err)
		}
		if ts.Year() != 2024 || ts.Month() != time.January {
			t.Fatalf("ParseDate(%q) = %v, wrong date", value, ts)
		}
	}

	if _, err := ParseDate("yesterday"); err == nil {
		t.Fatalf("expected parse failure for non ISO input")
	}
}
