package content

import "testing"

func TestDeriveSlugStripsExtensions(t *testing.T) {
	cases := map[string]string{
		"hello-world.md":       "hello-world",
		"hello-world.mdx":      "hello-world",
		"notes.markdown":       "notes",
		"nested/dir/post-1.md": "post-1",
	}

	for input, want := range cases {
		got, err := DeriveSlug(input)
		if err != nil {
			t.Fatalf("DeriveSlug(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("DeriveSlug(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDeriveSlugNormalizesUnsafeNames(t *testing.T) {
	got, err := DeriveSlug("My First Post.md")
	if err != nil {
		t.Fatalf("DeriveSlug: %v", err)
	}
	if !IsValidSlug(got) {
		t.Fatalf("derived slug %q is not URL safe", got)
	}
}

func TestDeriveSlugDeterministic(t *testing.T) {
	first, err := DeriveSlug("stable-post.md")
	if err != nil {
		t.Fatalf("DeriveSlug: %v", err)
	}
	second, err := DeriveSlug("stable-post.md")
	if err != nil {
		t.Fatalf("DeriveSlug: %v", err)
	}
	if first != second {
		t.Fatalf("derivation diverged: %q vs %q", first, second)
	}
}

func TestDeriveSlugRejectsEmpty(t *testing.T) {
	if _, err := DeriveSlug(""); err == nil {
		t.Fatalf("expected error for empty filename")
	}
	if _, err := DeriveSlug(".md"); err == nil {
		t.Fatalf("expected error for extension-only filename")
	}
}
