package markdown

import (
	"strings"
	"testing"
)

func newTestRenderer() *Renderer {
	return NewRenderer(Options{})
}

func TestRenderIdempotent(t *testing.T) {
	source := []byte("## Overview\n\nSome *emphasis* and a [link](https://example.com).\n")
	r := newTestRenderer()

	first, err := r.Render(source)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := r.Render(source)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first != second {
		t.Fatalf("rendering is not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestRenderBasicProse(t *testing.T) {
	r := newTestRenderer()
	html, err := r.Render([]byte("Hello **world**"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "<strong>world</strong>") {
		t.Fatalf("expected strong emphasis in output, got %q", html)
	}
}

func TestRenderStripsScriptElements(t *testing.T) {
	r := newTestRenderer()
	html, err := r.Render([]byte("before\n\n<script>alert(1)</script>\n\nafter"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(html, "<script") {
		t.Fatalf("script element survived sanitization: %q", html)
	}
	if strings.Contains(html, "alert(1)") {
		t.Fatalf("script body survived sanitization: %q", html)
	}
	if !strings.Contains(html, "before") || !strings.Contains(html, "after") {
		t.Fatalf("surrounding prose was lost: %q", html)
	}
}

func TestRenderStripsEventHandlerAttributes(t *testing.T) {
	r := newTestRenderer()
	html, err := r.Render([]byte(`<p onclick="steal()">hi</p>`))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(html, "onclick") {
		t.Fatalf("event handler attribute survived sanitization: %q", html)
	}
	if !strings.Contains(html, "hi") {
		t.Fatalf("paragraph content was lost: %q", html)
	}
}

func TestRenderStripsDisallowedProtocols(t *testing.T) {
	r := newTestRenderer()
	html, err := r.Render([]byte("[x](javascript:alert(1))"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(html, "javascript:") {
		t.Fatalf("javascript URL survived sanitization: %q", html)
	}
}

func TestRenderHeadingIDsAndAnchors(t *testing.T) {
	r := newTestRenderer()
	html, err := r.Render([]byte("## Overview\n\ntext\n\n## Overview\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, `id="overview"`) {
		t.Fatalf("expected first heading id, got %q", html)
	}
	if !strings.Contains(html, `id="overview-1"`) {
		t.Fatalf("expected deduplicated second heading id, got %q", html)
	}
	if !strings.Contains(html, `href="#overview"`) {
		t.Fatalf("expected anchor affordance pointing at the heading, got %q", html)
	}
}

func TestRenderHardensExternalLinks(t *testing.T) {
	r := newTestRenderer()
	html, err := r.Render([]byte("[ext](https://example.com) and [int](/about)"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, `target="_blank"`) {
		t.Fatalf("external link missing target, got %q", html)
	}
	if !strings.Contains(html, `rel="noopener noreferrer"`) {
		t.Fatalf("external link missing rel, got %q", html)
	}
	if strings.Count(html, `target="_blank"`) != 1 {
		t.Fatalf("internal link should not be hardened, got %q", html)
	}
	if !strings.Contains(html, `href="/about"`) {
		t.Fatalf("relative link should survive sanitization, got %q", html)
	}
}

func TestRenderHighlightsFencedCode(t *testing.T) {
	r := newTestRenderer()
	html, err := r.Render([]byte("```go\npackage main\n```\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "<pre") {
		t.Fatalf("expected preformatted block, got %q", html)
	}
	if !strings.Contains(html, "chroma") {
		t.Fatalf("expected highlighted output classes, got %q", html)
	}
}

func TestRenderTables(t *testing.T) {
	r := newTestRenderer()
	html, err := r.Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "<table>") || !strings.Contains(html, "<td>1</td>") {
		t.Fatalf("expected table rendering, got %q", html)
	}
}
