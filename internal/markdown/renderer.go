package markdown

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Options controls how the renderer converts Markdown into HTML.
type Options struct {
	// Extensions names the goldmark extensions to enable. Unsupported names
	// are ignored; an empty list enables the GFM defaults.
	Extensions []string
	// HighlightStyle selects the chroma style applied to fenced code blocks.
	HighlightStyle string
	// HardWraps renders soft line breaks as <br> elements.
	HardWraps bool
}

// Renderer converts Markdown bodies into sanitized HTML. It is stateless so
// callers can reuse a single instance across requests without locking, and
// rendering the same input twice produces byte-identical output.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer constructs a renderer with the supplied options.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		md:     newGoldmarkEngine(opts),
		policy: newSanitizePolicy(),
	}
}

// Render converts a raw Markdown body into sanitized HTML. Disallowed markup
// is stripped, never escalated to an error: the render succeeds with the
// offending content removed.
func (r *Renderer) Render(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// newGoldmarkEngine builds a goldmark.Markdown for the supplied options.
// Unsafe rendering is enabled on purpose: raw HTML must survive conversion so
// the sanitizer can strip it, rather than goldmark escaping it into visible
// text.
func newGoldmarkEngine(opts Options) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	style := strings.TrimSpace(opts.HighlightStyle)
	if style == "" {
		style = "github"
	}
	exts = append(exts, highlighting.NewHighlighting(
		highlighting.WithStyle(style),
		highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
	))

	parserOptions := []parser.Option{
		parser.WithASTTransformers(
			util.Prioritized(&anchorTransformer{}, 100),
		),
	}

	rendererOptions := []renderer.Option{
		html.WithUnsafe(),
	}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithRendererOptions(rendererOptions...),
	)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}

// anchorTransformer assigns document-unique id attributes to headings,
// appends an anchor affordance after each heading's text, and hardens
// external links with target/rel attributes.
type anchorTransformer struct{}

func (t *anchorTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	slugs := newSlugger()

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			heading := stripInlineFormatting(string(node.Text(source)))
			id := slugs.Slug(heading)
			node.SetAttributeString("id", []byte(id))
			node.AppendChild(node, newHeadingAnchor(id))
		case *ast.Link:
			if isExternalDestination(node.Destination) {
				node.SetAttributeString("target", []byte("_blank"))
				node.SetAttributeString("rel", []byte("noopener noreferrer"))
			}
		case *ast.AutoLink:
			if isExternalDestination(node.URL(source)) {
				node.SetAttributeString("target", []byte("_blank"))
				node.SetAttributeString("rel", []byte("noopener noreferrer"))
			}
		}
		return ast.WalkContinue, nil
	})
}

func newHeadingAnchor(id string) ast.Node {
	link := ast.NewLink()
	link.Destination = []byte("#" + id)
	link.AppendChild(link, ast.NewString([]byte(" #")))
	return link
}

func isExternalDestination(destination []byte) bool {
	dest := strings.ToLower(string(destination))
	return strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://")
}

// newSanitizePolicy builds the allow-list the rendered tree is filtered
// against before serialization. The list is fixed: safe prose tags, code and
// pre with a class for language tags, heading ids on h2/h3, hardened anchors,
// and images restricted to http/https/data sources.
func newSanitizePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "hr", "blockquote", "pre", "code", "em", "strong", "del", "s",
		"ul", "ol", "li", "table", "thead", "tbody", "tr", "th", "td",
		"h1", "h2", "h3", "h4", "h5", "h6", "a", "img", "span",
	)

	p.AllowAttrs("id").OnElements("h2", "h3")
	p.AllowAttrs("class").OnElements("code", "pre", "span")
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "title", "loading", "decoding").OnElements("img")

	p.AllowURLSchemes("http", "https", "mailto", "tel")
	p.AllowRelativeURLs(true)
	p.AllowDataURIImages()

	return p
}
