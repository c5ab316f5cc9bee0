// Package markdown implements the content rendering pipeline: front-matter
// extraction, Markdown to sanitized HTML conversion, heading extraction, and
// filesystem document loading.
//
// Sanitization is a hard security boundary. Raw HTML embedded in a content
// body is never trusted, regardless of source: the rendered tree is filtered
// against a fixed allow-list of tags, attributes, and URL schemes before
// serialization.
package markdown
