package web

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// MaxMarkdownBytes bounds the size of a document accepted for preview.
const MaxMarkdownBytes = 64 << 10

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy

	// Display math first so "$$" is never read as two inline delimiters.
	mathPattern = regexp.MustCompile(`(?s)\$\$.+?\$\$|\\\[.+?\\\]|\\\(.+?\\\)|\$[^$\n]+?\$`)
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
}

// RenderMarkdown converts a markdown string to sanitized HTML.
// TeX spans ($...$, $$...$$, \(...\) and \[...\]) pass through untouched,
// HTML-escaped, for client-side typesetting. Returns empty string for empty input.
func RenderMarkdown(src string) string {
	if src == "" {
		return ""
	}

	protected, spans := protectMath(src)

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(protected), &buf); err != nil {
		return restoreMath(htmlSanitizer.Sanitize(protected), spans)
	}

	return restoreMath(htmlSanitizer.Sanitize(buf.String()), spans)
}

// protectMath swaps every TeX span for an alphanumeric placeholder that
// markdown and the sanitizer leave alone.
func protectMath(src string) (string, []string) {
	var spans []string
	out := mathPattern.ReplaceAllStringFunc(src, func(m string) string {
		spans = append(spans, m)
		return mathPlaceholder(len(spans) - 1)
	})
	return out, spans
}

func restoreMath(rendered string, spans []string) string {
	if len(spans) == 0 {
		return rendered
	}

	pairs := make([]string, 0, len(spans)*2)
	for i := len(spans) - 1; i >= 0; i-- {
		pairs = append(pairs, mathPlaceholder(i), html.EscapeString(spans[i]))
	}
	return strings.NewReplacer(pairs...).Replace(rendered)
}

func mathPlaceholder(i int) string {
	return fmt.Sprintf("FOLIOMATH%dX", i)
}
