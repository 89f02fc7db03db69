package composer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// richMarkdown renders markdown into the HTML the rich-text buffer holds:
// headings, emphasis, links, lists, and paragraph wrapping of bare lines.
var richMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// MarkdownToRich converts markup source into structured rich text. The
// conversion is deterministic and best-effort: markdown that does not
// parse as any known construct comes through as plain paragraphs.
func MarkdownToRich(source string) (string, error) {
	var buf bytes.Buffer
	if err := richMarkdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
