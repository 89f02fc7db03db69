package composer

import (
	"context"
	"errors"
	"fmt"

	"github.com/elivanov/inkwell/internal/client/api"
	"github.com/elivanov/inkwell/internal/client/models"
)

// Validation errors, raised before any network call is made.
var (
	ErrMissingTitle    = errors.New("please enter a title")
	ErrMissingCategory = errors.New("please select a category")
	ErrMissingCover    = errors.New("please add a cover image")
	ErrInvalidCategory = errors.New("unknown category")
)

// ErrGenerationActive is returned when a second AI text generation is
// started while one is still running on the same draft.
var ErrGenerationActive = errors.New("a generation is already running for this draft")

// Mode is the authoring mode of a draft: a tagged variant deciding which
// content buffer is authoritative for submission.
type Mode string

const (
	ModeMarkdown Mode = "markdown"
	ModeRich     Mode = "rich"
)

// Draft is an in-progress article. It holds two mutually independent
// content buffers; Mode selects which one submission uses. The only
// conversion between them is ConvertToRich: markdown into rich text,
// one way. There is deliberately no conversion back: rich-text edits
// never touch the markdown buffer.
//
// A draft lives only for the authoring session; it is never persisted.
type Draft struct {
	Title    string
	Category models.Category

	mode     Mode
	markdown string
	rich     string

	cover        string
	coverLoading bool

	generating bool
}

func NewDraft() *Draft {
	return &Draft{mode: ModeMarkdown}
}

func (d *Draft) Mode() Mode       { return d.mode }
func (d *Draft) Markdown() string { return d.markdown }
func (d *Draft) Rich() string     { return d.rich }
func (d *Draft) Cover() string    { return d.cover }

// SetMarkdown replaces the markdown buffer (edits on the markdown tab).
func (d *Draft) SetMarkdown(s string) { d.markdown = s }

// SetRich replaces the rich-text buffer (edits on the rich tab).
func (d *Draft) SetRich(s string) { d.rich = s }

// SetMode switches the authoritative tab without converting anything.
func (d *Draft) SetMode(m Mode) { d.mode = m }

// ConvertToRich renders the markdown buffer into the rich-text buffer and
// makes rich text authoritative. The markdown buffer is left as it was.
func (d *Draft) ConvertToRich() error {
	html, err := MarkdownToRich(d.markdown)
	if err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}
	d.rich = html
	d.mode = ModeRich
	return nil
}

// Content returns the authoritative buffer and its format tag.
func (d *Draft) Content() (string, models.ContentFormat) {
	if d.mode == ModeRich {
		return d.rich, models.FormatRich
	}
	return d.markdown, models.FormatMarkdown
}

// Validate checks the submission requirements and returns the error for
// the first missing field. It performs no I/O.
func (d *Draft) Validate() error {
	if d.Title == "" {
		return ErrMissingTitle
	}
	if d.Category == "" {
		return ErrMissingCategory
	}
	if !d.Category.IsValid() {
		return ErrInvalidCategory
	}
	if d.cover == "" {
		return ErrMissingCover
	}
	return nil
}

// Submit validates the draft and creates the article. Validation failures
// abort before any network call. On success the draft resets to its empty
// state and the created article is returned.
func (d *Draft) Submit(ctx context.Context, client api.Client) (*models.Article, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	content, format := d.Content()
	article, err := client.CreateArticle(ctx, api.ArticlePayload{
		Title:    d.Title,
		Content:  content,
		Category: d.Category,
		Image:    d.cover,
		Format:   format,
	})
	if err != nil {
		return nil, err
	}

	d.Reset()
	return article, nil
}

// Reset returns the draft to its initial empty state.
func (d *Draft) Reset() {
	*d = Draft{mode: ModeMarkdown}
}
