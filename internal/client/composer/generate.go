package composer

import (
	"context"
	"errors"
	"io"

	"github.com/elivanov/inkwell/internal/client/api"
)

// GenerateText fills the markdown buffer from the AI generation stream
// keyed by the draft's title. The buffer is cleared first and markdown
// becomes the authoritative mode, matching where the generated text
// lands. Fragments are appended in arrival order; onFragment (optional)
// observes each one as it arrives, for live display.
//
// Only one generation may be active per draft. A stream error terminates
// the generation and is returned as-is; whatever fragments already
// arrived stay in the buffer, and nothing retries automatically.
func (d *Draft) GenerateText(ctx context.Context, client api.Client, onFragment func(string)) error {
	if d.Title == "" {
		return ErrMissingTitle
	}
	if d.generating {
		return ErrGenerationActive
	}
	d.generating = true
	defer func() { d.generating = false }()

	d.mode = ModeMarkdown
	d.markdown = ""

	stream, err := client.GenerateArticle(ctx, d.Title)
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		fragment, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		d.markdown += fragment
		if onFragment != nil {
			onFragment(fragment)
		}
	}
}

// Generating reports whether a text generation is currently running.
func (d *Draft) Generating() bool { return d.generating }
