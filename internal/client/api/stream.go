package api

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// doneSentinel is the terminal event of the AI generation stream.
const doneSentinel = "[DONE]"

// GenerationStream is the client side of the server-push AI text channel.
// It yields JSON-decoded text fragments in arrival order and terminates on
// the [DONE] sentinel or on transport failure. The transport is assumed to
// preserve order; nothing here reorders events.
type GenerationStream struct {
	body io.ReadCloser
	sc   *bufio.Scanner
	done bool
}

// NewGenerationStream wraps an event-stream body. Callers own Close.
func NewGenerationStream(body io.ReadCloser) *GenerationStream {
	return &GenerationStream{body: body, sc: bufio.NewScanner(body)}
}

// Recv returns the next text fragment. It returns io.EOF once the terminal
// sentinel has been received (and on every call after that), and an error
// wrapping ErrStream if the channel fails mid-stream. Events that are not
// valid JSON-encoded strings are skipped.
func (s *GenerationStream) Recv() (string, error) {
	if s.done {
		return "", io.EOF
	}

	for s.sc.Scan() {
		line := strings.TrimSpace(s.sc.Text())
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		data = strings.TrimSpace(data)

		if data == doneSentinel {
			s.done = true
			return "", io.EOF
		}

		var fragment string
		if err := json.Unmarshal([]byte(data), &fragment); err != nil {
			continue
		}
		return fragment, nil
	}

	s.done = true
	if err := s.sc.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStream, err)
	}
	// Body ended without the sentinel: treat as a broken channel.
	return "", fmt.Errorf("%w: stream closed before terminal event", ErrStream)
}

// Close releases the underlying connection. Safe to call more than once.
func (s *GenerationStream) Close() error {
	s.done = true
	return s.body.Close()
}
