package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamFromString(s string) *GenerationStream {
	return NewGenerationStream(io.NopCloser(strings.NewReader(s)))
}

func TestGenerationStream_FragmentsThenSentinel(t *testing.T) {
	s := streamFromString("data: \"Hello \"\n\ndata: \"world\"\n\ndata: [DONE]\n\n")
	defer s.Close()

	frag, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, "Hello ", frag)

	frag, err = s.Recv()
	require.NoError(t, err)
	assert.Equal(t, "world", frag)

	_, err = s.Recv()
	assert.ErrorIs(t, err, io.EOF)

	// Recv after the sentinel keeps returning io.EOF; no further state changes.
	_, err = s.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestGenerationStream_SkipsCommentsAndGarbage(t *testing.T) {
	s := streamFromString(": keepalive\n\nevent: ping\n\ndata: not-json\n\ndata: \"ok\"\n\ndata: [DONE]\n\n")
	defer s.Close()

	frag, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, "ok", frag)

	_, err = s.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestGenerationStream_TruncatedIsStreamError(t *testing.T) {
	s := streamFromString("data: \"partial\"\n")
	defer s.Close()

	frag, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, "partial", frag)

	_, err = s.Recv()
	assert.ErrorIs(t, err, ErrStream)
}

func TestGenerateArticle_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/stream-blog", r.URL.Path)
		assert.Equal(t, "Remote work", r.URL.Query().Get("title"))

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: \"# Remote work\\n\"\n\ndata: \"Thoughts.\"\n\ndata: [DONE]\n\n")
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	stream, err := c.GenerateArticle(context.Background(), "Remote work")
	require.NoError(t, err)
	defer stream.Close()

	var got strings.Builder
	for {
		frag, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got.WriteString(frag)
	}
	assert.Equal(t, "# Remote work\nThoughts.", got.String())
}

func TestGenerateArticle_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.GenerateArticle(context.Background(), "title")
	assert.ErrorIs(t, err, ErrStream)
}
