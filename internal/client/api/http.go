package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elivanov/inkwell/internal/client/models"
	"github.com/elivanov/inkwell/internal/logging"
)

// HTTPClient is the REST implementation of Client. A bearer token, once
// installed with SetToken, is attached to every request until ClearToken.
// Mutating calls additionally carry a client-generated X-Request-Id so the
// backend can correlate a manual user retry with its first attempt.
type HTTPClient struct {
	baseURL string
	token   string
	log     logging.Logger

	http *http.Client
	// streamHTTP has no timeout; the generation stream stays open until
	// the terminal sentinel arrives.
	streamHTTP *http.Client
}

// NewHTTPClient builds an HTTPClient against the given base URL. timeout
// bounds every plain REST call.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        logging.NewSlogLogger(slog.Default()).With("component", "api"),
		http:       &http.Client{Timeout: timeout},
		streamHTTP: &http.Client{},
	}
}

// SetLogger replaces the request logger.
func (c *HTTPClient) SetLogger(l logging.Logger) { c.log = l }

func (c *HTTPClient) SetToken(token string) { c.token = token }
func (c *HTTPClient) ClearToken()           { c.token = "" }

func (c *HTTPClient) endpoint(path string) string {
	return c.baseURL + path
}

// errorMessage is the backend's error body shape.
type errorMessage struct {
	Message string `json:"message"`
}

// mapStatus converts a non-2xx response into a sentinel-wrapped error,
// preferring the backend's own message when one is present.
func mapStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))

	msg := resp.Status
	var em errorMessage
	if err := json.Unmarshal(body, &em); err == nil && em.Message != "" {
		msg = em.Message
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrUnavailable, msg)
	default:
		return fmt.Errorf("request failed: %s", msg)
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}
	return req, nil
}

// doJSON executes the request and decodes a 2xx JSON response into out
// (when out is non-nil). Connection failures map to ErrUnavailable.
func (c *HTTPClient) doJSON(req *http.Request, out any) error {
	ctx := req.Context()
	c.log.Debug(ctx, "request", "method", req.Method, "url", req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", req.Method, "url", req.URL.Path, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug(ctx, "request rejected", "method", req.Method, "url", req.URL.Path, "status", resp.StatusCode)
		return mapStatus(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, out)
}

// ListArticles fetches the full article collection. Articles without a
// creation timestamp are rejected here so the filtering pipeline never has
// to defend against them.
func (c *HTTPClient) ListArticles(ctx context.Context) ([]models.Article, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/blogs", nil)
	if err != nil {
		return nil, err
	}

	var articles []models.Article
	if err := c.doJSON(req, &articles); err != nil {
		return nil, err
	}

	for _, a := range articles {
		if a.CreatedAt.IsZero() {
			return nil, fmt.Errorf("article %s has no creation timestamp", a.ID)
		}
	}
	return articles, nil
}

func (c *HTTPClient) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/blogs/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var article models.Article
	if err := c.doJSON(req, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *HTTPClient) CreateArticle(ctx context.Context, payload ArticlePayload) (*models.Article, error) {
	if c.token == "" {
		return nil, ErrUnauthorized
	}
	var article models.Article
	if err := c.postJSON(ctx, "/api/blogs", payload, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *HTTPClient) UpdateArticle(ctx context.Context, id string, payload ArticlePayload) (*models.Article, error) {
	if c.token == "" {
		return nil, ErrUnauthorized
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, "/api/blogs/"+url.PathEscape(id), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var article models.Article
	if err := c.doJSON(req, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *HTTPClient) DeleteArticle(ctx context.Context, id string) error {
	if c.token == "" {
		return ErrUnauthorized
	}
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/blogs/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}

// authResponse is the body of successful login/register calls.
type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	in := map[string]string{"email": email, "password": password}
	var out authResponse
	if err := c.postJSON(ctx, "/api/auth/login", in, &out); err != nil {
		return nil, "", err
	}
	if out.User == nil || out.Token == "" {
		return nil, "", fmt.Errorf("login response missing user or token")
	}
	return out.User, out.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	in := map[string]string{"name": name, "email": email, "password": password}
	var out authResponse
	if err := c.postJSON(ctx, "/api/auth/register", in, &out); err != nil {
		return nil, "", err
	}
	if out.User == nil || out.Token == "" {
		return nil, "", fmt.Errorf("register response missing user or token")
	}
	return out.User, out.Token, nil
}

// UploadImage sends the file as the "image" part of a multipart form and
// returns the hosted URL the backend responds with.
func (c *HTTPClient) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("build multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("build multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build multipart: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out struct {
		ImageURL string `json:"imageUrl"`
		URL      string `json:"url"`
	}
	if err := c.doJSON(req, &out); err != nil {
		return "", err
	}
	if out.ImageURL != "" {
		return out.ImageURL, nil
	}
	return out.URL, nil
}

func (c *HTTPClient) SubscribeNewsletter(ctx context.Context, email string) error {
	return c.postJSON(ctx, "/api/newsletter", map[string]string{"email": email}, nil)
}

// GenerateArticle opens the server-push text stream for the given title.
// The returned stream must be closed by the caller; canceling ctx also
// tears the connection down.
func (c *HTTPClient) GenerateArticle(ctx context.Context, title string) (*GenerationStream, error) {
	q := url.Values{"title": {title}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/ai/stream-blog")+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.streamHTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: HTTP %d", ErrStream, resp.StatusCode)
	}
	c.log.Debug(ctx, "generation stream open", "title", title)
	return NewGenerationStream(resp.Body), nil
}

// ProbeImage fetches url and reports whether it resolves to an image.
// The body is discarded; this is a load-success signal, nothing more.
func (c *HTTPClient) ProbeImage(ctx context.Context, imageURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.streamHTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("image fetch failed: HTTP %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("image fetch returned %s, not an image", ct)
	}
	return nil
}

var _ Client = (*HTTPClient)(nil)
