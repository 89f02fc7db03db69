package composer

import (
	"context"
	"io"
	"strings"

	"github.com/elivanov/inkwell/internal/client/api"
	"github.com/elivanov/inkwell/internal/client/models"
)

// fakeClient implements api.Client for composer unit tests.
type fakeClient struct {
	CreateRet *models.Article
	CreateErr error

	UploadRet string
	UploadErr error

	ProbeErr error

	// StreamBody is raw event-stream text served by GenerateArticle.
	StreamBody string
	StreamErr  error

	// recorded arguments
	LastCreate   api.ArticlePayload
	LastUpload   string
	LastProbeURL string
	LastTitle    string

	CreateCalls int
	StreamCalls int
}

func (f *fakeClient) ListArticles(ctx context.Context) ([]models.Article, error) { return nil, nil }
func (f *fakeClient) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	return nil, api.ErrNotFound
}

func (f *fakeClient) CreateArticle(ctx context.Context, payload api.ArticlePayload) (*models.Article, error) {
	f.CreateCalls++
	f.LastCreate = payload
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateArticle(ctx context.Context, id string, payload api.ArticlePayload) (*models.Article, error) {
	return nil, nil
}
func (f *fakeClient) DeleteArticle(ctx context.Context, id string) error { return nil }

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	return nil, "", nil
}
func (f *fakeClient) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	return nil, "", nil
}

func (f *fakeClient) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	f.LastUpload = filename
	return f.UploadRet, f.UploadErr
}

func (f *fakeClient) SubscribeNewsletter(ctx context.Context, email string) error { return nil }

func (f *fakeClient) GenerateArticle(ctx context.Context, title string) (*api.GenerationStream, error) {
	f.StreamCalls++
	f.LastTitle = title
	if f.StreamErr != nil {
		return nil, f.StreamErr
	}
	return api.NewGenerationStream(io.NopCloser(strings.NewReader(f.StreamBody))), nil
}

func (f *fakeClient) ProbeImage(ctx context.Context, url string) error {
	f.LastProbeURL = url
	return f.ProbeErr
}

func (f *fakeClient) SetToken(token string) {}
func (f *fakeClient) ClearToken()           {}

var _ api.Client = (*fakeClient)(nil)
