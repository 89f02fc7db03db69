package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/elivanov/inkwell/internal/client/api"
	"github.com/elivanov/inkwell/internal/client/models"
)

// fakeClient is an in-memory api.Client for command tests.
type fakeClient struct {
	articles []models.Article

	loginUser *models.User
	loginErr  error
	token     string

	created    []api.ArticlePayload
	updated    []api.ArticlePayload
	deleted    []string
	subscribed []string
	uploadURL  string
	uploadErr  error

	streamBody string
	streamErr  error

	setTokens   []string
	clearedToks int
}

func (f *fakeClient) ListArticles(ctx context.Context) ([]models.Article, error) {
	out := make([]models.Article, len(f.articles))
	copy(out, f.articles)
	return out, nil
}

func (f *fakeClient) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	for i := range f.articles {
		if f.articles[i].ID == id {
			a := f.articles[i]
			return &a, nil
		}
	}
	return nil, api.ErrNotFound
}

func (f *fakeClient) CreateArticle(ctx context.Context, p api.ArticlePayload) (*models.Article, error) {
	f.created = append(f.created, p)
	a := models.Article{
		ID: "new1", Title: p.Title, Content: p.Content,
		Category: p.Category, Image: p.Image, Format: p.Format,
	}
	f.articles = append(f.articles, a)
	return &a, nil
}

func (f *fakeClient) UpdateArticle(ctx context.Context, id string, p api.ArticlePayload) (*models.Article, error) {
	for i := range f.articles {
		if f.articles[i].ID == id {
			f.updated = append(f.updated, p)
			f.articles[i].Title = p.Title
			f.articles[i].Content = p.Content
			f.articles[i].Category = p.Category
			f.articles[i].Image = p.Image
			a := f.articles[i]
			return &a, nil
		}
	}
	return nil, api.ErrNotFound
}

func (f *fakeClient) DeleteArticle(ctx context.Context, id string) error {
	for i := range f.articles {
		if f.articles[i].ID == id {
			f.deleted = append(f.deleted, id)
			f.articles = append(f.articles[:i], f.articles[i+1:]...)
			return nil
		}
	}
	return api.ErrNotFound
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.loginUser, f.token, nil
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.loginUser, f.token, nil
}

func (f *fakeClient) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.uploadURL, nil
}

func (f *fakeClient) SubscribeNewsletter(ctx context.Context, email string) error {
	f.subscribed = append(f.subscribed, email)
	return nil
}

func (f *fakeClient) GenerateArticle(ctx context.Context, title string) (*api.GenerationStream, error) {
	if f.streamErr != nil {
		return nil, f.streamErr
	}
	return api.NewGenerationStream(io.NopCloser(strings.NewReader(f.streamBody))), nil
}

func (f *fakeClient) ProbeImage(ctx context.Context, url string) error {
	if strings.Contains(url, "broken") {
		return errors.New("probe failed")
	}
	return nil
}

func (f *fakeClient) SetToken(token string) { f.setTokens = append(f.setTokens, token) }
func (f *fakeClient) ClearToken()           { f.clearedToks++ }

var _ api.Client = (*fakeClient)(nil)
