package editor

import (
	"context"
	"errors"

	"github.com/elivanov/inkwell/internal/client/api"
	"github.com/elivanov/inkwell/internal/client/models"
)

type fakeClient struct {
	articles map[string]*models.Article

	getErr    error
	updateErr error
	deleteErr error
	uploadErr error
	uploadURL string

	updated  []api.ArticlePayload
	deleted  []string
	uploaded []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{articles: map[string]*models.Article{}}
}

func (f *fakeClient) ListArticles(ctx context.Context) ([]models.Article, error) {
	return nil, nil
}

func (f *fakeClient) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	a, ok := f.articles[id]
	if !ok {
		return nil, api.ErrNotFound
	}
	out := *a
	return &out, nil
}

func (f *fakeClient) CreateArticle(ctx context.Context, p api.ArticlePayload) (*models.Article, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) UpdateArticle(ctx context.Context, id string, p api.ArticlePayload) (*models.Article, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = append(f.updated, p)
	a, ok := f.articles[id]
	if !ok {
		return nil, api.ErrNotFound
	}
	a.Title = p.Title
	a.Content = p.Content
	a.Category = p.Category
	a.Image = p.Image
	out := *a
	return &out, nil
}

func (f *fakeClient) DeleteArticle(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	delete(f.articles, id)
	return nil
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	return nil, "", errors.New("not implemented")
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	return nil, "", errors.New("not implemented")
}

func (f *fakeClient) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploaded = append(f.uploaded, filename)
	return f.uploadURL, nil
}

func (f *fakeClient) SubscribeNewsletter(ctx context.Context, email string) error {
	return errors.New("not implemented")
}

func (f *fakeClient) GenerateArticle(ctx context.Context, title string) (*api.GenerationStream, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) ProbeImage(ctx context.Context, url string) error { return nil }

func (f *fakeClient) SetToken(token string) {}
func (f *fakeClient) ClearToken()           {}

var _ api.Client = (*fakeClient)(nil)
