package api

import (
	"context"

	"github.com/elivanov/inkwell/internal/client/models"
)

// ArticlePayload is the request body for creating or updating an article.
type ArticlePayload struct {
	Title    string               `json:"title"`
	Content  string               `json:"content"`
	Category models.Category      `json:"category"`
	Image    string               `json:"image"`
	Format   models.ContentFormat `json:"format,omitempty"`
}

// Client is the transport-agnostic contract for talking to the blog backend.
//
// Contract:
//   - ListArticles / GetArticle: public reads, no token required.
//   - CreateArticle / UpdateArticle / DeleteArticle: require the bearer token
//     previously installed with SetToken.
//   - Login / Register: authenticate and return the user plus a bearer token;
//     the caller decides whether to install and persist it.
//   - UploadImage: multipart upload, returns the hosted URL.
//   - GenerateArticle: opens the one-directional AI text stream for a title.
//   - ProbeImage: fetches a candidate image URL purely as a load-success check.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	ListArticles(ctx context.Context) ([]models.Article, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	CreateArticle(ctx context.Context, payload ArticlePayload) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, payload ArticlePayload) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) error

	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)

	UploadImage(ctx context.Context, filename string, data []byte) (string, error)
	SubscribeNewsletter(ctx context.Context, email string) error
	GenerateArticle(ctx context.Context, title string) (*GenerationStream, error)
	ProbeImage(ctx context.Context, url string) error

	SetToken(token string)
	ClearToken()
}
