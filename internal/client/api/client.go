package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SkitsONe/blogctl/internal/client/models"
	"github.com/SkitsONe/blogctl/internal/client/token"
	"github.com/SkitsONe/blogctl/internal/logging"
)

// DefaultTimeout bounds every request; a call exceeding it fails with a
// condition that normalizes to StatusNetwork.
const DefaultTimeout = 10 * time.Second

// Credentials identify an existing account for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData describes a new account.
type RegisterData struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

// PostData is the payload for creating or updating a post.
type PostData struct {
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CategoryID models.ID `json:"category_id,omitempty"`
}

// CategoryData is the payload for creating or updating a category.
type CategoryData struct {
	Name string `json:"name"`
}

// AuthPayload is the success envelope of the auth endpoints.
type AuthPayload struct {
	AccessToken string             `json:"access_token"`
	User        *models.UserRecord `json:"user"`
}

// Auth is the authentication surface of the backend.
type Auth interface {
	Login(ctx context.Context, creds Credentials) (*AuthPayload, error)
	Register(ctx context.Context, data RegisterData) (*AuthPayload, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.UserRecord, error)
}

// Posts is the posts CRUD surface of the backend.
type Posts interface {
	ListPosts(ctx context.Context, params url.Values) ([]models.Post, error)
	GetPost(ctx context.Context, id models.ID) (*models.Post, error)
	CreatePost(ctx context.Context, data PostData) (*models.Post, error)
	UpdatePost(ctx context.Context, id models.ID, data PostData) (*models.Post, error)
	DeletePost(ctx context.Context, id models.ID) error
}

// Categories is the categories CRUD surface of the backend.
type Categories interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id models.ID) (*models.Category, error)
	CreateCategory(ctx context.Context, data CategoryData) (*models.Category, error)
	UpdateCategory(ctx context.Context, id models.ID, data CategoryData) (*models.Category, error)
	DeleteCategory(ctx context.Context, id models.ID) error
}

// Client is the single point of outbound HTTP traffic. Before each request
// it reads the persisted bearer token and attaches it; on any 401 response
// it evicts that token, regardless of which endpoint produced the response.
// Every failure is surfaced to the caller as *Error.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  token.Store
	log     logging.Logger
}

var (
	_ Auth       = (*Client)(nil)
	_ Posts      = (*Client)(nil)
	_ Categories = (*Client)(nil)
)

// New builds a Client against baseURL (including the /api prefix, e.g.
// "http://localhost:8000/api"). A non-positive timeout falls back to
// DefaultTimeout.
func New(baseURL string, timeout time.Duration, tokens token.Store, log logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}
