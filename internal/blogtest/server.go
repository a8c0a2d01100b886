// Package blogtest provides an in-memory fake of the blog backend REST API
// for tests. It issues real HS256 access tokens, stores bcrypt password
// hashes, and can answer either with {"data": ...} envelopes or with bare
// payloads, so clients can be exercised against both response shapes.
package blogtest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SkitsONe/blogctl/internal/client/models"
)

type account struct {
	user models.UserRecord
	hash []byte
}

// Server is the fake backend. The zero values of the knobs give
// well-behaved responses; tests flip them to simulate the awkward cases.
type Server struct {
	mu         sync.Mutex
	accounts   map[string]*account // keyed by email
	posts      []models.Post
	categories []models.Category
	nextID     int64
	secret     []byte

	// Envelope wraps list/item responses in {"data": ...} and /me in
	// {"user": ...} when true; bare payloads otherwise.
	Envelope bool

	// LogoutStatus overrides the /logout response code (default 200).
	LogoutStatus int

	srv *httptest.Server
}

// New starts the fake backend on a loopback listener.
func New() *Server {
	s := &Server{
		accounts: make(map[string]*account),
		nextID:   1,
		secret:   []byte(uuid.NewString()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/me", s.handleMe)
	mux.HandleFunc("GET /api/posts", s.handleListPosts)
	mux.HandleFunc("POST /api/posts", s.handleCreatePost)
	mux.HandleFunc("GET /api/posts/{id}", s.handleGetPost)
	mux.HandleFunc("PUT /api/posts/{id}", s.handleUpdatePost)
	mux.HandleFunc("DELETE /api/posts/{id}", s.handleDeletePost)
	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.handleCreateCategory)
	mux.HandleFunc("GET /api/categories/{id}", s.handleGetCategory)
	mux.HandleFunc("PUT /api/categories/{id}", s.handleUpdateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", s.handleDeleteCategory)

	s.srv = httptest.NewServer(mux)
	return s
}

// URL returns the API base URL, including the /api prefix.
func (s *Server) URL() string {
	return s.srv.URL + "/api"
}

func (s *Server) Close() {
	s.srv.Close()
}

// AddUser registers an account directly, bypassing the HTTP surface, and
// returns its record.
func (s *Server) AddUser(name, email, password string) models.UserRecord {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.UserRecord{ID: models.ID(s.nextID), Name: name, Email: email}
	s.nextID++
	s.accounts[email] = &account{user: u, hash: hash}
	return u
}

// SeedPost inserts a post directly and returns it.
func (s *Server) SeedPost(title, body string, categoryID models.ID) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.Post{ID: models.ID(s.nextID), Title: title, Body: body, CategoryID: categoryID}
	s.nextID++
	s.posts = append(s.posts, p)
	return p
}

// SeedCategory inserts a category directly and returns it.
func (s *Server) SeedCategory(name string) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Category{ID: models.ID(s.nextID), Name: name}
	s.nextID++
	s.categories = append(s.categories, c)
	return c
}

// Token mints a valid access token for the given user id, for tests that
// want to start from an already-persisted session.
func (s *Server) Token(id models.ID) string {
	return s.mintToken(id)
}

func (s *Server) mintToken(id models.ID) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return signed
}

// authenticate resolves the bearer token on r to a user. Returns nil when
// the token is absent, malformed, expired, or refers to no known account.
func (s *Server) authenticate(r *http.Request) *models.UserRecord {
	h := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(h, "Bearer ")
	if !ok || raw == "" {
		return nil
	}

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil
	}

	id, err := models.ParseID(claims.Subject)
	if err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.user.ID == id {
			u := a.user
			return &u
		}
	}
	return nil
}
