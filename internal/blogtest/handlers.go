package blogtest

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/SkitsONe/blogctl/internal/client/models"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeItem honors the Envelope knob for list/item payloads.
func (s *Server) writeItem(w http.ResponseWriter, status int, v any) {
	if s.Envelope {
		s.writeJSON(w, status, map[string]any{"data": v})
		return
	}
	s.writeJSON(w, status, v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string, fieldErrors map[string][]string) {
	body := map[string]any{"message": message}
	if fieldErrors != nil {
		body["errors"] = fieldErrors
	}
	s.writeJSON(w, status, body)
}

func (s *Server) requireAuth(w http.ResponseWriter, r *http.Request) *models.UserRecord {
	u := s.authenticate(r)
	if u == nil {
		s.writeError(w, http.StatusUnauthorized, "unauthenticated", nil)
	}
	return u
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	s.mu.Lock()
	a := s.accounts[req.Email]
	s.mu.Unlock()

	if a == nil || bcrypt.CompareHashAndPassword(a.hash, []byte(req.Password)) != nil {
		s.writeError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"access_token": s.mintToken(a.user.ID),
		"user":         a.user,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	fieldErrors := map[string][]string{}
	if req.Email == "" {
		fieldErrors["email"] = []string{"the email field is required"}
	}
	if req.Password == "" {
		fieldErrors["password"] = []string{"the password field is required"}
	}
	if len(fieldErrors) > 0 {
		s.writeError(w, http.StatusUnprocessableEntity, "validation failed", fieldErrors)
		return
	}

	s.mu.Lock()
	_, taken := s.accounts[req.Email]
	s.mu.Unlock()
	if taken {
		s.writeError(w, http.StatusUnprocessableEntity, "validation failed",
			map[string][]string{"email": {"the email has already been taken"}})
		return
	}

	u := s.AddUser(req.Name, req.Email, req.Password)
	s.writeJSON(w, http.StatusCreated, map[string]any{
		"access_token": s.mintToken(u.ID),
		"user":         u,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	status := s.LogoutStatus
	if status == 0 {
		status = http.StatusOK
	}
	if status >= 400 {
		s.writeError(w, status, "logout failed", nil)
		return
	}
	s.writeJSON(w, status, map[string]any{"message": "logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	u := s.requireAuth(w, r)
	if u == nil {
		return
	}
	if s.Envelope {
		s.writeJSON(w, http.StatusOK, map[string]any{"user": u})
		return
	}
	s.writeJSON(w, http.StatusOK, u)
}

func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (models.ID, bool) {
	id, err := models.ParseID(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	posts := make([]models.Post, len(s.posts))
	copy(posts, s.posts)
	s.mu.Unlock()
	s.writeItem(w, http.StatusOK, posts)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			s.writeItem(w, http.StatusOK, p)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "post not found", nil)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var req struct {
		Title      string    `json:"title"`
		Body       string    `json:"body"`
		CategoryID models.ID `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}
	if req.Title == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "validation failed",
			map[string][]string{"title": {"the title field is required"}})
		return
	}

	s.mu.Lock()
	p := models.Post{ID: models.ID(s.nextID), Title: req.Title, Body: req.Body, CategoryID: req.CategoryID}
	s.nextID++
	s.posts = append(s.posts, p)
	s.mu.Unlock()

	s.writeItem(w, http.StatusCreated, p)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Title      string    `json:"title"`
		Body       string    `json:"body"`
		CategoryID models.ID `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Title = req.Title
			s.posts[i].Body = req.Body
			s.posts[i].CategoryID = req.CategoryID
			s.writeItem(w, http.StatusOK, s.posts[i])
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "post not found", nil)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			s.writeJSON(w, http.StatusOK, map[string]any{"message": "deleted"})
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "post not found", nil)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	cats := make([]models.Category, len(s.categories))
	copy(cats, s.categories)
	s.mu.Unlock()
	s.writeItem(w, http.StatusOK, cats)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			s.writeItem(w, http.StatusOK, c)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "category not found", nil)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "validation failed",
			map[string][]string{"name": {"the name field is required"}})
		return
	}

	s.mu.Lock()
	c := models.Category{ID: models.ID(s.nextID), Name: req.Name}
	s.nextID++
	s.categories = append(s.categories, c)
	s.mu.Unlock()

	s.writeItem(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = req.Name
			s.writeItem(w, http.StatusOK, s.categories[i])
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "category not found", nil)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if s.requireAuth(w, r) == nil {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			s.writeJSON(w, http.StatusOK, map[string]any{"message": "deleted"})
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "category not found", nil)
}
