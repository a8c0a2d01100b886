// Package stores keeps local, reactive copies of server-side collections and
// synchronizes them through the API client. Each store exposes a loading flag
// and the last operation's error message; both are overwritten by every
// operation (last-write-wins, see the package doc for the race caveat).
package stores

import (
	"context"
	"net/url"
	"sync"

	"github.com/SkitsONe/blogctl/internal/client/api"
	"github.com/SkitsONe/blogctl/internal/client/models"
	"github.com/SkitsONe/blogctl/internal/logging"
)

// Posts mirrors the server's post collection. The collection keeps server
// response order, except posts created locally go to the front
// (most-recent-first). Current holds the single post being viewed; it may
// duplicate a collection entry and is refreshed independently.
//
// FetchPosts swallows failures (list views degrade to an empty state and the
// error field); every other operation re-throws so the caller can handle the
// failure explicitly.
type Posts struct {
	api api.Posts
	log logging.Logger

	mu      sync.Mutex
	posts   []models.Post
	current *models.Post
	loading bool
	lastErr string
}

func NewPosts(postsAPI api.Posts, log logging.Logger) *Posts {
	return &Posts{api: postsAPI, log: log.With("component", "posts")}
}

// All returns a copy of the collection.
func (p *Posts) All() []models.Post {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Post, len(p.posts))
	copy(out, p.posts)
	return out
}

// Current returns the currently viewed post, or nil.
func (p *Posts) Current() *models.Post {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Loading reports whether an operation is in flight.
func (p *Posts) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Err returns the last operation's failure message, or "".
func (p *Posts) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// begin marks an operation start: loading on, previous error cleared.
// The returned func is deferred to guarantee loading is cleared.
func (p *Posts) begin() func() {
	p.mu.Lock()
	p.loading = true
	p.lastErr = ""
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		p.loading = false
		p.mu.Unlock()
	}
}

func (p *Posts) fail(err error) {
	p.mu.Lock()
	p.lastErr = err.Error()
	p.mu.Unlock()
}

// FetchPosts replaces the collection with the server's list. On failure the
// collection is cleared to empty and the error is recorded but not returned.
func (p *Posts) FetchPosts(ctx context.Context, params url.Values) {
	done := p.begin()
	defer done()

	posts, err := p.api.ListPosts(ctx, params)
	if err != nil {
		p.log.Error(ctx, "fetching posts failed", "error", err)
		p.fail(err)
		p.mu.Lock()
		p.posts = nil
		p.mu.Unlock()
		return
	}

	p.mu.Lock()
	p.posts = posts
	p.mu.Unlock()
}

// FetchPost loads a single post into Current. On failure Current is cleared
// and the error is returned.
func (p *Posts) FetchPost(ctx context.Context, id models.ID) (*models.Post, error) {
	done := p.begin()
	defer done()

	post, err := p.api.GetPost(ctx, id)
	if err != nil {
		p.log.Error(ctx, "fetching post failed", "id", id, "error", err)
		p.fail(err)
		p.mu.Lock()
		p.current = nil
		p.mu.Unlock()
		return nil, err
	}

	p.mu.Lock()
	p.current = post
	p.mu.Unlock()
	return post, nil
}

// CreatePost sends the payload and inserts the server's post at the front of
// the collection.
func (p *Posts) CreatePost(ctx context.Context, data api.PostData) (*models.Post, error) {
	done := p.begin()
	defer done()

	post, err := p.api.CreatePost(ctx, data)
	if err != nil {
		p.log.Error(ctx, "creating post failed", "error", err)
		p.fail(err)
		return nil, err
	}

	p.mu.Lock()
	p.posts = append([]models.Post{*post}, p.posts...)
	p.mu.Unlock()
	return post, nil
}

// UpdatePost sends the payload and refreshes the matching collection entry
// and Current. Updating the collection is best-effort: when no entry matches
// the id, the collection stays unchanged and the updated payload is still
// returned.
func (p *Posts) UpdatePost(ctx context.Context, id models.ID, data api.PostData) (*models.Post, error) {
	done := p.begin()
	defer done()

	post, err := p.api.UpdatePost(ctx, id, data)
	if err != nil {
		p.log.Error(ctx, "updating post failed", "id", id, "error", err)
		p.fail(err)
		return nil, err
	}

	p.mu.Lock()
	for i := range p.posts {
		if p.posts[i].ID == id {
			p.posts[i] = *post
		}
	}
	if p.current != nil && p.current.ID == id {
		p.current = post
	}
	p.mu.Unlock()
	return post, nil
}

// DeletePost issues the delete and removes every matching entry; Current is
// cleared when it matched. Local state is only mutated after the call
// succeeds, so there is nothing to roll back on failure.
func (p *Posts) DeletePost(ctx context.Context, id models.ID) error {
	done := p.begin()
	defer done()

	if err := p.api.DeletePost(ctx, id); err != nil {
		p.log.Error(ctx, "deleting post failed", "id", id, "error", err)
		p.fail(err)
		return err
	}

	p.mu.Lock()
	kept := p.posts[:0]
	for _, post := range p.posts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	p.posts = kept
	if p.current != nil && p.current.ID == id {
		p.current = nil
	}
	p.mu.Unlock()
	return nil
}
