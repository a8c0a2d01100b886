package stores

import (
	"context"
	"sync"

	"github.com/SkitsONe/blogctl/internal/client/api"
	"github.com/SkitsONe/blogctl/internal/client/models"
	"github.com/SkitsONe/blogctl/internal/logging"
)

// Categories mirrors the server's category collection with the same
// synchronization policy as Posts: list fetch swallows failures, everything
// else re-throws, created entries go to the front.
type Categories struct {
	api api.Categories
	log logging.Logger

	mu         sync.Mutex
	categories []models.Category
	current    *models.Category
	loading    bool
	lastErr    string
}

func NewCategories(categoriesAPI api.Categories, log logging.Logger) *Categories {
	return &Categories{api: categoriesAPI, log: log.With("component", "categories")}
}

func (c *Categories) All() []models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Categories) Current() *models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Categories) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Categories) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Categories) begin() func() {
	c.mu.Lock()
	c.loading = true
	c.lastErr = ""
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}
}

func (c *Categories) fail(err error) {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
}

func (c *Categories) FetchCategories(ctx context.Context) {
	done := c.begin()
	defer done()

	cats, err := c.api.ListCategories(ctx)
	if err != nil {
		c.log.Error(ctx, "fetching categories failed", "error", err)
		c.fail(err)
		c.mu.Lock()
		c.categories = nil
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.categories = cats
	c.mu.Unlock()
}

func (c *Categories) FetchCategory(ctx context.Context, id models.ID) (*models.Category, error) {
	done := c.begin()
	defer done()

	cat, err := c.api.GetCategory(ctx, id)
	if err != nil {
		c.log.Error(ctx, "fetching category failed", "id", id, "error", err)
		c.fail(err)
		c.mu.Lock()
		c.current = nil
		c.mu.Unlock()
		return nil, err
	}

	c.mu.Lock()
	c.current = cat
	c.mu.Unlock()
	return cat, nil
}

func (c *Categories) CreateCategory(ctx context.Context, data api.CategoryData) (*models.Category, error) {
	done := c.begin()
	defer done()

	cat, err := c.api.CreateCategory(ctx, data)
	if err != nil {
		c.log.Error(ctx, "creating category failed", "error", err)
		c.fail(err)
		return nil, err
	}

	c.mu.Lock()
	c.categories = append([]models.Category{*cat}, c.categories...)
	c.mu.Unlock()
	return cat, nil
}

func (c *Categories) UpdateCategory(ctx context.Context, id models.ID, data api.CategoryData) (*models.Category, error) {
	done := c.begin()
	defer done()

	cat, err := c.api.UpdateCategory(ctx, id, data)
	if err != nil {
		c.log.Error(ctx, "updating category failed", "id", id, "error", err)
		c.fail(err)
		return nil, err
	}

	c.mu.Lock()
	for i := range c.categories {
		if c.categories[i].ID == id {
			c.categories[i] = *cat
		}
	}
	if c.current != nil && c.current.ID == id {
		c.current = cat
	}
	c.mu.Unlock()
	return cat, nil
}

func (c *Categories) DeleteCategory(ctx context.Context, id models.ID) error {
	done := c.begin()
	defer done()

	if err := c.api.DeleteCategory(ctx, id); err != nil {
		c.log.Error(ctx, "deleting category failed", "id", id, "error", err)
		c.fail(err)
		return err
	}

	c.mu.Lock()
	kept := c.categories[:0]
	for _, cat := range c.categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	c.categories = kept
	if c.current != nil && c.current.ID == id {
		c.current = nil
	}
	c.mu.Unlock()
	return nil
}
