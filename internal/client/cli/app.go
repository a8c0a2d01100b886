package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SkitsONe/blogctl/internal/client/api"
	"github.com/SkitsONe/blogctl/internal/client/config"
	"github.com/SkitsONe/blogctl/internal/client/session"
	"github.com/SkitsONe/blogctl/internal/client/stores"
	"github.com/SkitsONe/blogctl/internal/client/token"
	"github.com/SkitsONe/blogctl/internal/logging"
)

type App struct {
	config     *config.Config
	log        logging.Logger
	session    *session.Store
	posts      *stores.Posts
	categories *stores.Categories
	reader     *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	level := slog.LevelWarn
	if os.Getenv("BLOGCTL_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tokens, err := token.NewFileStore(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("initializing token storage: %w", err)
	}

	apiClient := api.New(cfg.BaseURL, cfg.RequestTimeout, tokens, logger)

	return &App{
		config:     cfg,
		log:        logger,
		session:    session.New(apiClient, tokens, logger),
		posts:      stores.NewPosts(apiClient, logger),
		categories: stores.NewCategories(apiClient, logger),
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a persisted session and starts the REPL. It blocks until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	a.session.Initialize(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if u := a.session.User(); u != nil {
		return u.Email
	}
	return "anonymous"
}
