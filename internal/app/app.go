package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/galapremios/galavote/internal/config"
	"github.com/galapremios/galavote/internal/handlers"
	"github.com/galapremios/galavote/internal/logger"
	"github.com/galapremios/galavote/internal/repository"
	"github.com/galapremios/galavote/internal/services"
)

// App holds all application dependencies
type App struct {
	log      logger.Logger
	handlers *handlers.Handlers
	repo     *repository.Repository
	server   *http.Server
}

// New creates and initializes a new application instance.
// The repository handle is opened here and owned by the App until Close.
func New(log logger.Logger, cfg config.Config) (*App, error) {
	repo, err := repository.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	// Initialize services
	votingService := services.NewVotingService(log, repo)
	categoryService := services.NewCategoryService(log, repo)
	candidateService := services.NewCandidateService(log, repo)
	userService := services.NewUserService(log, repo)
	linkService := services.NewLinkService(log, cfg.BaseURL)

	// Initialize handlers
	h := handlers.New(
		votingService,
		categoryService,
		candidateService,
		userService,
		linkService,
		repo,
		log,
		cfg.AllowedOrigin,
	)

	return &App{
		log:      log,
		handlers: h,
		repo:     repo,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Run starts the HTTP server and blocks until it stops
func (a *App) Run(addr string) error {
	a.server = &http.Server{
		Addr:    addr,
		Handler: a.Router(),
	}
	a.log.Info("Server starting", "addr", addr)
	err := a.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the HTTP server
func (a *App) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return a.server.Shutdown(shutdownCtx)
}

// Close releases app resources, including the store handle
func (a *App) Close() {
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			a.log.Warn("Error closing store", "error", err)
		}
	}
}
