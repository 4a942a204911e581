package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger) // Custom conditional HTTP logger
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{h.allowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Voting
	r.Post("/votarSingle", h.handleSingleVote)
	r.Post("/guardarVoto", h.handleSingleVote) // legacy route for the same operation
	r.Post("/votarMulti", h.handleRankedVote)
	r.Post("/guardarVotoPuntuado", h.handleRankedVote) // legacy route

	// Directory
	r.Get("/votaciones", h.handleGetVotings)
	r.Get("/getCandidatos/{id}", h.handleGetCategoryCandidates)
	r.Get("/getAllCandidatos", h.handleGetAllCandidates)
	r.Get("/getCategorias", h.handleGetProposals)

	// Proposals and administration
	r.Post("/guardarCategoria", h.handleSaveProposal)
	r.Post("/agregarCandidato", h.handleAddCandidate)
	r.Post("/guardarCandidato", h.handleAddCandidate) // legacy route
	r.Post("/guardarVotacion", h.handleCreateVoting)

	// Login
	r.Post("/updateLastLogin", h.handleUpdateLastLogin)

	// System
	r.Get("/health", h.handleHealth)
	r.Get("/qr", h.handleVotingQR)

	return r
}
