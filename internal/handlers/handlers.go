package handlers

import (
	"github.com/galapremios/galavote/internal/services"
)

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Voting        services.VotingServicer
	Category      services.CategoryServicer
	Candidate     services.CandidateServicer
	User          services.UserServicer
	Link          services.LinkServicer
	Store         Pinger
	Log           HTTPLogger
	allowedOrigin string
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// New creates a new Handlers instance with all dependencies
func New(
	voting services.VotingServicer,
	category services.CategoryServicer,
	candidate services.CandidateServicer,
	user services.UserServicer,
	link services.LinkServicer,
	store Pinger,
	log HTTPLogger,
	allowedOrigin string,
) *Handlers {
	return &Handlers{
		Voting:        voting,
		Category:      category,
		Candidate:     candidate,
		User:          user,
		Link:          link,
		Store:         store,
		Log:           log,
		allowedOrigin: allowedOrigin,
	}
}

// NewForTesting creates a Handlers instance with a noop logger and open CORS
func NewForTesting(
	voting services.VotingServicer,
	category services.CategoryServicer,
	candidate services.CandidateServicer,
	user services.UserServicer,
	link services.LinkServicer,
	store Pinger,
) *Handlers {
	return &Handlers{
		Voting:        voting,
		Category:      category,
		Candidate:     candidate,
		User:          user,
		Link:          link,
		Store:         store,
		Log:           NoopHTTPLogger{},
		allowedOrigin: "*",
	}
}
