package services

import (
	"context"

	"github.com/galapremios/galavote/internal/models"
)

// VotingServicer defines the interface for vote-recording operations
type VotingServicer interface {
	SubmitSingleVote(ctx context.Context, categoryID, candidateID, username string) (*SingleVoteResult, error)
	SubmitRankedVote(ctx context.Context, categoryID string, candidateIDs []string, username string) (*RankedVoteResult, error)
}

// CategoryServicer defines the interface for category operations
type CategoryServicer interface {
	ListVotings(ctx context.Context) ([]models.Category, error)
	CreateVoting(ctx context.Context, voting Voting) (*models.Category, error)
	SaveProposal(ctx context.Context, title, description, username string) (*models.CategoryProposal, error)
	ListProposals(ctx context.Context) ([]models.CategoryProposal, error)
}

// CandidateServicer defines the interface for candidate operations
type CandidateServicer interface {
	AddCandidate(ctx context.Context, proposal CandidateProposal) (*models.Candidate, error)
	GetCategoryCandidates(ctx context.Context, categoryID string) ([]models.Candidate, error)
	ListAllCandidates(ctx context.Context) ([]models.Candidate, error)
}

// UserServicer defines the interface for user operations
type UserServicer interface {
	UpdateLastLogin(ctx context.Context, username, password string) (*models.User, error)
}

// LinkServicer defines the interface for voting-link operations
type LinkServicer interface {
	VotingPageQR() ([]byte, error)
}

// Ensure concrete types implement interfaces
var (
	_ VotingServicer    = (*VotingService)(nil)
	_ CategoryServicer  = (*CategoryService)(nil)
	_ CandidateServicer = (*CandidateService)(nil)
	_ UserServicer      = (*UserService)(nil)
	_ LinkServicer      = (*LinkService)(nil)
)
