package repository

import (
	"context"

	"github.com/galapremios/galavote/internal/models"
)

// VoteAward is one weighted slot of a ranked vote
type VoteAward struct {
	CandidateID string
	Points      int
	Position    int
}

// CategoryRepository defines voting-category data operations
type CategoryRepository interface {
	ListCategories(ctx context.Context, includeHidden bool) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, cat *models.Category) error
}

// CandidateRepository defines candidate data operations
type CandidateRepository interface {
	AddCandidate(ctx context.Context, cand *models.Candidate) error
	ListCategoryCandidates(ctx context.Context, categoryID string) ([]models.Candidate, error)
	ListAllCandidates(ctx context.Context) ([]models.Candidate, error)
}

// VoteRepository defines vote data operations
type VoteRepository interface {
	HasSingleVote(ctx context.Context, categoryID, username string) (bool, error)
	HasRankedVote(ctx context.Context, categoryID, username string) (bool, error)
	RecordSingleVote(ctx context.Context, categoryID, candidateID, username string) error
	RecordRankedVotes(ctx context.Context, categoryID, username string, awards []VoteAward) error
}

// UserRepository defines user data operations
type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id, lastLogin string) error
}

// ProposalRepository defines category-proposal data operations
type ProposalRepository interface {
	CreateProposal(ctx context.Context, proposal *models.CategoryProposal) error
	ListProposals(ctx context.Context) ([]models.CategoryProposal, error)
}

// FullRepository combines all repository interfaces
// Use this when a service needs access to multiple domains
type FullRepository interface {
	CategoryRepository
	CandidateRepository
	VoteRepository
	UserRepository
	ProposalRepository
	Ping(ctx context.Context) error
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
