package mock

import (
	"context"

	"github.com/galapremios/galavote/internal/models"
	"github.com/galapremios/galavote/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database
// manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.ListCategoriesError = errors.New("database error")
//	svc := services.NewCategoryService(log, mockRepo)
//	_, err := svc.ListVotings(ctx)
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	// ===== Category Errors =====
	ListCategoriesError error
	GetCategoryError    error
	CreateCategoryError error

	// ===== Candidate Errors =====
	AddCandidateError           error
	ListCategoryCandidatesError error
	ListAllCandidatesError      error

	// ===== Vote Errors =====
	HasSingleVoteError     error
	HasRankedVoteError     error
	RecordSingleVoteError  error
	RecordRankedVotesError error

	// ===== User Errors =====
	GetUserByUsernameError error
	CreateUserError        error
	UpdateLastLoginError   error

	// ===== Proposal Errors =====
	CreateProposalError error
	ListProposalsError  error

	PingError error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
	}
}

// ===== Category Methods =====

func (m *Repository) ListCategories(ctx context.Context, includeHidden bool) ([]models.Category, error) {
	if m.ListCategoriesError != nil {
		return nil, m.ListCategoriesError
	}
	return m.FullRepository.ListCategories(ctx, includeHidden)
}

func (m *Repository) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	if m.GetCategoryError != nil {
		return nil, m.GetCategoryError
	}
	return m.FullRepository.GetCategory(ctx, id)
}

func (m *Repository) CreateCategory(ctx context.Context, cat *models.Category) error {
	if m.CreateCategoryError != nil {
		return m.CreateCategoryError
	}
	return m.FullRepository.CreateCategory(ctx, cat)
}

// ===== Candidate Methods =====

func (m *Repository) AddCandidate(ctx context.Context, cand *models.Candidate) error {
	if m.AddCandidateError != nil {
		return m.AddCandidateError
	}
	return m.FullRepository.AddCandidate(ctx, cand)
}

func (m *Repository) ListCategoryCandidates(ctx context.Context, categoryID string) ([]models.Candidate, error) {
	if m.ListCategoryCandidatesError != nil {
		return nil, m.ListCategoryCandidatesError
	}
	return m.FullRepository.ListCategoryCandidates(ctx, categoryID)
}

func (m *Repository) ListAllCandidates(ctx context.Context) ([]models.Candidate, error) {
	if m.ListAllCandidatesError != nil {
		return nil, m.ListAllCandidatesError
	}
	return m.FullRepository.ListAllCandidates(ctx)
}

// ===== Vote Methods =====

func (m *Repository) HasSingleVote(ctx context.Context, categoryID, username string) (bool, error) {
	if m.HasSingleVoteError != nil {
		return false, m.HasSingleVoteError
	}
	return m.FullRepository.HasSingleVote(ctx, categoryID, username)
}

func (m *Repository) HasRankedVote(ctx context.Context, categoryID, username string) (bool, error) {
	if m.HasRankedVoteError != nil {
		return false, m.HasRankedVoteError
	}
	return m.FullRepository.HasRankedVote(ctx, categoryID, username)
}

func (m *Repository) RecordSingleVote(ctx context.Context, categoryID, candidateID, username string) error {
	if m.RecordSingleVoteError != nil {
		return m.RecordSingleVoteError
	}
	return m.FullRepository.RecordSingleVote(ctx, categoryID, candidateID, username)
}

func (m *Repository) RecordRankedVotes(ctx context.Context, categoryID, username string, awards []repository.VoteAward) error {
	if m.RecordRankedVotesError != nil {
		return m.RecordRankedVotesError
	}
	return m.FullRepository.RecordRankedVotes(ctx, categoryID, username, awards)
}

// ===== User Methods =====

func (m *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetUserByUsernameError != nil {
		return nil, m.GetUserByUsernameError
	}
	return m.FullRepository.GetUserByUsername(ctx, username)
}

func (m *Repository) CreateUser(ctx context.Context, user *models.User) error {
	if m.CreateUserError != nil {
		return m.CreateUserError
	}
	return m.FullRepository.CreateUser(ctx, user)
}

func (m *Repository) UpdateLastLogin(ctx context.Context, id, lastLogin string) error {
	if m.UpdateLastLoginError != nil {
		return m.UpdateLastLoginError
	}
	return m.FullRepository.UpdateLastLogin(ctx, id, lastLogin)
}

// ===== Proposal Methods =====

func (m *Repository) CreateProposal(ctx context.Context, proposal *models.CategoryProposal) error {
	if m.CreateProposalError != nil {
		return m.CreateProposalError
	}
	return m.FullRepository.CreateProposal(ctx, proposal)
}

func (m *Repository) ListProposals(ctx context.Context) ([]models.CategoryProposal, error) {
	if m.ListProposalsError != nil {
		return nil, m.ListProposalsError
	}
	return m.FullRepository.ListProposals(ctx)
}

func (m *Repository) Ping(ctx context.Context) error {
	if m.PingError != nil {
		return m.PingError
	}
	return m.FullRepository.Ping(ctx)
}
