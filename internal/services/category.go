package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/galapremios/galavote/internal/errors"
	"github.com/galapremios/galavote/internal/logger"
	"github.com/galapremios/galavote/internal/models"
	"github.com/galapremios/galavote/internal/repository"
)

// CategoryServiceRepository defines the repository methods needed by CategoryService
type CategoryServiceRepository interface {
	repository.CategoryRepository
	repository.ProposalRepository
}

// CategoryService handles voting-category listings and category proposals
type CategoryService struct {
	log  logger.Logger
	repo CategoryServiceRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(log logger.Logger, repo CategoryServiceRepository) *CategoryService {
	return &CategoryService{
		log:  log,
		repo: repo,
	}
}

// Voting holds the fields for creating a voting category
type Voting struct {
	Title        string
	Description  string
	DisplayOrder int
	Hidden       bool
	Multi        bool
	Official     bool
}

// ListVotings returns the visible voting categories with their candidates,
// ordered ascending by display order. Hidden categories are filtered out of
// the listing but stay reachable by id.
func (s *CategoryService) ListVotings(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx, false)
}

// CreateVoting creates a new voting category
func (s *CategoryService) CreateVoting(ctx context.Context, voting Voting) (*models.Category, error) {
	voting.Title = strings.TrimSpace(voting.Title)
	if voting.Title == "" {
		return nil, errors.InvalidInput("titulo is required")
	}

	cat := &models.Category{
		ID:           uuid.NewString(),
		Title:        voting.Title,
		Description:  strings.TrimSpace(voting.Description),
		DisplayOrder: voting.DisplayOrder,
		Hidden:       voting.Hidden,
		Multi:        voting.Multi,
		Official:     voting.Official,
		Candidates:   []models.Candidate{},
	}

	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}

	s.log.Info("Voting category created", "id", cat.ID, "title", cat.Title)
	return cat, nil
}

// SaveProposal stores a category suggested from the frontend form
func (s *CategoryService) SaveProposal(ctx context.Context, title, description, username string) (*models.CategoryProposal, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	username = strings.TrimSpace(username)
	if title == "" || description == "" || username == "" {
		return nil, errors.InvalidInput("titulo, descripcion and usuario are required")
	}

	proposal := &models.CategoryProposal{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Username:    username,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.repo.CreateProposal(ctx, proposal); err != nil {
		return nil, err
	}

	s.log.Info("Category proposal saved", "id", proposal.ID, "title", proposal.Title, "user", proposal.Username)
	return proposal, nil
}

// ListProposals returns the category proposals, newest first
func (s *CategoryService) ListProposals(ctx context.Context) ([]models.CategoryProposal, error) {
	return s.repo.ListProposals(ctx)
}
