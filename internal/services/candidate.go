package services

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"

	"github.com/galapremios/galavote/internal/errors"
	"github.com/galapremios/galavote/internal/logger"
	"github.com/galapremios/galavote/internal/models"
	"github.com/galapremios/galavote/internal/repository"
)

// CandidateService handles candidate proposals and listings
type CandidateService struct {
	log  logger.Logger
	repo repository.CandidateRepository
}

// NewCandidateService creates a new CandidateService
func NewCandidateService(log logger.Logger, repo repository.CandidateRepository) *CandidateService {
	return &CandidateService{
		log:  log,
		repo: repo,
	}
}

// CandidateProposal holds the fields for adding a candidate to a category
type CandidateProposal struct {
	CategoryID  string
	Name        string
	Image       string
	Description string
	Username    string
}

// AddCandidate appends a proposed candidate to a voting category
func (s *CandidateService) AddCandidate(ctx context.Context, proposal CandidateProposal) (*models.Candidate, error) {
	proposal.Name = strings.TrimSpace(proposal.Name)
	proposal.Username = strings.TrimSpace(proposal.Username)
	if proposal.CategoryID == "" || proposal.Name == "" || proposal.Username == "" {
		return nil, errors.InvalidInput("categoriaId, nombre and usuario are required")
	}

	cand := &models.Candidate{
		ID:          uuid.NewString(),
		CategoryID:  proposal.CategoryID,
		Name:        proposal.Name,
		Image:       proposal.Image,
		Description: strings.TrimSpace(proposal.Description),
		ProposedBy:  proposal.Username,
	}

	if err := s.repo.AddCandidate(ctx, cand); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundf("category %s not found", proposal.CategoryID)
		}
		return nil, err
	}

	s.log.Info("Candidate added", "id", cand.ID, "category", cand.CategoryID, "name", cand.Name)
	return cand, nil
}

// GetCategoryCandidates returns the candidates of one category, including
// their voter sets and ranked-vote entries. An existing category with no
// candidates yields an empty list, not an error.
func (s *CandidateService) GetCategoryCandidates(ctx context.Context, categoryID string) ([]models.Candidate, error) {
	candidates, err := s.repo.ListCategoryCandidates(ctx, categoryID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundf("category %s not found", categoryID)
		}
		return nil, err
	}
	if candidates == nil {
		candidates = []models.Candidate{}
	}
	return candidates, nil
}

// ListAllCandidates returns every candidate across all categories in name order
func (s *CandidateService) ListAllCandidates(ctx context.Context) ([]models.Candidate, error) {
	return s.repo.ListAllCandidates(ctx)
}
