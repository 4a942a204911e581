package services

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/galapremios/galavote/internal/errors"
	"github.com/galapremios/galavote/internal/logger"
	"github.com/galapremios/galavote/internal/models"
	"github.com/galapremios/galavote/internal/repository"
)

// VotingServiceRepository defines the repository methods needed by VotingService
type VotingServiceRepository interface {
	repository.VoteRepository
	GetCategory(ctx context.Context, id string) (*models.Category, error)
}

// VotingService records single-choice and ranked votes and keeps each
// candidate's tally in lockstep with the recorded vote events
type VotingService struct {
	log  logger.Logger
	repo VotingServiceRepository
}

// NewVotingService creates a new VotingService
func NewVotingService(log logger.Logger, repo VotingServiceRepository) *VotingService {
	return &VotingService{
		log:  log,
		repo: repo,
	}
}

// SingleVoteResult is the acknowledgment for a recorded single-choice vote
type SingleVoteResult struct {
	CategoryID  string `json:"categoriaId"`
	CandidateID string `json:"candidatoId"`
	Username    string `json:"usuario"`
}

// AwardedPoints reports the points one candidate received from a ranked vote
type AwardedPoints struct {
	CandidateID string `json:"candidatoId"`
	Points      int    `json:"puntos"`
}

// RankedVoteResult is the acknowledgment for a recorded ranked vote
type RankedVoteResult struct {
	CategoryID string          `json:"categoriaId"`
	Username   string          `json:"usuario"`
	Awards     []AwardedPoints `json:"puntos"`
}

// pointsForRank maps a 0-based rank index to its point weight.
// The fixed 3-2-1 table falls back to 1 for any rank past the third so an
// oversized candidate list cannot crash the recorder.
func pointsForRank(rank int) int {
	switch rank {
	case 0:
		return 3
	case 1:
		return 2
	default:
		return 1
	}
}

// SubmitSingleVote records one single-choice vote. A user may vote at most
// once across all candidates of a category; the duplicate check scans the
// category's recorded votes before any mutation.
//
// The read-check-write sequence is not atomic under concurrency: two
// simultaneous votes by the same user can both pass the check. The store's
// uniqueness constraint rejects the losing write, which surfaces as the
// same duplicate-vote error.
func (s *VotingService) SubmitSingleVote(ctx context.Context, categoryID, candidateID, username string) (*SingleVoteResult, error) {
	username = strings.TrimSpace(username)
	if categoryID == "" || candidateID == "" || username == "" {
		return nil, errors.InvalidInput("categoriaId, candidatoId and usuario are required")
	}

	cat, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundf("category %s not found", categoryID)
		}
		return nil, err
	}

	if findCandidate(cat.Candidates, candidateID) == nil {
		return nil, errors.NotFoundf("candidate %s not found in category %s", candidateID, categoryID)
	}

	voted, err := s.repo.HasSingleVote(ctx, categoryID, username)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, errors.DuplicateVotef("user %s already voted in category %s", username, categoryID)
	}

	if err := s.repo.RecordSingleVote(ctx, categoryID, candidateID, username); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.DuplicateVotef("user %s already voted in category %s", username, categoryID)
		}
		return nil, err
	}

	s.log.Info("Vote recorded", "category", categoryID, "candidate", candidateID, "user", username)

	return &SingleVoteResult{
		CategoryID:  categoryID,
		CandidateID: candidateID,
		Username:    username,
	}, nil
}

// SubmitRankedVote records one ranked vote: the candidate ids are taken in
// rank order and awarded 3, 2, 1 points (then 1 for every further slot).
// Ids that match no candidate in the category are skipped without error.
// All awards are persisted in a single write.
func (s *VotingService) SubmitRankedVote(ctx context.Context, categoryID string, candidateIDs []string, username string) (*RankedVoteResult, error) {
	username = strings.TrimSpace(username)
	if categoryID == "" || username == "" {
		return nil, errors.InvalidInput("categoriaId and usuario are required")
	}
	if len(candidateIDs) == 0 {
		return nil, errors.InvalidInput("candidatoIds must not be empty")
	}

	cat, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundf("category %s not found", categoryID)
		}
		return nil, err
	}

	voted, err := s.repo.HasRankedVote(ctx, categoryID, username)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, errors.DuplicateVotef("user %s already voted in category %s", username, categoryID)
	}

	var awards []repository.VoteAward
	var results []AwardedPoints
	for rank, candidateID := range candidateIDs {
		if findCandidate(cat.Candidates, candidateID) == nil {
			s.log.Warn("Skipping unknown candidate in ranked vote", "category", categoryID, "candidate", candidateID)
			continue
		}
		points := pointsForRank(rank)
		awards = append(awards, repository.VoteAward{
			CandidateID: candidateID,
			Points:      points,
			Position:    rank,
		})
		results = append(results, AwardedPoints{CandidateID: candidateID, Points: points})
	}

	if err := s.repo.RecordRankedVotes(ctx, categoryID, username, awards); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.DuplicateVotef("user %s already voted in category %s", username, categoryID)
		}
		return nil, err
	}

	s.log.Info("Ranked vote recorded", "category", categoryID, "user", username, "awards", len(awards))

	return &RankedVoteResult{
		CategoryID: categoryID,
		Username:   username,
		Awards:     results,
	}, nil
}

func findCandidate(candidates []models.Candidate, id string) *models.Candidate {
	for i := range candidates {
		if candidates[i].ID == id {
			return &candidates[i]
		}
	}
	return nil
}
