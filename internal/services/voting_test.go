package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/galapremios/galavote/internal/errors"
	"github.com/galapremios/galavote/internal/logger"
	"github.com/galapremios/galavote/internal/models"
	"github.com/galapremios/galavote/internal/repository"
	"github.com/galapremios/galavote/internal/repository/mock"
	"github.com/galapremios/galavote/internal/services"
	"github.com/galapremios/galavote/internal/testutil"
)

// setupVotingService creates a VotingService with a fresh in-memory store
func setupVotingService(t *testing.T) (*services.VotingService, *repository.Repository) {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	log := logger.New()
	votingSvc := services.NewVotingService(log, repo)
	return votingSvc, repo
}

// seedCategory creates a category with the given candidate ids (id == name)
func seedCategory(t *testing.T, repo *repository.Repository, categoryID string, candidateIDs ...string) {
	t.Helper()
	ctx := context.Background()
	err := repo.CreateCategory(ctx, &models.Category{ID: categoryID, Title: "Category " + categoryID, DisplayOrder: 1})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	for _, id := range candidateIDs {
		err := repo.AddCandidate(ctx, &models.Candidate{ID: id, CategoryID: categoryID, Name: id, ProposedBy: "seed"})
		if err != nil {
			t.Fatalf("AddCandidate failed: %v", err)
		}
	}
}

func candidateTotals(t *testing.T, repo *repository.Repository, categoryID string) map[string]int {
	t.Helper()
	cat, err := repo.GetCategory(context.Background(), categoryID)
	if err != nil {
		t.Fatalf("GetCategory failed: %v", err)
	}
	totals := make(map[string]int)
	for _, cand := range cat.Candidates {
		totals[cand.ID] = cand.TotalVotes
	}
	return totals
}

func assertKind(t *testing.T, err error, kind errors.Kind) {
	t.Helper()
	var appErr *errors.Error
	if !stderrors.As(err, &appErr) {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	if appErr.Kind != kind {
		t.Fatalf("expected error kind %d, got %d (%s)", kind, appErr.Kind, appErr.Message)
	}
}

// ==================== Single-choice Tests ====================

func TestSubmitSingleVote_Success(t *testing.T) {
	votingSvc, repo := setupVotingService(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A", "B")

	result, err := votingSvc.SubmitSingleVote(ctx, "cat1", "A", "alice")
	if err != nil {
		t.Fatalf("SubmitSingleVote failed: %v", err)
	}

	if result.CategoryID != "cat1" || result.CandidateID != "A" || result.Username != "alice" {
		t.Errorf("unexpected ack %+v", result)
	}

	totals := candidateTotals(t, repo, "cat1")
	if totals["A"] != 1 || totals["B"] != 0 {
		t.Errorf("unexpected totals %v", totals)
	}
}

func TestSubmitSingleVote_TrimsUsername(t *testing.T) {
	votingSvc, repo := setupVotingService(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A")

	result, err := votingSvc.SubmitSingleVote(ctx, "cat1", "A", "  alice  ")
	if err != nil {
		t.Fatalf("SubmitSingleVote failed: %v", err)
	}
	if result.Username != "alice" {
		t.Errorf("expected trimmed username, got %q", result.Username)
	}
}

func TestSubmitSingleVote_MissingFields(t *testing.T) {
	votingSvc, _ := setupVotingService(t)
	ctx := context.Background()

	_, err := votingSvc.SubmitSingleVote(ctx, "", "A", "alice")
	assertKind(t, err, errors.ErrInvalidInput)

	_, err = votingSvc.SubmitSingleVote(ctx, "cat1", "", "alice")
	assertKind(t, err, errors.ErrInvalidInput)

	_, err = votingSvc.SubmitSingleVote(ctx, "cat1", "A", "   ")
	assertKind(t, err, errors.ErrInvalidInput)
}

func TestSubmitSingleVote_UnknownCategory(t *testing.T) {
	votingSvc, repo := setupVotingService(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A")

	_, err := votingSvc.SubmitSingleVote(ctx, "nope", "A", "alice")
	assertKind(t, err, errors.ErrNotFound)

	// No mutation may have happened
	totals := candidateTotals(t, repo, "cat1")
	if totals["A"] != 0 {
		t.Errorf("expected no votes recorded, got %v", totals)
	}
}

func TestSubmitSingleVote_UnknownCandidate(t *testing.T) {
	votingSvc, repo := setupVotingService(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A")

	_, err := votingSvc.SubmitSingleVote(ctx, "cat1", "Z", "alice")
	assertKind(t, err, errors.ErrNotFound)
}

func TestSubmitSingleVote_DuplicateAcrossCandidates(t *testing.T) {
	votingSvc, repo := setupVotingService(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A", "B")

	if _, err := votingSvc.SubmitSingleVote(ctx, "cat1", "A", "alice"); err != nil {
		t.Fatalf("first vote failed: %v", err)
	}

	// Voting again for a DIFFERENT candidate in the same category is
	// still a duplicate: the one-vote-per-user invariant spans all
	// candidates of the category
	_, err := votingSvc.SubmitSingleVote(ctx, "cat1", "B", "alice")
	assertKind(t, err, errors.ErrDuplicateVote)

	totals := candidateTotals(t, repo, "cat1")
	if totals["A"] != 1 || totals["B"] != 0 {
		t.Errorf("totals changed by rejected vote: %v", totals)
	}
}

func TestSubmitSingleVote_DifferentUsersAllowed(t *testing.T) {
	votingSvc, repo := setupVotingService(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A")

	for _, user := range []string{"alice", "bob", "carol"} {
		if _, err := votingSvc.SubmitSingleVote(ctx, "cat1", "A", user); err != nil {
			t.Fatalf("vote by %s failed: %v", user, err)
		}
	}

	totals := candidateTotals(t, repo, "cat1")
	if totals["A"] != 3 {
		t.Errorf("expected total 3, got %d", totals["A"])
	}
}

func TestSubmitSingleVote_RaceLoserGetsDuplicateVote(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A")

	// Simulate the losing side of the check-then-act race: the
	// duplicate scan passes but the store insert hits the uniqueness
	// constraint
	mockRepo := mock.NewRepository(repo)
	mockRepo.RecordSingleVoteError = repository.ErrDuplicate
	votingSvc := services.NewVotingService(logger.New(), mockRepo)

	_, err := votingSvc.SubmitSingleVote(ctx, "cat1", "A", "alice")
	assertKind(t, err, errors.ErrDuplicateVote)
}

func TestSubmitSingleVote_StoreFailurePassedThrough(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A")

	mockRepo := mock.NewRepository(repo)
	mockRepo.HasSingleVoteError = stderrors.New("disk I/O error")
	votingSvc := services.NewVotingService(logger.New(), mockRepo)

	_, err := votingSvc.SubmitSingleVote(ctx, "cat1", "A", "alice")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		t.Errorf("store failures should not be classified, got kind %d", appErr.Kind)
	}
}

// ==================== Ranked Tests ====================

func TestSubmitRankedVote_PointTable(t *testing.T) {
	votingSvc, repo := setupVotingService(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A", "B", "C", "D", "E")

	result, err := votingSvc.SubmitRankedVote(ctx, "cat1", []string{"A", "B", "C", "D", "E"}, "alice")
	if err != nil {
		t.Fatalf("SubmitRankedVote failed: %v", err)
	}

	expected := []int{3, 2, 1, 1, 1}
	if len(result.Awards) != len(expected) {
		t.Fatalf("expected %d awards, got %d", len(expected), len(result.Awards))
	}
	for i, award := range result.Awards {
		if award.Points != expected[i] {
			t.Errorf("rank %d: expected %d points, got %d", i, expected[i], award.Points)
		}
	}
}

func TestSubmitRankedVote_Scenario(t *testing.T) {
	// cat1 has candidates A, B, C with totals 0; alice votes [B, A, C]
	votingSvc, repo := setupVotingService(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A", "B", "C")

	result, err := votingSvc.SubmitRankedVote(ctx, "cat1", []string{"B", "A", "C"}, "alice")
	if err != nil {
		t.Fatalf("SubmitRankedVote failed: %v", err)
	}
	if len(result.Awards) != 3 {
		t.Fatalf("expected 3 awards, got %d", len(result.Awards))
	}

	totals := candidateTotals(t, repo, "cat1")
	if totals["B"] != 3 || totals["A"] != 2 || totals["C"] != 1 {
		t.Errorf("expected B=3 A=2 C=1, got %v", totals)
	}

	// Retry must be rejected and leave the totals unchanged
	_, err = votingSvc.SubmitRankedVote(ctx, "cat1", []string{"A", "B", "C"}, "alice")
	assertKind(t, err, errors.ErrDuplicateVote)

	totals = candidateTotals(t, repo, "cat1")
	if totals["B"] != 3 || totals["A"] != 2 || totals["C"] != 1 {
		t.Errorf("totals changed by rejected retry: %v", totals)
	}
}

func TestSubmitRankedVote_EmptyCandidateList(t *testing.T) {
	votingSvc, repo := setupVotingService(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A")

	_, err := votingSvc.SubmitRankedVote(ctx, "cat1", nil, "alice")
	assertKind(t, err, errors.ErrInvalidInput)

	_, err = votingSvc.SubmitRankedVote(ctx, "cat1", []string{}, "alice")
	assertKind(t, err, errors.ErrInvalidInput)
}

func TestSubmitRankedVote_UnknownCategory(t *testing.T) {
	votingSvc, _ := setupVotingService(t)

	_, err := votingSvc.SubmitRankedVote(context.Background(), "nope", []string{"A"}, "alice")
	assertKind(t, err, errors.ErrNotFound)
}

func TestSubmitRankedVote_SkipsUnknownCandidates(t *testing.T) {
	votingSvc, repo := setupVotingService(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A", "B")

	// "ghost" matches nothing and is skipped without error; it still
	// consumed rank 1, so B gets the rank-2 weight
	result, err := votingSvc.SubmitRankedVote(ctx, "cat1", []string{"A", "ghost", "B"}, "alice")
	if err != nil {
		t.Fatalf("SubmitRankedVote failed: %v", err)
	}
	if len(result.Awards) != 2 {
		t.Fatalf("expected 2 awards, got %d", len(result.Awards))
	}

	totals := candidateTotals(t, repo, "cat1")
	if totals["A"] != 3 || totals["B"] != 1 {
		t.Errorf("expected A=3 B=1, got %v", totals)
	}
}

func TestSubmitRankedVote_SingleVoterDoesNotBlockRanked(t *testing.T) {
	// The single-choice and ranked duplicate sets are separate
	votingSvc, repo := setupVotingService(t)
	ctx := context.Background()
	seedCategory(t, repo, "cat1", "A", "B")

	if _, err := votingSvc.SubmitSingleVote(ctx, "cat1", "A", "alice"); err != nil {
		t.Fatalf("single vote failed: %v", err)
	}
	if _, err := votingSvc.SubmitRankedVote(ctx, "cat1", []string{"B"}, "alice"); err != nil {
		t.Fatalf("ranked vote after single vote failed: %v", err)
	}

	totals := candidateTotals(t, repo, "cat1")
	if totals["A"] != 1 || totals["B"] != 3 {
		t.Errorf("expected A=1 B=3, got %v", totals)
	}
}
