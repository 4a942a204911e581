package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/galapremios/galavote/internal/handlers"
	"github.com/galapremios/galavote/internal/logger"
	"github.com/galapremios/galavote/internal/models"
	"github.com/galapremios/galavote/internal/repository"
	"github.com/galapremios/galavote/internal/repository/mock"
	"github.com/galapremios/galavote/internal/services"
	"github.com/galapremios/galavote/internal/testutil"
)

const testBaseURL = "https://gala.example.test/votar"

// testEnv wires real services over an in-memory store, with the mock
// repository in between so tests can inject store failures
type testEnv struct {
	repo     *repository.Repository
	mockRepo *mock.Repository
	router   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repo := testutil.NewTestRepository(t)
	mockRepo := mock.NewRepository(repo)
	log := logger.New()

	h := handlers.NewForTesting(
		services.NewVotingService(log, mockRepo),
		services.NewCategoryService(log, mockRepo),
		services.NewCandidateService(log, mockRepo),
		services.NewUserService(log, mockRepo),
		services.NewLinkService(log, testBaseURL),
		mockRepo,
	)

	return &testEnv{
		repo:     repo,
		mockRepo: mockRepo,
		router:   h.Router(),
	}
}

// seedCategory creates a category with candidates whose ids equal their names
func (env *testEnv) seedCategory(t *testing.T, categoryID string, candidateIDs ...string) {
	t.Helper()
	ctx := context.Background()
	err := env.repo.CreateCategory(ctx, &models.Category{ID: categoryID, Title: "Category " + categoryID, DisplayOrder: 1})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	for _, id := range candidateIDs {
		err := env.repo.AddCandidate(ctx, &models.Candidate{ID: id, CategoryID: categoryID, Name: id, ProposedBy: "seed"})
		if err != nil {
			t.Fatalf("AddCandidate failed: %v", err)
		}
	}
}

func (env *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) postJSON(t *testing.T, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) postRaw(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(target); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assertStatus(t, rec, status)
	var apiErr handlers.APIError
	decodeBody(t, rec, &apiErr)
	if apiErr.Code != code {
		t.Errorf("expected error code %s, got %s (%s)", code, apiErr.Code, apiErr.Message)
	}
	if apiErr.Message == "" {
		t.Error("expected a human-readable message in the error body")
	}
}
