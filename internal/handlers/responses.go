package handlers

import "github.com/galapremios/galavote/internal/models"

// AckResponse is a success acknowledgment with a message
type AckResponse struct {
	Message string `json:"message"`
}

// SingleVoteResponse acknowledges a recorded single-choice vote
type SingleVoteResponse struct {
	Message     string `json:"message"`
	CategoryID  string `json:"categoriaId"`
	CandidateID string `json:"candidatoId"`
	Username    string `json:"usuario"`
}

// RankedVoteResponse acknowledges a recorded ranked vote with the points
// awarded per candidate
type RankedVoteResponse struct {
	Message    string                   `json:"message"`
	CategoryID string                   `json:"categoriaId"`
	Username   string                   `json:"usuario"`
	Awards     []RankedVoteAwardedEntry `json:"puntos"`
}

// RankedVoteAwardedEntry is one (candidate, points) pair of a ranked vote
type RankedVoteAwardedEntry struct {
	CandidateID string `json:"candidatoId"`
	Points      int    `json:"puntos"`
}

// ProposalResponse returns a created category proposal
type ProposalResponse struct {
	Message  string                   `json:"message"`
	Proposal *models.CategoryProposal `json:"categoria"`
}

// CandidateResponse returns a created candidate
type CandidateResponse struct {
	Message   string            `json:"message"`
	Candidate *models.Candidate `json:"candidato"`
}

// VotingResponse returns a created voting category
type VotingResponse struct {
	Message string           `json:"message"`
	Voting  *models.Category `json:"votacion"`
}

// LoginResponse acknowledges a login-timestamp update
type LoginResponse struct {
	Message   string `json:"message"`
	Username  string `json:"username"`
	LastLogin string `json:"lastLogin"`
}

// HealthResponse reports store reachability
type HealthResponse struct {
	Status string `json:"status"`
}
