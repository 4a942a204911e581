package handlers

// SingleVoteRequest represents a single-choice vote submission
type SingleVoteRequest struct {
	CategoryID  string `json:"categoriaId"`
	CandidateID string `json:"candidatoId"`
	Username    string `json:"usuario"`
}

// RankedVoteRequest represents a ranked (multi-point) vote submission
type RankedVoteRequest struct {
	CategoryID   string   `json:"categoriaId"`
	CandidateIDs []string `json:"candidatoIds"`
	Username     string   `json:"usuario"`
}

// ProposalRequest represents a category proposal from the frontend form
type ProposalRequest struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	Username    string `json:"usuario"`
}

// CandidateRequest represents a request to add a candidate to a category
type CandidateRequest struct {
	CategoryID  string `json:"categoriaId"`
	Name        string `json:"nombre"`
	Image       string `json:"imagen"`
	Description string `json:"descripcion"`
	Username    string `json:"usuario"`
}

// VotingCreateRequest represents a request to create a voting category
type VotingCreateRequest struct {
	Title        string `json:"titulo"`
	Description  string `json:"descripcion"`
	DisplayOrder int    `json:"orden"`
	Hidden       bool   `json:"oculta"`
	Multi        bool   `json:"multiple"`
	Official     bool   `json:"oficial"`
}

// LoginRequest represents a login-timestamp update
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
