package models

// Category represents a voting category: a poll grouping candidates.
// Wire names are the Spanish field names the frontend expects.
type Category struct {
	ID           string      `json:"id"`
	Title        string      `json:"titulo"`
	Description  string      `json:"descripcion"`
	DisplayOrder int         `json:"orden"`
	Hidden       bool        `json:"oculta"`
	Multi        bool        `json:"multiple"`
	Official     bool        `json:"oficial"`
	Candidates   []Candidate `json:"candidatos"`
}

// Candidate represents an option within a category that can receive votes
type Candidate struct {
	ID          string       `json:"id"`
	CategoryID  string       `json:"categoriaId"`
	Name        string       `json:"nombre"`
	Image       string       `json:"imagen,omitempty"`
	Description string       `json:"descripcion"`
	ProposedBy  string       `json:"usuario"`
	TotalVotes  int          `json:"totalVotos"`
	Voters      []string     `json:"votos,omitempty"`
	RankedVotes []RankedVote `json:"votosMulti,omitempty"`
}

// RankedVote is one (username, points) entry on a candidate
type RankedVote struct {
	Username string `json:"usuario"`
	Points   int    `json:"puntos"`
}

// User represents a login account. The password is never serialized.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	LastLogin string `json:"lastLogin"`
}

// CategoryProposal is a category suggested from the frontend form,
// kept separate from the voting categories until promoted by an admin
type CategoryProposal struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	Username    string `json:"usuario"`
	CreatedAt   string `json:"fechaCreacion"`
}
