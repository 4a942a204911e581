package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/galapremios/galavote/internal/models"
	"github.com/galapremios/galavote/internal/services"
)

// handleGetVotings lists visible voting categories ordered by display order
func (h *Handlers) handleGetVotings(w http.ResponseWriter, r *http.Request) {
	votings, err := h.Category.ListVotings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if votings == nil {
		votings = []models.Category{}
	}
	respondOK(w, votings)
}

// handleGetCategoryCandidates returns the candidates of one category
func (h *Handlers) handleGetCategoryCandidates(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		respondError(w, BadRequest("Missing category id"))
		return
	}

	candidates, err := h.Candidate.GetCategoryCandidates(r.Context(), categoryID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, candidates)
}

// handleGetAllCandidates lists every candidate in name order
func (h *Handlers) handleGetAllCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.Candidate.ListAllCandidates(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if candidates == nil {
		candidates = []models.Candidate{}
	}
	respondOK(w, candidates)
}

// handleGetProposals lists category proposals, newest first
func (h *Handlers) handleGetProposals(w http.ResponseWriter, r *http.Request) {
	proposals, err := h.Category.ListProposals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if proposals == nil {
		proposals = []models.CategoryProposal{}
	}
	respondOK(w, proposals)
}

// handleSaveProposal stores a category proposal from the frontend form
func (h *Handlers) handleSaveProposal(w http.ResponseWriter, r *http.Request) {
	var req ProposalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	proposal, err := h.Category.SaveProposal(r.Context(), req.Title, req.Description, req.Username)
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, ProposalResponse{
		Message:  "Categoría guardada correctamente",
		Proposal: proposal,
	})
}

// handleAddCandidate appends a candidate to a voting category
func (h *Handlers) handleAddCandidate(w http.ResponseWriter, r *http.Request) {
	var req CandidateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	cand, err := h.Candidate.AddCandidate(r.Context(), services.CandidateProposal{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Username:    req.Username,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, CandidateResponse{
		Message:   "Candidato guardado correctamente",
		Candidate: cand,
	})
}

// handleCreateVoting creates a voting category
func (h *Handlers) handleCreateVoting(w http.ResponseWriter, r *http.Request) {
	var req VotingCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	voting, err := h.Category.CreateVoting(r.Context(), services.Voting{
		Title:        req.Title,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		Hidden:       req.Hidden,
		Multi:        req.Multi,
		Official:     req.Official,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, VotingResponse{
		Message: "Votación creada correctamente",
		Voting:  voting,
	})
}
