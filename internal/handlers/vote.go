package handlers

import (
	"net/http"
)

// handleSingleVote records a single-choice vote
func (h *Handlers) handleSingleVote(w http.ResponseWriter, r *http.Request) {
	var req SingleVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Voting.SubmitSingleVote(r.Context(), req.CategoryID, req.CandidateID, req.Username)
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, SingleVoteResponse{
		Message:     "Voto registrado correctamente",
		CategoryID:  result.CategoryID,
		CandidateID: result.CandidateID,
		Username:    result.Username,
	})
}

// handleRankedVote records a ranked (multi-point) vote
func (h *Handlers) handleRankedVote(w http.ResponseWriter, r *http.Request) {
	var req RankedVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Voting.SubmitRankedVote(r.Context(), req.CategoryID, req.CandidateIDs, req.Username)
	if err != nil {
		respondError(w, err)
		return
	}

	awards := make([]RankedVoteAwardedEntry, 0, len(result.Awards))
	for _, award := range result.Awards {
		awards = append(awards, RankedVoteAwardedEntry{
			CandidateID: award.CandidateID,
			Points:      award.Points,
		})
	}

	respondOK(w, RankedVoteResponse{
		Message:    "Voto puntuado registrado correctamente",
		CategoryID: result.CategoryID,
		Username:   result.Username,
		Awards:     awards,
	})
}
