package handlers

import (
	"context"
	"net/http"
)

// Pinger reports store reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// handleHealth pings the store and reports status
func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		respondError(w, InternalError(err))
		return
	}
	respondOK(w, HealthResponse{Status: "ok"})
}

// handleVotingQR serves a PNG QR code pointing at the voting page
func (h *Handlers) handleVotingQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Link.VotingPageQR()
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
