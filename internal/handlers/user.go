package handlers

import (
	"net/http"
)

// handleUpdateLastLogin verifies credentials and stamps the last login
func (h *Handlers) handleUpdateLastLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.User.UpdateLastLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, LoginResponse{
		Message:   "Login actualizado correctamente",
		Username:  user.Username,
		LastLogin: user.LastLogin,
	})
}
