package handlers

import (
	"net/http"

	"github.com/vedran77/levellore/internal/service"
)

type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.Top(r.Context())
	if err != nil {
		writeServerError(w, "leaderboard", err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
