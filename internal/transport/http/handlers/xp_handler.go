package handlers

import (
	"errors"
	"net/http"

	"github.com/vedran77/levellore/internal/service"
	"github.com/vedran77/levellore/internal/transport/http/middleware"
)

type XPHandler struct {
	xpService   *service.XPService
	quizService *service.QuizService
}

func NewXPHandler(xpService *service.XPService, quizService *service.QuizService) *XPHandler {
	return &XPHandler{
		xpService:   xpService,
		quizService: quizService,
	}
}

// DailyLogin claims the daily login award. The response carries the XP total
// and level either way; whether the grant happened today or earlier is not
// part of this endpoint's contract.
func (h *XPHandler) DailyLogin(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	res, err := h.xpService.ClaimDailyLogin(r.Context(), username)
	if err != nil {
		h.writeClaimError(w, "daily login award", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"xp": res.XP, "level": res.Level})
}

// Quiz claims the daily quiz award and reports whether this call granted it.
func (h *XPHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	res, err := h.xpService.ClaimDailyQuiz(r.Context(), username)
	if err != nil {
		h.writeClaimError(w, "quiz award", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"xp":      res.XP,
		"level":   res.Level,
		"awarded": res.Awarded,
	})
}

// QuizQuestion serves today's trivia question.
func (h *XPHandler) QuizQuestion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.quizService.QuestionOfDay())
}

func (h *XPHandler) writeClaimError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, service.ErrUnknownUser) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeServerError(w, op, err)
}
