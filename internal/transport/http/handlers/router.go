package handlers

import "net/http"

// RouterDeps bundles everything the route table needs.
type RouterDeps struct {
	Auth        *AuthHandler
	User        *UserHandler
	XP          *XPHandler
	Chat        *ChatHandler
	Leaderboard *LeaderboardHandler
	// AuthMW guards the bearer-token routes.
	AuthMW func(http.Handler) http.Handler
	// ClientDir is the static front-end root; empty disables static serving.
	ClientDir string
}

// NewRouter builds the full route table.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()
	auth := deps.AuthMW

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Public
	mux.HandleFunc("POST /api/register", deps.Auth.Register)
	mux.HandleFunc("POST /api/login", deps.Auth.Login)

	// Protected
	mux.Handle("POST /api/logout", auth(http.HandlerFunc(deps.Auth.Logout)))
	mux.Handle("GET /api/user", auth(http.HandlerFunc(deps.User.Profile)))
	mux.Handle("POST /api/avatar", auth(http.HandlerFunc(deps.User.UpdateAvatar)))
	mux.Handle("POST /api/xp/daily-login", auth(http.HandlerFunc(deps.XP.DailyLogin)))
	mux.Handle("POST /api/xp/quiz", auth(http.HandlerFunc(deps.XP.Quiz)))
	mux.Handle("GET /api/quiz/today", auth(http.HandlerFunc(deps.XP.QuizQuestion)))
	mux.Handle("GET /api/chat", auth(http.HandlerFunc(deps.Chat.List)))
	mux.Handle("POST /api/chat", auth(http.HandlerFunc(deps.Chat.Post)))
	mux.Handle("GET /api/leaderboard", auth(http.HandlerFunc(deps.Leaderboard.List)))

	// Everything else is the client shell.
	if deps.ClientDir != "" {
		mux.Handle("/", SPA(deps.ClientDir))
	}

	return mux
}
