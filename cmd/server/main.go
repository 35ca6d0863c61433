package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vedran77/levellore/internal/config"
	"github.com/vedran77/levellore/internal/database"
	"github.com/vedran77/levellore/internal/service"
	"github.com/vedran77/levellore/internal/session"
	"github.com/vedran77/levellore/internal/store"
	filestore "github.com/vedran77/levellore/internal/store/file"
	postgresstore "github.com/vedran77/levellore/internal/store/postgres"
	"github.com/vedran77/levellore/internal/transport/http/handlers"
	"github.com/vedran77/levellore/internal/transport/http/middleware"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg := config.Load()

	// Store
	var st store.Store
	switch cfg.StoreBackend {
	case "postgres":
		pool, err := database.Connect(cfg)
		if err != nil {
			slog.Error("connecting to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		st = postgresstore.New(pool)
		slog.Info("using postgres store", "host", cfg.DBHost, "db", cfg.DBName)
	default:
		fs, err := filestore.Open(cfg.DataFile)
		if err != nil {
			slog.Error("opening data file", "path", cfg.DataFile, "error", err)
			os.Exit(1)
		}
		st = fs
		slog.Info("using file store", "path", cfg.DataFile)
	}

	// Sessions live for the process only; restarting invalidates all tokens.
	sessions := session.NewRegistry()

	// Services
	accountService := service.NewAccountService(st, sessions)
	xpService := service.NewXPService(st)
	chatService := service.NewChatService(st)
	quizService := service.NewQuizService()
	leaderboardService := service.NewLeaderboardService(st)

	// Routes
	mux := handlers.NewRouter(handlers.RouterDeps{
		Auth:        handlers.NewAuthHandler(accountService),
		User:        handlers.NewUserHandler(accountService),
		XP:          handlers.NewXPHandler(xpService, quizService),
		Chat:        handlers.NewChatHandler(chatService),
		Leaderboard: handlers.NewLeaderboardHandler(leaderboardService),
		AuthMW:      middleware.Auth(sessions),
		ClientDir:   cfg.ClientDir,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: middleware.CORS(middleware.BodyLimit(mux)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
