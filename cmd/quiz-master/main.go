package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"

	"quiz-master/internal/config"
	"quiz-master/internal/opentdb"
	"quiz-master/internal/quiz"
	"quiz-master/internal/quiz/sqlite"
	"quiz-master/internal/session"
	"quiz-master/internal/webui"
)

func main() {
	configPath := flag.String("config", "", "optional config file (yaml, json or toml)")
	addr := flag.String("addr", "", "HTTP listen address, overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	store, err := sqlite.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer store.Close()

	trivia := opentdb.NewClient(&http.Client{Timeout: cfg.OpenTDB.Timeout}).WithBaseURL(cfg.OpenTDB.URL)
	service := quiz.NewService(store, cfg.Passwords(), cfg.AdminAccount(), trivia.FetchQuestions)
	if err := service.Bootstrap(context.Background()); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	app, err := webui.NewApp(service, session.NewStore(cfg.SessionTTL), log.Default())
	if err != nil {
		log.Fatalf("failed to build ui: %v", err)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           webui.NewRouter(app),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	log.Printf("quiz-master listening on %s (database %s)", cfg.Addr, cfg.DatabasePath)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
