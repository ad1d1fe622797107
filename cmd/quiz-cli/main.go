package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"quiz-master/internal/cli"
	"quiz-master/internal/config"
	"quiz-master/internal/quiz"
	"quiz-master/internal/quiz/sqlite"
)

func main() {
	configPath := flag.String("config", "", "optional config file (yaml, json or toml)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := sqlite.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	service := quiz.NewService(store, cfg.Passwords(), cfg.AdminAccount(), nil)
	if err := service.Bootstrap(context.Background()); err != nil {
		return err
	}

	return cli.Run(context.Background(), service, os.Stdin, os.Stdout)
}
