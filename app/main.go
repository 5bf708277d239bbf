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

	"github.com/lysyi3m/post-comb/app/api"
	"github.com/lysyi3m/post-comb/app/cfg"
	"github.com/lysyi3m/post-comb/app/config"
	"github.com/lysyi3m/post-comb/app/database"
	"github.com/lysyi3m/post-comb/app/post"
	"github.com/lysyi3m/post-comb/app/render"
	"github.com/lysyi3m/post-comb/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	setupLogging(appCfg.Debug)

	if err := run(appCfg); err != nil {
		slog.Error("Post Comb failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func run(appCfg *cfg.Cfg) error {
	slog.Info("Starting Post Comb", "version", appCfg.Version)

	rules, err := config.NewLoader(appCfg.RulesFile).Load()
	if err != nil {
		return fmt.Errorf("failed to load selection rules: %w", err)
	}

	jsonWriter := render.NewJSONWriter()
	markdownWriter := render.NewMarkdownWriter(rules.Document)

	selectTask := tasks.NewSelectPostsTask(
		appCfg.InputFile, appCfg.JSONOutput, appCfg.MarkdownOutput,
		post.NewLoader(), post.NewFilterer(rules), jsonWriter, markdownWriter)

	ctx := context.Background()
	if err := tasks.Run(ctx, selectTask); err != nil {
		return err
	}

	var runRepo database.RunRepository
	if appCfg.DBPath != "" {
		db, err := database.NewConnection(appCfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer db.Close()

		repo := database.NewSelectionRepository(db)
		if err := tasks.Run(ctx, tasks.NewArchivePostsTask(selectTask.Result, repo)); err != nil {
			return err
		}
		runRepo = repo
	}

	if appCfg.ServeAddr == "" {
		return nil
	}

	handler := api.NewHandler(selectTask.Result, jsonWriter, markdownWriter, runRepo, appCfg.Version)
	return serve(appCfg.ServeAddr, api.NewServer(handler))
}

func serve(addr string, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting preview server", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	slog.Info("Preview server stopped")
	return nil
}
