package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"portfolio-api/api"
	"portfolio-api/internal/config"
	mongostore "portfolio-api/internal/store/mongo"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	// .env is a convenience for local development; absence is fine.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "err", err)
		os.Exit(1)
	}

	logger.Info("starting portfolio api", "version", version, "buildTime", buildTime)

	ctx := context.Background()

	deps := &api.Deps{Cfg: cfg, Version: version, BuildTime: buildTime}

	// The server still boots without a reachable database so the /test probe
	// can report what is wrong; content routes answer 503 until then.
	var st *mongostore.Store
	if cfg.DatabaseURL != "" && cfg.DatabaseName != "" {
		st, err = mongostore.New(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			logger.Error("store unavailable", "err", err)
		} else {
			deps.Skills = st
			deps.Experiences = st
			deps.Blogs = st
			deps.Diag = st
			logger.Info("connected to database", "name", cfg.DatabaseName)
		}
	} else {
		logger.Warn("DATABASE_URL or DATABASE_NAME not set; content routes disabled")
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.SetupRoutes(deps),
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}

	if st != nil {
		if err := st.Close(shutdownCtx); err != nil {
			logger.Error("close store", "err", err)
		}
	}

	logger.Info("server exited")
}
