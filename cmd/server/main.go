package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/ecoestate/internal/crypto"
	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/internal/server/handlers"
	"github.com/iudanet/ecoestate/internal/server/middleware"
	"github.com/iudanet/ecoestate/internal/server/storage/sqlite"
	"github.com/iudanet/ecoestate/internal/validation"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "ecoestate.db", "Path to SQLite database")
	tokenTTL := flag.Duration("token-ttl", 15*time.Minute, "Access token lifetime")
	createAgent := flag.String("create-agent", "", "Create an agent account with this username and exit (password from ECOESTATE_AGENT_PASSWORD)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(logger, *addr, *dbPath, *tokenTTL, *createAgent); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath string, tokenTTL time.Duration, createAgent string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close() //nolint:errcheck

	// Режим provisioning: завести агента и выйти.
	// Регистрации через API нет, аккаунты создает оператор.
	if createAgent != "" {
		return provisionAgent(ctx, logger, store, createAgent)
	}

	jwtSecret := os.Getenv("ECOESTATE_JWT_SECRET")
	if jwtSecret == "" {
		return errors.New("ECOESTATE_JWT_SECRET environment variable is required")
	}

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(jwtSecret),
		AccessTokenTTL: tokenTTL,
	}

	healthHandler := handlers.NewHealthHandler(logger, Version)
	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	catalogHandler := handlers.NewCatalogHandler(logger, store)
	inquiryHandler := handlers.NewInquiryHandler(logger, store)
	projectsHandler := handlers.NewProjectsHandler(logger, store)

	authRequired := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/catalog/properties", catalogHandler.Properties)
	mux.HandleFunc("GET /api/v1/catalog/regions", catalogHandler.Regions)
	mux.HandleFunc("GET /api/v1/catalog/eco-features", catalogHandler.EcoFeatures)
	mux.HandleFunc("POST /api/v1/properties/{property}/inquiries", inquiryHandler.Create)
	mux.Handle("GET /api/v1/projects", authRequired(http.HandlerFunc(projectsHandler.List)))
	mux.Handle("PUT /api/v1/projects/{project}/milestones/{milestone}", authRequired(http.HandlerFunc(projectsHandler.UpdateMilestone)))
	mux.Handle("POST /api/v1/projects/{project}/notes", authRequired(http.HandlerFunc(projectsHandler.AddNote)))

	// Login лимитируется жестче остальных endpoint-ов
	rateLimits := []middleware.PathRateLimit{
		{Path: "/api/v1/auth/login", Rate: 10, Window: time.Minute},
	}

	var handler http.Handler = mux
	handler = middleware.RateLimitByPathMiddleware(rateLimits, 300, time.Minute, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.String("addr", addr),
			slog.String("version", Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// provisionAgent создает аккаунт агента с паролем из ECOESTATE_AGENT_PASSWORD
func provisionAgent(ctx context.Context, logger *slog.Logger, store *sqlite.Storage, username string) error {
	password := os.Getenv("ECOESTATE_AGENT_PASSWORD")
	if password == "" {
		return errors.New("ECOESTATE_AGENT_PASSWORD environment variable is required")
	}

	if err := validation.ValidateUsername(username); err != nil {
		return err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	agent := &models.Agent{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := store.CreateAgent(ctx, agent); err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}

	logger.Info("agent created",
		slog.String("username", username),
		slog.String("agent_id", agent.ID))
	fmt.Printf("Agent %q created, id: %s\n", username, agent.ID)

	return nil
}

func printVersion() {
	fmt.Printf("EcoEstate Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
