package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/ecoestate/internal/client/api"
	"github.com/iudanet/ecoestate/internal/client/auth"
	"github.com/iudanet/ecoestate/internal/client/cache"
	"github.com/iudanet/ecoestate/internal/client/catalog"
	"github.com/iudanet/ecoestate/internal/client/cli"
	"github.com/iudanet/ecoestate/internal/client/connectivity"
	"github.com/iudanet/ecoestate/internal/client/iocli"
	"github.com/iudanet/ecoestate/internal/client/queue"
	"github.com/iudanet/ecoestate/internal/client/storage"
	"github.com/iudanet/ecoestate/internal/client/storage/boltdb"
	syncengine "github.com/iudanet/ecoestate/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "ecoestate-client.db", "Path to local cache database")
	password := flag.String("password", "", "Agent password (not recommended)")
	passwordFile := flag.String("password-file", "", "Path to file containing agent password")
	offline := flag.Bool("offline", false, "Do not probe the server, work from cache only")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Ctrl+C в долгоживущих командах (sync --watch) завершает ctx
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	apiClient := api.NewClient(*serverURL)

	// Локальное хранилище. Отказ не фатален: работаем network-only.
	var (
		cacheManager *cache.Manager
		actionQueue  *queue.Queue
		engine       *syncengine.Engine
		authStore    storage.AuthStorage = unavailableAuthStore{}
	)
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: local storage unavailable (%v)\n", err)
		fmt.Fprintln(os.Stderr, "Running in network-only mode: offline reads and queued writes are disabled.")
	} else {
		defer func() {
			if cerr := boltStorage.Close(); cerr != nil {
				logger.Error("failed to close database", "error", cerr)
			}
		}()
		authStore = boltStorage
	}

	// Один синхронный probe решает стартовое состояние
	online := false
	if !*offline {
		online = apiClient.Health(ctx) == nil
	}
	monitor := connectivity.NewMonitor(online, func(ctx context.Context) bool {
		return apiClient.Health(ctx) == nil
	}, logger)

	if boltStorage != nil {
		cacheManager = cache.NewManager(boltStorage, logger)
		actionQueue = queue.New(boltStorage, logger)
		engine = syncengine.NewEngine(
			actionQueue, apiClient, monitor,
			syncengine.DefaultBackoffPolicy(), nil, logger,
		)
	}

	session := auth.NewService(apiClient, authStore)
	// Восстанавливаем токен сохраненной сессии, если она еще жива
	if _, err := session.Restore(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		logger.Warn("failed to restore session", "error", err)
	}

	catalogService := catalog.NewService(
		apiClient, cacheManager, actionQueue, engine, monitor, logger,
	)

	app := cli.New(iocli.NewStdio(), session, catalogService, monitor, cli.Passwords{
		FromFile: *passwordFile,
		FromArgs: *password,
	})

	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// unavailableAuthStore подставляется вместо BoltDB, когда локальное
// хранилище не открылось
type unavailableAuthStore struct{}

func (unavailableAuthStore) SaveAuth(ctx context.Context, data *storage.AuthData) error {
	return storage.ErrStorageUnavailable
}

func (unavailableAuthStore) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	return nil, storage.ErrAuthNotFound
}

func (unavailableAuthStore) DeleteAuth(ctx context.Context) error {
	return nil
}

func printVersion() {
	fmt.Printf("EcoEstate Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
