package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/mkazantsev/authgate/internal/api/http/context"
	"github.com/mkazantsev/authgate/internal/api/http/router"
	httpServer "github.com/mkazantsev/authgate/internal/api/http/server"
	"github.com/mkazantsev/authgate/internal/config"
	"github.com/mkazantsev/authgate/internal/logger"
	"github.com/mkazantsev/authgate/internal/model"
	"github.com/mkazantsev/authgate/internal/password"
	"github.com/mkazantsev/authgate/internal/repository/bolt"
	"github.com/mkazantsev/authgate/internal/repository/postgres"
	"github.com/mkazantsev/authgate/internal/server"
	"github.com/mkazantsev/authgate/internal/service"
	"github.com/mkazantsev/authgate/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	userStore, closeStore, err := newUserStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize user store", "error", err, "backend", cfg.Store.Backend)
	}
	defer closeStore()

	hasher := password.NewBcryptHasher(cfg.Auth.HashCost)
	tokenManager := token.NewJWT(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userStore, hasher, tokenManager, logger.Component("auth"))
	identityService := service.NewIdentity(userStore, logger.Component("identity"))

	r := router.New(authService, identityService, tokenManager, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newUserStore opens the storage backend selected by configuration and
// returns it with its close function.
func newUserStore(ctx context.Context, cfg *config.Config) (model.UserStore, func(), error) {
	switch cfg.Store.Backend {
	case "postgres":
		db, err := postgres.NewConnection(ctx, cfg.Store.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return postgres.NewUserRepository(db), func() { db.Close() }, nil
	case "bolt":
		repo, err := bolt.Open(cfg.Store.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open bolt store: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
