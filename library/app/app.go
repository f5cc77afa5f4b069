package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/biblioteca/library/config"
	"github.com/Astemirdum/biblioteca/library/internal/handler"
	"github.com/Astemirdum/biblioteca/library/internal/repository"
	"github.com/Astemirdum/biblioteca/library/internal/server"
	"github.com/Astemirdum/biblioteca/library/internal/service"
	"github.com/Astemirdum/biblioteca/library/migrations"
	"github.com/Astemirdum/biblioteca/pkg/auth"
	"github.com/Astemirdum/biblioteca/pkg/logger"
	"github.com/Astemirdum/biblioteca/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")
	ctx := context.Background()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %w", err)
	}
	svc := service.NewService(repo, log)

	if err = bootstrap(ctx, cfg, svc, log); err != nil {
		return err
	}

	h := handler.New(svc, auth.NewSessions(cfg.Session), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// bootstrap seeds the catalog and the first admin account.
func bootstrap(ctx context.Context, cfg *config.Config, svc *service.Service, log *zap.Logger) error {
	if cfg.Seed.Path != "" {
		f, err := os.Open(cfg.Seed.Path)
		switch {
		case os.IsNotExist(err):
			log.Warn("seed file not found", zap.String("path", cfg.Seed.Path))
		case err != nil:
			return fmt.Errorf("open seed %w", err)
		default:
			_, err = svc.Seed(ctx, f)
			_ = f.Close()
			if err != nil {
				return fmt.Errorf("seed %w", err)
			}
		}
	}

	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		if _, err := svc.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			return fmt.Errorf("admin bootstrap %w", err)
		}
	}
	return nil
}
