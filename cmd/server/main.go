package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	cachememory "liferpg/internal/adapter/cache/memory"
	cacheredis "liferpg/internal/adapter/cache/redis"
	httpadapter "liferpg/internal/adapter/http"
	metricsinmem "liferpg/internal/adapter/metrics/inmemory"
	gormrepo "liferpg/internal/adapter/repo/gorm"
	repomemory "liferpg/internal/adapter/repo/memory"
	"liferpg/internal/app/action"
	"liferpg/internal/app/history"
	"liferpg/internal/app/ports"
	"liferpg/internal/app/rollover"
	"liferpg/internal/app/snapshot"
	"liferpg/internal/config"
	"liferpg/internal/domain/hero"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	stateRepo, ledger, txManager := buildRepos(logger, cfg)
	cache := buildCache(logger, cfg)
	kpi := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		SnapshotUC: snapshot.UseCase{StateRepo: stateRepo, Cache: cache, Now: time.Now},
		HistoryUC:  history.UseCase{Ledger: ledger},
		ActionUC: action.UseCase{
			Guard:     action.NewSessionGuard(),
			TxManager: txManager,
			StateRepo: stateRepo,
			Ledger:    ledger,
			Cache:     cache,
			Metrics:   kpi,
			Processor: hero.NewProcessor(),
			Now:       time.Now,
		},
		RolloverUC: rollover.UseCase{
			TxManager: txManager,
			StateRepo: stateRepo,
			Ledger:    ledger,
			Cache:     cache,
			Now:       time.Now,
		},
		KPI: kpi,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	logger.Info("liferpg server listening", "addr", cfg.Addr)
	s.Spin()
}

// buildRepos selects the backend at construction time: Postgres when a DSN
// is configured, the in-memory fixture otherwise.
func buildRepos(logger *slog.Logger, cfg config.Config) (ports.HeroStateRepository, ports.HistoryRepository, ports.TxManager) {
	if cfg.DBDSN == "" {
		logger.Info("no database configured, using in-memory fixture backend")
		store := repomemory.NewStore()
		return repomemory.NewHeroStateRepo(store), repomemory.NewHistoryRepo(store), repomemory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		logger.Error("open postgres", "err", err)
		os.Exit(1)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		logger.Error("apply migrations", "err", err)
		os.Exit(1)
	}
	return gormrepo.NewHeroStateRepo(db), gormrepo.NewHistoryRepo(db), gormrepo.NewTxManager(db)
}

func buildCache(logger *slog.Logger, cfg config.Config) ports.SnapshotCache {
	if cfg.RedisAddr == "" {
		return cachememory.NewCache(cfg.SnapshotTTL)
	}
	cache, err := cacheredis.NewCache(cfg.RedisAddr, cfg.SnapshotTTL)
	if err != nil {
		logger.Error("open redis", "err", err)
		os.Exit(1)
	}
	return cache
}
