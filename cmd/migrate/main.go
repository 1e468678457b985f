package main

import (
	"context"
	"flag"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ogurasousui/operator-registry/internal/platform/config"
	pg "github.com/ogurasousui/operator-registry/internal/platform/db/postgres"
	"github.com/ogurasousui/operator-registry/internal/platform/logging"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath    = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		migrationsDir = flag.String("dir", "assets/migrations", "directory containing migration files")
		seedsDir      = flag.String("seeds", "assets/seeds", "directory containing seed files (used by the seed and reset actions)")
	)
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfgPath := effectiveConfigPath(*configPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, "console", "operator-registry-migrate")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Database.Driver != config.DriverPostgres {
		logger.Fatal("migrations only apply to the postgres driver", zap.String("driver", cfg.Database.Driver))
	}

	ctx := context.Background()
	switch action {
	case "seed":
		if err := runSeeds(ctx, cfg.Database, *seedsDir, logger); err != nil {
			logger.Fatal("seed failed", zap.Error(err))
		}
	case "reset":
		for _, step := range []string{"down", "up"} {
			if err := runMigration(step, *migrationsDir, cfg.Database.DSN(), logger); err != nil {
				logger.Fatal("migration failed", zap.String("action", step), zap.Error(err))
			}
		}
		if err := runSeeds(ctx, cfg.Database, *seedsDir, logger); err != nil {
			logger.Fatal("seed failed", zap.Error(err))
		}
	default:
		if err := runMigration(action, *migrationsDir, cfg.Database.DSN(), logger); err != nil {
			logger.Fatal("migration failed", zap.String("action", action), zap.Error(err))
		}
	}

	logger.Info("completed", zap.String("action", action))
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func runMigration(action, dir, dsn string, logger *zap.Logger) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	absDir = filepath.ToSlash(absDir)

	m, err := migrate.New(fmt.Sprintf("file://%s", absDir), dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				logger.Info("no migration applied")
				return nil
			}
			return err
		}
		logger.Info("current version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}

// runSeeds は dir 内の .sql ファイルを名前順に実行します。
func runSeeds(ctx context.Context, dbCfg config.DatabaseConfig, dir string, logger *zap.Logger) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("list seeds in %s: %w", dir, err)
	}
	sort.Strings(files)

	pool, err := pg.NewPool(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("apply %s: %w", file, err)
		}
		logger.Info("applied seed", zap.String("file", filepath.Base(file)))
	}
	return nil
}
