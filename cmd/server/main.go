package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/operator-registry/internal/adapters/grpc/handler"
	"github.com/ogurasousui/operator-registry/internal/adapters/repository/memory"
	"github.com/ogurasousui/operator-registry/internal/adapters/repository/postgres"
	"github.com/ogurasousui/operator-registry/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/operator-registry/internal/core/catalog"
	"github.com/ogurasousui/operator-registry/internal/core/operator"
	"github.com/ogurasousui/operator-registry/internal/platform/config"
	pg "github.com/ogurasousui/operator-registry/internal/platform/db/postgres"
	"github.com/ogurasousui/operator-registry/internal/platform/logging"
	"github.com/ogurasousui/operator-registry/internal/platform/metrics"
	"github.com/ogurasousui/operator-registry/internal/platform/server"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const serviceName = "operator-registry"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

type storage struct {
	operators operator.Repository
	catalog   catalog.Repository
	tx        operator.TransactionManager
	close     func()
}

func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*storage, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Database.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Info("using sqlite snapshot store", zap.String("path", store.Path()))
		return &storage{
			operators: store,
			catalog:   memory.NewCatalog(regionsFromConfig(cfg.Catalog)),
			close:     func() { _ = store.Close() },
		}, nil
	default:
		dbPool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("initialize database pool: %w", err)
		}
		logger.Info("using postgres store", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.Name))
		return &storage{
			operators: postgres.NewOperatorRepository(dbPool),
			catalog:   postgres.NewCatalogRepository(dbPool),
			tx:        pg.NewTransactionManager(dbPool, pg.WithTxLogger(logger.Named("postgres"))),
			close:     dbPool.Close,
		}, nil
	}
}

func regionsFromConfig(cfg config.CatalogConfig) []catalog.Region {
	regions := make([]catalog.Region, 0, len(cfg.Regions))
	for _, r := range cfg.Regions {
		regions = append(regions, catalog.Region{ID: r.ID, Name: r.Name})
	}
	return regions
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.close()

	m := metrics.New()

	catalogSvc := catalog.NewService(store.catalog)
	operatorSvc := operator.NewService(store.operators, catalogSvc, nil, store.tx,
		operator.WithLogger(logger.Named("operator")),
		operator.WithRecorder(m),
	)

	grpcServer := server.New(cfg.Server.ListenAddr, handler.NewOperatorGrpcHandler(operatorSvc, catalogSvc), server.Options{
		Logger:          logger.Named("grpc"),
		Interceptors:    []grpc.UnaryServerInterceptor{m.UnaryServerInterceptor()},
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	if cfg.Metrics.ListenAddr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.Metrics.ListenAddr, cfg.Metrics.Path, logger.Named("metrics")); err != nil {
				logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	return grpcServer.Run(ctx)
}
