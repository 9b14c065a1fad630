package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	syncv1 "github.com/optipix/imagesync/gen/proto/sync/v1"
	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/export"
	"github.com/optipix/imagesync/internal/jobs"
	"github.com/optipix/imagesync/internal/ledger"
	"github.com/optipix/imagesync/internal/platform"
	"github.com/optipix/imagesync/internal/queue"
	repo "github.com/optipix/imagesync/internal/repository"
	"github.com/optipix/imagesync/internal/selection"
	"github.com/optipix/imagesync/internal/server"
	"github.com/optipix/imagesync/internal/worker"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobRepo := repo.NewSyncJobRepository(entc, logger)
	itemRepo := repo.NewJobItemRepository(entc, logger)
	ledgerRepo := repo.NewLedgerRepository(entc, logger)
	queueRepo := repo.NewQueueRepository(entc, logger)

	ledgerSvc := ledger.NewService(ledgerRepo, logger)
	jobSvc := jobs.NewService(jobRepo, itemRepo, ledgerSvc, cfg.Jobs, logger)
	queueSvc := queue.NewService(queueRepo, logger)
	defer queueSvc.Stop()
	bulk := selection.NewManager(jobSvc, logger)
	exporter := export.NewService(jobRepo, itemRepo, ledgerSvc, logger)

	optimizer := platform.NewOptimizerClient(cfg.Platform.OptimizerURL, cfg.Platform.Timeout, logger)
	storefront := platform.NewStorefrontAPIClient(cfg.Platform.StorefrontURL, cfg.Platform.Timeout, logger)

	workerPool := worker.NewPool(jobSvc, itemRepo, ledgerSvc, optimizer, storefront, cfg.Jobs, logger,
		worker.WithWorkers(cfg.Worker.Workers),
		worker.WithPollInterval(cfg.Worker.PollInterval),
		worker.WithClaimBatch(cfg.Worker.ClaimBatch),
		worker.WithItemTimeout(cfg.Worker.ItemTimeout),
	)
	workerPool.Start(ctx)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.RequestIDInterceptor(logger)),
	)

	syncv1.RegisterSyncJobsServiceServer(grpcServer, server.NewSyncJobsService(jobSvc, bulk, exporter, logger))
	syncv1.RegisterQueueServiceServer(grpcServer, server.NewQueueService(queueSvc, ledgerSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("imagesync listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	workerPool.Wait()
	grpcServer.GracefulStop()
}
