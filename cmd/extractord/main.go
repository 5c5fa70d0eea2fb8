package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	extractorv1 "github.com/joseph-ayodele/invoice-extractor/gen/extractor/v1"
	"github.com/joseph-ayodele/invoice-extractor/internal/config"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
	"github.com/joseph-ayodele/invoice-extractor/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	tuning, err := cfg.PipelineTuning()
	if err != nil {
		logger.Error("invalid tuning configuration", "err", err)
		os.Exit(1)
	}

	specs := extract.DefaultFieldSpecs()
	if cfg.Tuning.FieldSpecsPath != "" {
		specs, err = config.LoadFieldSpecs(cfg.Tuning.FieldSpecsPath)
		if err != nil {
			logger.Error("failed to load field specs", "path", cfg.Tuning.FieldSpecsPath, "err", err)
			os.Exit(1)
		}
		logger.Info("loaded field spec overrides", "path", cfg.Tuning.FieldSpecsPath, "fields", len(specs))
	}

	pipeline := extract.NewPipeline(logger, tuning, specs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewExtractorService(pipeline, logger)
	extractorv1.RegisterExtractorServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "err", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
