package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/smt-console/internal/config"
	"github.com/light-bringer/smt-console/internal/pkg/logger"
	"github.com/light-bringer/smt-console/internal/services"
	httphandler "github.com/light-bringer/smt-console/internal/transport/http"
)

// healthProbeInterval is how often backend availability is published to the
// gRPC health service.
const healthProbeInterval = 30 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Load configuration (defaults, optional file, SMT_ environment)
	cfg, err := config.Load(os.Getenv("SMT_CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Build the root logger
	lg, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	lg.Info("starting SMT console",
		zap.String("backend", cfg.Backend),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("grpc_port", cfg.GRPC.Port))

	// 3. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 4. Create gRPC server with health and reflection
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.GRPC.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	// 5. Start gRPC server in background
	go func() {
		lg.Info("gRPC server listening", zap.Int("port", cfg.GRPC.Port))
		if err := grpcServer.Serve(lis); err != nil {
			lg.Error("gRPC server error", zap.Error(err))
		}
	}()

	// 6. Publish backend availability to the health service
	go probeBackend(ctx, serviceOpts, healthServer, lg.Named("health"))

	// 7. Create HTTP server
	httpServer := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTP.Port),
		Handler:           httphandler.NewRouter(serviceOpts, lg.Named("http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 8. Start HTTP server in background
	go func() {
		lg.Info("HTTP server listening", zap.Int("port", cfg.HTTP.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("HTTP server error", zap.Error(err))
		}
	}()

	// 9. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	lg.Info("shutting down gracefully")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		lg.Warn("HTTP server shutdown error", zap.Error(err))
	}

	healthServer.Shutdown()
	grpcServer.GracefulStop()

	return nil
}

// probeBackend sets the overall health status to SERVING while the
// spreadsheet can be reached and NOT_SERVING otherwise.
func probeBackend(ctx context.Context, svc *services.ServiceOptions, hs *health.Server, lg *zap.Logger) {
	ticker := time.NewTicker(healthProbeInterval)
	defer ticker.Stop()

	last := healthpb.HealthCheckResponse_UNKNOWN
	for {
		status := healthpb.HealthCheckResponse_NOT_SERVING
		if svc.Available(ctx) {
			status = healthpb.HealthCheckResponse_SERVING
		}
		if status != last {
			lg.Info("backend health changed", zap.String("status", status.String()))
			last = status
		}
		hs.SetServingStatus("", status)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
