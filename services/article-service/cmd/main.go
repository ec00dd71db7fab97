package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	// Drivers
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	// Instrumentation
	"github.com/exaring/otelpgx"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"

	// Interne
	"github.com/maelferrand/brume/pkg/authctx"
	"github.com/maelferrand/brume/pkg/logger"
	"github.com/maelferrand/brume/pkg/telemetry"
	"github.com/maelferrand/brume/services/article-service/config"
	grpc_adapter "github.com/maelferrand/brume/services/article-service/internal/adapters/primary/grpc"
	"github.com/maelferrand/brume/services/article-service/internal/adapters/secondary/eventbroker"
	"github.com/maelferrand/brume/services/article-service/internal/adapters/secondary/repository"
	"github.com/maelferrand/brume/services/article-service/internal/core/services"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Env)
	slog.Info("🚀 Starting Article Service", "config", cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := telemetry.Init(ctx, "article-service", cfg.Env, cfg.OtelEndpoint)
	if err != nil {
		slog.Error("Failed to init tracer", "error", err)
	} else {
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	dbConfig, err := pgxpool.ParseConfig(cfg.DBUrl)
	if err != nil {
		slog.Error("Unable to parse DB config", "error", err)
		os.Exit(1)
	}
	dbConfig.ConnConfig.Tracer = otelpgx.NewTracer()

	dbPool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		slog.Error("Unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	slog.Info("✅ Connected to Postgres")

	nc, err := nats.Connect(cfg.NatsUrl)
	if err != nil {
		slog.Error("Unable to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer nc.Close()
	slog.Info("✅ Connected to NATS")

	publicKeyPEM, err := os.ReadFile(cfg.JWTPublicKey)
	if err != nil {
		slog.Error("Unable to read JWT public key", "path", cfg.JWTPublicKey, "error", err)
		os.Exit(1)
	}
	verifier, err := authctx.NewVerifier(publicKeyPEM)
	if err != nil {
		slog.Error("Unable to parse JWT public key", "error", err)
		os.Exit(1)
	}

	articleRepo := repository.NewPostgresRepo(dbPool)
	eventPub := eventbroker.NewNatsPublisher(nc)
	articleService := services.NewArticleService(articleRepo, eventPub)

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(authctx.UnaryServerInterceptor(verifier)),
	)

	serverAdapter := grpc_adapter.NewServer(articleService)
	serverAdapter.Register(grpcServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		slog.Error("Failed to listen", "error", err)
		os.Exit(1)
	}

	slog.Info("📡 Article Service listening", "port", cfg.GRPCPort)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("🛑 Shutting down server...")

	grpcServer.GracefulStop()
	slog.Info("👋 Server exited")
}
