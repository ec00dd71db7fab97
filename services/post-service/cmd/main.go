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
	"github.com/maelferrand/brume/services/post-service/config"
	grpc_adapter "github.com/maelferrand/brume/services/post-service/internal/adapters/primary/grpc"
	"github.com/maelferrand/brume/services/post-service/internal/adapters/secondary/eventbroker"
	"github.com/maelferrand/brume/services/post-service/internal/adapters/secondary/repository"
	"github.com/maelferrand/brume/services/post-service/internal/core/services"
)

func main() {
	// 1. Config & Logger
	cfg := config.Load()
	logger.Init(cfg.Env)
	slog.Info("🚀 Starting Post Service", "config", cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Télémétrie (Tracing)
	tp, err := telemetry.Init(ctx, "post-service", cfg.Env, cfg.OtelEndpoint)
	if err != nil {
		slog.Error("Failed to init tracer", "error", err)
	} else {
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	// 3. Infrastructure: Base de données (Postgres)
	dbConfig, err := pgxpool.ParseConfig(cfg.DBUrl)
	if err != nil {
		slog.Error("Unable to parse DB config", "error", err)
		os.Exit(1)
	}
	// Instrumentation SQL (Pour voir les requêtes dans Jaeger)
	dbConfig.ConnConfig.Tracer = otelpgx.NewTracer()

	dbPool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		slog.Error("Unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	slog.Info("✅ Connected to Postgres")

	// 4. Infrastructure: Event Broker (NATS)
	nc, err := nats.Connect(cfg.NatsUrl)
	if err != nil {
		slog.Error("Unable to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer nc.Close()
	slog.Info("✅ Connected to NATS")

	// 5. Vérification des tokens (clé publique identité)
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

	// 6. Initialisation des Adapters (Driven)
	postRepo := repository.NewPostgresRepo(dbPool)
	eventPub := eventbroker.NewNatsPublisher(nc)

	// 7. Initialisation du Core (Domain Logic)
	postService := services.NewPostService(postRepo, eventPub)

	// 8. Initialisation du Primary Adapter (gRPC)
	// Ajout de l'intercepteur OTEL pour propager le contexte de trace
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(authctx.UnaryServerInterceptor(verifier)),
	)

	serverAdapter := grpc_adapter.NewServer(postService)
	serverAdapter.Register(grpcServer)

	// Health Check standard pour K8s/Docker
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Active la reflection pour grpcurl / Postman
	reflection.Register(grpcServer)

	// 9. Démarrage
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		slog.Error("Failed to listen", "error", err)
		os.Exit(1)
	}

	slog.Info("📡 Post Service listening", "port", cfg.GRPCPort)

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC server error", "error", err)
			os.Exit(1) // Fatal en prod
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("🛑 Shutting down server...")

	grpcServer.GracefulStop()
	slog.Info("👋 Server exited")
}
