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
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
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
	"github.com/maelferrand/brume/services/feed-service/config"
	"github.com/maelferrand/brume/services/feed-service/internal/adapters/primary/events"
	grpc_adapter "github.com/maelferrand/brume/services/feed-service/internal/adapters/primary/grpc"
	"github.com/maelferrand/brume/services/feed-service/internal/adapters/secondary/cache"
	"github.com/maelferrand/brume/services/feed-service/internal/adapters/secondary/clients"
	"github.com/maelferrand/brume/services/feed-service/internal/adapters/secondary/repository"
	"github.com/maelferrand/brume/services/feed-service/internal/core/services"
)

func main() {
	// 1. Config & Logger
	cfg := config.Load()
	logger.Init(cfg.Env)
	slog.Info("🚀 Starting Feed Service", "config", cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Télémétrie (Tracing)
	tp, err := telemetry.Init(ctx, "feed-service", cfg.Env, cfg.OtelEndpoint)
	if err != nil {
		slog.Error("Failed to init tracer", "error", err)
	} else {
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	// 3. Infrastructure: les deux sources Postgres (Driven Adapters)
	postsPool := mustPool(ctx, cfg.PostsDBUrl)
	defer postsPool.Close()
	articlesPool := mustPool(ctx, cfg.ArticlesDBUrl)
	defer articlesPool.Close()
	slog.Info("✅ Connected to Postgres", "sources", []string{"posts", "articles"})

	// 4. Infrastructure: Redis (cache auteurs)
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	// Instrumentation Redis
	if err := redisotel.InstrumentTracing(rdb); err != nil {
		panic(err)
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Unable to connect to Redis", "error", err)
		os.Exit(1)
	}
	slog.Info("✅ Connected to Redis")

	// 5. Infrastructure: User Client (Driven Adapter)
	userClient, err := clients.NewUserClient(cfg.UserUrl)
	if err != nil {
		slog.Error("Unable to connect to User Service", "error", err)
		os.Exit(1)
	}
	defer userClient.Close()
	slog.Info("✅ Connected to User Service")

	// 6. Infrastructure: Event Broker NATS
	nc, err := nats.Connect(cfg.NatsUrl)
	if err != nil {
		slog.Error("Unable to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer nc.Close()
	slog.Info("✅ Connected to NATS")

	// 7. Vérification des tokens
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

	// 8. Initialisation du Core
	authorCache := cache.NewAuthorCache(rdb, userClient)
	feedService := services.NewFeedService(
		repository.NewPostSource(postsPool),
		repository.NewArticleSource(articlesPool),
		authorCache,
	)

	// 9. Consumer NATS (Driving Adapter - Async) : invalidation du cache
	handler := events.NewEventHandler(authorCache)
	_, err = nc.Subscribe("user.updated", handler.HandleUserUpdated)
	if err != nil {
		slog.Error("Failed to subscribe to NATS", "error", err)
		os.Exit(1)
	}
	slog.Info("👂 Listening for events (NATS)")

	// 10. Primary Adapter (gRPC)
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(authctx.UnaryServerInterceptor(verifier)),
	)

	serverAdapter := grpc_adapter.NewServer(feedService)
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

	slog.Info("📡 Feed Service listening", "port", cfg.GRPCPort)

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

func mustPool(ctx context.Context, url string) *pgxpool.Pool {
	dbConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		slog.Error("Unable to parse DB config", "error", err)
		os.Exit(1)
	}
	// Instrumentation SQL
	dbConfig.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		slog.Error("Unable to connect to database", "error", err)
		os.Exit(1)
	}
	return pool
}
