package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"dematkyc/internal/audit"
	"dematkyc/internal/brokerage"
	jwttoken "dematkyc/internal/jwt_token"
	"dematkyc/internal/nomination/handler"
	nominationmetrics "dematkyc/internal/nomination/metrics"
	"dematkyc/internal/nomination/service"
	"dematkyc/internal/nomination/store/draft"
	"dematkyc/internal/nomination/store/submission"
	"dematkyc/internal/platform/config"
	"dematkyc/internal/platform/httpserver"
	"dematkyc/internal/platform/logger"
	"dematkyc/internal/platform/metrics"
	"dematkyc/internal/platform/redis"
	"dematkyc/pkg/platform/httputil"
)

const auditQueueSize = 1024

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	httpMetrics := metrics.New()
	nomMetrics := nominationmetrics.New()

	backend := brokerage.New(cfg.Brokerage.BaseURL, cfg.Brokerage.Timeout,
		brokerage.WithLogger(log),
		brokerage.WithObserver(nomMetrics),
	)

	drafts, redisClient, err := buildDraftStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	submissions, db, err := buildSubmissionLog(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	sink, closeSink, err := buildAuditSink(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSink()

	hasher, err := audit.NewHasher([]byte(cfg.AuditHashKey))
	if err != nil {
		return fmt.Errorf("audit hasher: %w", err)
	}
	publisher := audit.NewPublisher(auditQueueSize, log)

	svc, err := service.New(backend, drafts, submissions,
		service.WithAuditor(publisher),
		service.WithHasher(hasher),
		service.WithMetrics(nomMetrics),
		service.WithLogger(log),
	)
	if err != nil {
		return err
	}

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	nominationHandler := handler.New(svc, log, httpMetrics, jwttoken.NewJWTServiceAdapter(jwtService))

	r := chi.NewRouter()
	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", healthz(redisClient, db))
	nominationHandler.Register(r)

	srv := httpserver.New(cfg.Addr, r)
	log.Info("starting dematkyc", "addr", cfg.Addr)

	return serve(ctx, srv, audit.NewWorker(sink, publisher.Inbox(), log), log)
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

type auditWorker interface {
	Run(ctx context.Context) error
}

// serve runs srv until ctx is cancelled or the server fails. The audit worker
// outlives the HTTP server: it is stopped, and drains its inbox, only once
// Shutdown has returned and no handler can publish any more.
func serve(ctx context.Context, srv httpServer, worker auditWorker, log *slog.Logger) error {
	workerCtx, stopWorker := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorker()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := worker.Run(workerCtx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		defer stopWorker()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func buildDraftStore(ctx context.Context, cfg config.Server, log *slog.Logger) (service.DraftStore, *redis.Client, error) {
	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	if client == nil {
		log.Warn("REDIS_URL not set, drafts are kept in memory")
		return draft.NewInMemory(cfg.DraftTTL), nil, nil
	}
	return draft.NewRedis(client.Client, cfg.DraftTTL), client, nil
}

func buildSubmissionLog(ctx context.Context, cfg config.Server, log *slog.Logger) (service.SubmissionLog, *sql.DB, error) {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, submission log is kept in memory")
		return submission.NewInMemory(), nil, nil
	}
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	store := submission.NewPostgres(db)
	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, db, nil
}

func buildAuditSink(ctx context.Context, cfg config.Server, log *slog.Logger) (audit.Sink, func(), error) {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn("KAFKA_BROKERS not set, audit events go to the log")
		return audit.NewLogSink(log), func() {}, nil
	}
	client, err := audit.NewKafkaClient(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		return nil, nil, err
	}
	if err := audit.EnsureTopic(ctx, client, cfg.Kafka.Topic, 3, 1); err != nil {
		client.Close()
		return nil, nil, err
	}
	publisher := audit.NewKafkaPublisher(client, cfg.Kafka.Topic)
	return publisher, publisher.Close, nil
}

func healthz(redisClient *redis.Client, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status := map[string]string{"status": "ok"}
		code := http.StatusOK
		if redisClient != nil {
			if err := redisClient.Health(ctx); err != nil {
				status["redis"] = "unavailable"
				code = http.StatusServiceUnavailable
			}
		}
		if db != nil {
			if err := db.PingContext(ctx); err != nil {
				status["database"] = "unavailable"
				code = http.StatusServiceUnavailable
			}
		}
		if code != http.StatusOK {
			status["status"] = "degraded"
		}
		httputil.WriteJSON(w, code, status)
	}
}
