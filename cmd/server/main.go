// Command server runs the applicability-check HTTP service.
//
// main wires high-level dependencies, exposes the HTTP router, and keeps
// the server lifecycle small. Business logic lives in the internal service
// packages.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"adcheck/internal/aircraft"
	aircrafthandler "adcheck/internal/aircraft/handler"
	"adcheck/internal/applicability"
	applicabilitymetrics "adcheck/internal/applicability/metrics"
	"adcheck/internal/audit"
	"adcheck/internal/batch"
	"adcheck/internal/comparison"
	comparisonhandler "adcheck/internal/comparison/handler"
	"adcheck/internal/directive"
	directivehandler "adcheck/internal/directive/handler"
	directivemetrics "adcheck/internal/directive/metrics"
	"adcheck/internal/platform/config"
	"adcheck/internal/platform/httpserver"
	"adcheck/internal/platform/logger"
	platformredis "adcheck/internal/platform/redis"
	"adcheck/internal/token"
	tokenhandler "adcheck/internal/token/handler"
	httptransport "adcheck/internal/transport/http"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var db *sql.DB
	directiveStore := directive.Store(directive.NewInMemoryStore())
	fleetStore := aircraft.Store(aircraft.NewInMemoryStore())
	if cfg.PostgresURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		directivePG := directive.NewPostgresStore(db)
		fleetPG := aircraft.NewPostgresStore(db)
		if err := directivePG.EnsureSchema(ctx); err != nil {
			log.Error("schema setup failed", "error", err)
			os.Exit(1)
		}
		if err := fleetPG.EnsureSchema(ctx); err != nil {
			log.Error("schema setup failed", "error", err)
			os.Exit(1)
		}
		directiveStore = directivePG
		fleetStore = fleetPG
	}

	cache, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	registryMetrics := directivemetrics.New()
	if cache != nil {
		defer cache.Close()
		directiveStore = directive.NewCachedStore(directiveStore, cache.Client, config.RegistryCacheTTL, registryMetrics)
	}

	var publisher audit.Publisher = audit.NewInMemoryPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := audit.NewKafkaPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka connect failed", "error", err)
			os.Exit(1)
		}
		publisher = kafkaPublisher
	}
	defer publisher.Close()

	inbox := make(chan audit.Event, cfg.AuditBufferSize)
	worker := audit.NewWorker(publisher, inbox, log)

	registry := directive.NewService(directiveStore, log, registryMetrics)
	fleets := aircraft.NewService(fleetStore, log)
	comparator := batch.NewComparator(applicability.NewEngine(), applicabilitymetrics.New())
	comparisons := comparison.NewService(registry, fleets, comparator, inbox, otel.Tracer("adcheck/comparison"), log)

	jwtService := token.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	var public []httptransport.Registrar
	if cfg.APICredentialHash != "" {
		public = append(public, tokenhandler.New(jwtService, cfg.APICredentialHash, cfg.TokenTTL, log))
	}

	router := httptransport.NewRouter(httptransport.Config{
		Logger: log,
		Auth:   token.NewJWTServiceAdapter(jwtService),
		Public: public,
		Health: func(ctx context.Context) error {
			if db != nil {
				if err := db.PingContext(ctx); err != nil {
					return err
				}
			}
			if cache != nil {
				return cache.Health(ctx)
			}
			return nil
		},
		Features: []httptransport.Registrar{
			directivehandler.New(registry, log),
			aircrafthandler.New(fleets, log),
			comparisonhandler.New(comparisons, log),
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting adcheck server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		err := worker.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
