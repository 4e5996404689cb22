package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TheraTrack/practice-service/internal/auth"
	"github.com/TheraTrack/practice-service/internal/checkin"
	"github.com/TheraTrack/practice-service/internal/client"
	"github.com/TheraTrack/practice-service/internal/config"
	"github.com/TheraTrack/practice-service/internal/db"
	"github.com/TheraTrack/practice-service/internal/files"
	"github.com/TheraTrack/practice-service/internal/goals"
	internalhttp "github.com/TheraTrack/practice-service/internal/http"
	"github.com/TheraTrack/practice-service/internal/messaging"
	"github.com/TheraTrack/practice-service/internal/plan"
	"github.com/TheraTrack/practice-service/internal/report"
	"github.com/TheraTrack/practice-service/internal/resources"
	"github.com/TheraTrack/practice-service/internal/risk"
	"github.com/TheraTrack/practice-service/internal/session"
	"github.com/TheraTrack/practice-service/internal/site"
	"github.com/TheraTrack/practice-service/internal/soap"
	"github.com/TheraTrack/practice-service/internal/telemetry"
	"github.com/TheraTrack/practice-service/internal/users"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Telemetry first so everything below is instrumented.
	otelCfg := telemetry.LoadConfig()
	provider, err := telemetry.InitProvider(ctx, otelCfg)
	if err != nil {
		log.Printf("Warning: OpenTelemetry initialization failed: %v", err)
	}
	if provider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Printf("Warning: failed to initialize metrics: %v", err)
		metrics = nil
	}

	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database); err != nil {
		log.Fatalf("Failed to migrate store: %v", err)
	}
	if err := db.Seed(ctx, database); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	// Event publisher is optional: without a broker URL the service
	// runs standalone and events are discarded.
	var publisher messaging.PublisherInterface
	if cfg.RabbitMQURL != "" {
		p, err := messaging.NewPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, events disabled: %v", err)
			publisher = messaging.NoopPublisher{}
		} else {
			publisher = p
		}
	} else {
		publisher = messaging.NoopPublisher{}
	}
	defer publisher.Close()

	verifier := auth.NewVerifier(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	userService := users.NewService(users.NewRepository(database), verifier)
	siteService := site.NewService(site.NewRepository(database))
	clientService := client.NewService(client.NewRepository(database), publisher, metrics)
	goalService := goals.NewService(goals.NewRepository(database))
	sessionService := session.NewService(session.NewRepository(database), publisher, metrics)
	soapService := soap.NewService(soap.NewRepository(database))
	planService := plan.NewService(plan.NewRepository(database))
	fileService := files.NewService(files.NewRepository(database))
	checkinService := checkin.NewService(checkin.NewRepository(database))
	resourceService := resources.NewService(resources.NewRepository(database))
	riskService := risk.NewService(soapService, clientService, publisher, metrics)
	reportService := report.NewService(sessionService, clientService, soapService, riskService)

	handlers := internalhttp.Handlers{
		Users:     users.NewHandler(userService),
		Sites:     site.NewHandler(siteService),
		Clients:   client.NewHandler(clientService),
		Goals:     goals.NewHandler(goalService),
		Sessions:  session.NewHandler(sessionService),
		Soap:      soap.NewHandler(soapService),
		Plans:     plan.NewHandler(planService),
		Files:     files.NewHandler(fileService),
		CheckIns:  checkin.NewHandler(checkinService),
		Resources: resources.NewHandler(resourceService),
		Risk:      risk.NewHandler(riskService),
		Reports:   report.NewHandler(reportService),
	}

	var authMetrics auth.MetricsRecorder
	if metrics != nil {
		authMetrics = metrics
	}
	router := internalhttp.NewRouter(handlers, verifier, authMetrics, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("✓ Practice service listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("✓ Server stopped")
}
