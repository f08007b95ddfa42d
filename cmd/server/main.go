package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/harborpoint/moneygate-backend/internal/adapter/anomaly"
	grpcadapter "github.com/harborpoint/moneygate-backend/internal/adapter/grpc"
	moneygatev1 "github.com/harborpoint/moneygate-backend/internal/adapter/grpc/moneygate/v1"
	"github.com/harborpoint/moneygate-backend/internal/adapter/messaging"
	"github.com/harborpoint/moneygate-backend/internal/adapter/repository/memory"
	"github.com/harborpoint/moneygate-backend/internal/adapter/repository/postgres"
	"github.com/harborpoint/moneygate-backend/internal/config"
	"github.com/harborpoint/moneygate-backend/internal/domain"
	"github.com/harborpoint/moneygate-backend/internal/usecase/admission"
	"github.com/harborpoint/moneygate-backend/internal/usecase/gates"
	"github.com/harborpoint/moneygate-backend/internal/usecase/reopener"
)

const defaultConfigPath = "config.yaml"

func main() {
	configPath := os.Getenv("MONEYGATE_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	ctx := context.Background()

	// 1. Storage backends
	ledger, queue, alerts, audit, cleanup, err := buildSinks(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up storage: %v", err)
	}
	defer cleanup()

	// 2. Optional NATS alert fan-out
	if cfg.NATS.URL != "" {
		conn, err := messaging.Connect(messaging.Config{
			URL:           cfg.NATS.URL,
			Subject:       cfg.NATS.Subject,
			Name:          "moneygate-server",
			ReconnectWait: 2 * time.Second,
			MaxReconnects: 10,
		})
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer conn.Close()
		alerts = messaging.NewAlertPublisher(alerts, conn, cfg.NATS.Subject)
		log.Printf("Alert fan-out enabled on subject %s", cfg.NATS.Subject)
	}

	// 3. Core services
	registry := gates.NewRegistry()
	detector := anomaly.NewDetector(anomaly.Thresholds{
		SoftLimitCents: cfg.Admission.SoftLimitCents,
		HardLimitCents: cfg.Admission.HardLimitCents,
		BaselineWindow: cfg.Admission.BaselineWindow,
	})
	admissionService := admission.NewService(admission.Deps{
		Gates:             registry,
		Ledger:            ledger,
		Queue:             queue,
		Alerts:            alerts,
		Audit:             audit,
		Pipeline:          detector,
		EvaluationTimeout: cfg.Admission.EvaluationTimeout.AsDuration(),
	})

	// 4. Scheduled gate reopener
	gateReopener := reopener.New(registry, audit)
	if err := gateReopener.Register(cfg.Reopen.Cron); err != nil {
		log.Fatalf("Failed to register reopen sweep: %v", err)
	}
	gateReopener.Start()
	defer gateReopener.Stop()

	// 5. Start gRPC server
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(cfg.Server.APIToken)),
	)

	grpcAdapter := grpcadapter.NewServer(admissionService, registry, audit)
	moneygatev1.RegisterMoneyGateServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", addr, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", addr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	waitForShutdown(grpcServer)
}

// buildSinks wires the four append-only stores for the configured backend
func buildSinks(ctx context.Context, cfg *config.Config) (
	domain.RemittanceLedger,
	domain.ScheduledQueue,
	domain.AlertBus,
	domain.AuditLog,
	func(),
	error,
) {
	if cfg.Storage.Backend == "memory" {
		log.Println("Using in-memory storage")
		return memory.NewLedger(), memory.NewScheduledQueue(), memory.NewAlertBus(), memory.NewAuditLog(), func() {}, nil
	}

	db, err := postgres.NewDB(cfg.ConnectionString())
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, nil, nil, nil, fmt.Errorf("migrate schema: %w", err)
	}
	log.Println("Using postgres storage")

	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}
	return postgres.NewRemittanceLedgerRepository(db),
		postgres.NewScheduledRemittanceRepository(db),
		postgres.NewAlertEventRepository(db),
		postgres.NewAuditEventRepository(db),
		cleanup,
		nil
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
