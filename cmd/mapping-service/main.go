package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pricelink/supplier-mapping-service/internal/auth"
	"github.com/pricelink/supplier-mapping-service/internal/config"
	httpserver "github.com/pricelink/supplier-mapping-service/internal/delivery/http"
	"github.com/pricelink/supplier-mapping-service/internal/delivery/http/handlers"
	publisher "github.com/pricelink/supplier-mapping-service/internal/infrastructure/kafka"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/metrics"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/migrate"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/repository"
	"github.com/pricelink/supplier-mapping-service/internal/logging"
	"github.com/pricelink/supplier-mapping-service/internal/usecase"
	mappingusecase "github.com/pricelink/supplier-mapping-service/internal/usecase/mapping"
)

func main() {
	godotenv.Load()
	cfg := config.MustLoad()
	logging.Setup(cfg.LogConfig)
	log := slog.Default()

	db := postgres.MustInitDB(cfg)
	if cfg.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MigrationsPath); err != nil {
			log.Error("failed to run migrations", "error", err.Error())
			os.Exit(1)
		}
	}

	groupRepo := repository.NewDefaultGroupRepository(db)
	mappingRepo := repository.NewDefaultMappingRepository(db)
	supplierRepo := repository.NewDefaultSupplierRepository(db)
	ledgerRepo := repository.NewDefaultLedgerRepository(db)
	tokenRepo := repository.NewDefaultTokenRepository(db)
	issueRepo := repository.NewDefaultIssueRepository(db)

	var kafkaPublisher *publisher.KafkaPublisher
	if cfg.KafkaService.Host != "" {
		kafkaPublisher = publisher.NewKafkaPublisher(
			[]string{net.JoinHostPort(cfg.KafkaService.Host, cfg.KafkaService.Port)},
			cfg.KafkaService.Topic,
		)
	}

	mappingMetrics := metrics.NewMappingMetrics()

	tokenUc := usecase.NewDefaultTokenUsecase(tokenRepo)
	importUc := usecase.NewDefaultImportUsecase(groupRepo, mappingMetrics)
	supplierUc := usecase.NewDefaultSupplierUsecase(supplierRepo)
	issueUc := usecase.NewDefaultIssueUsecase(issueRepo, groupRepo, tokenUc, mappingMetrics)
	ledgerUc := usecase.NewDefaultLedgerUsecase(ledgerRepo)
	analyticsUc := usecase.NewDefaultAnalyticsUsecase(mappingRepo)
	mappingUc := mappingusecase.NewDefaultMappingUsecase(
		mappingRepo,
		groupRepo,
		supplierRepo,
		tokenUc,
		kafkaPublisher,
		mappingMetrics,
	)

	sessions := auth.NewSessionManager(
		cfg.AdminAuth.SessionSecret,
		time.Duration(cfg.AdminAuth.SessionHours)*time.Hour,
	)

	server := httpserver.NewServer(cfg, log, sessions, httpserver.Handlers{
		Import:     handlers.NewImportHandler(importUc),
		Seller:     handlers.NewSellerHandler(mappingUc, supplierUc, issueUc),
		Auth:       handlers.NewAuthHandler(sessions, cfg.AdminAuth),
		Supplier:   handlers.NewSupplierHandler(supplierUc),
		Moderation: handlers.NewModerationHandler(mappingUc, ledgerUc, issueUc),
		Analytics:  handlers.NewAnalyticsHandler(analyticsUc),
	})

	go func() {
		if err := server.Run(); err != nil {
			log.Error("http server stopped", "error", err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err.Error())
	}
}
