package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vendaro/vendaro-settlement-service/internal/config"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/metrics"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/migrate"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/repository"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/rail"
	balanceuc "github.com/vendaro/vendaro-settlement-service/internal/usecase/balance"
	orderuc "github.com/vendaro/vendaro-settlement-service/internal/usecase/order"
	payoutuc "github.com/vendaro/vendaro-settlement-service/internal/usecase/payout"
	proofuc "github.com/vendaro/vendaro-settlement-service/internal/usecase/proof"
	"github.com/vendaro/vendaro-settlement-service/internal/usecase/settlement"
	"github.com/vendaro/vendaro-settlement-service/internal/vault"
)

// App is the settlement engine's composition root. The delivery layer
// (HTTP/gRPC) lives in a separate service and consumes the usecase
// interfaces exposed here.
type App struct {
	Config *config.SettlementConfig

	Orders   orderuc.OrderUsecase
	Proofs   proofuc.ProofUsecase
	Payouts  payoutuc.PayoutUsecase
	Balances balanceuc.BalanceUsecase

	Coordinator *settlement.Coordinator

	publisher *publisher.DefaultKafkaPublisher
	worker    *settlement.ReleaseWorker
}

func MustBuild(cfg *config.SettlementConfig) *App {
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.SettlementDB.MigrationPath); err != nil {
		panic(fmt.Sprintf("failed to run migrations: %v", err))
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers, cfg.KafkaService.Topic)

	settlementMetrics := metrics.NewSettlementMetrics()

	credentialVault, err := vault.New(cfg.Vault.EncryptionKey)
	if err != nil {
		panic(fmt.Sprintf("failed to init credential vault: %v", err))
	}

	orderRepo := repository.NewDefaultOrderRepository(db)
	settlementRepo := repository.NewDefaultSettlementRepository(db)
	vendorBalanceRepo := repository.NewDefaultVendorBalanceRepository(db)
	customerBalanceRepo := repository.NewDefaultCustomerBalanceRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)
	bankAccountRepo := repository.NewDefaultBankAccountRepository(db)
	proofRepo := repository.NewDefaultProofRepository(db)

	paymentRail := rail.NewSandboxRail()
	imageStorage := rail.NewSandboxStorage("https://storage.vendaro.dev/proofs")

	coordinator := settlement.NewCoordinator(orderRepo, settlementRepo, pub, settlementMetrics)

	return &App{
		Config: cfg,
		Orders: orderuc.NewDefaultOrderUsecase(
			orderRepo, customerBalanceRepo, coordinator, pub, settlementMetrics),
		Proofs: proofuc.NewDefaultProofUsecase(
			proofRepo, orderRepo, imageStorage, pub, settlementMetrics),
		Payouts: payoutuc.NewDefaultPayoutUsecase(
			vendorBalanceRepo, payoutRepo, bankAccountRepo,
			paymentRail, credentialVault, pub, settlementMetrics, cfg.IsProduction()),
		Balances:    balanceuc.NewDefaultBalanceUsecase(customerBalanceRepo),
		Coordinator: coordinator,
		publisher:   pub,
		worker:      settlement.NewReleaseWorker(coordinator, time.Minute),
	}
}

// Run starts the release worker and serves Prometheus metrics until the
// context is cancelled or the listener fails.
func (a *App) Run(ctx context.Context) error {
	go a.worker.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf("%s:%s", a.Config.MetricsServer.Host, a.Config.MetricsServer.Port)

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()
	return server.ListenAndServe()
}

func (a *App) Close() error {
	return a.publisher.Close()
}
