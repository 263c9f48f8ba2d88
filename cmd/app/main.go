package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"supplychain/cmd"
	httpin "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/amqpbus"
	"supplychain/internal/adapters/out/memstore"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
	"supplychain/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	owner, err := kernel.IdentityFromString(configs.OwnerID)
	if err != nil {
		log.Fatalf("invalid OWNER_ID: %v", err)
	}

	ledger, err := memstore.NewMemoryLedger(owner)
	if err != nil {
		log.Fatalf("ledger init: %v", err)
	}

	var notifier ports.EventNotifier
	if configs.AmqpURL != "" {
		publisher, conn, dialErr := amqpbus.Dial(configs.AmqpURL, logger)
		if dialErr != nil {
			log.Fatalf("amqp dial: %v", dialErr)
		}
		defer func() { _ = conn.Close() }()
		notifier = publisher
	}

	app := cmd.NewCompositionRoot(configs, ledger, notifier)

	jobManager := jobs.NewJobManager(
		app.CreateGetPipelineStatsQueryHandler(),
		configs.ReportSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		OwnerID:        os.Getenv("OWNER_ID"),
		AmqpURL:        os.Getenv("AMQP_URL"),
		ReportSchedule: os.Getenv("REPORT_SCHEDULE"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := httpin.NewServer(
		app.CreateUpdateCompanyWalletCommandHandler(),
		app.CreateAddEmployeeCommandHandler(),
		app.CreateRemoveEmployeeCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreatePrepareOrderCommandHandler(),
		app.CreateReadyOrderCommandHandler(),
		app.CreateDeliverOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrderStatusQueryHandler(),
		app.CreateGetEmployeeQueryHandler(),
		app.CreateGetOwnerQueryHandler(),
		app.CreateGetCompanyWalletQueryHandler(),
		app.CreateGetBalanceQueryHandler(),
		app.CreateListEventsQueryHandler(),
		app.CreateGetPipelineStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
