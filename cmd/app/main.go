package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/boxrepo"
	"fulfillment/internal/adapters/out/postgres/containerrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/tariffrepo"
	"fulfillment/internal/core/domain/model/tariff"
	"fulfillment/internal/jobs"
)

func main() {
	configs := getConfigs()
	dsn := makeDSN(configs)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB, dsn)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	if err = seedTariffs(&root, configs); err != nil {
		log.Fatalf("Error seeding tariffs: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreatePollingRefreshRatesCommandHandler(),
		root.RateWriter(),
		root.Logger(),
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startReconciler(ctx, &root)
	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		RateProviderURL: goDotEnvVariable("RATE_PROVIDER_URL"),
		NotifierURL:     goDotEnvVariable("NOTIFIER_URL"),
		DefaultFxRate:   goDotEnvVariable("DEFAULT_FX_RATE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func makeDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&boxrepo.BoxDTO{},
		&containerrepo.ContainerDTO{},
		&tariffrepo.TariffDTO{},
	)
}

func seedTariffs(root *cmd.CompositionRoot, configs cmd.Config) error {
	fxRate, err := decimal.NewFromString(configs.DefaultFxRate)
	if err != nil {
		return err
	}

	return root.SeedStore().Seed(context.Background(), tariff.Tariff{
		AirRatePerKg:         decimal.Zero,
		SeaRatePerCubicMeter: decimal.Zero,
		MarginPercent:        decimal.Zero,
		FxRateUSD:            fxRate,
		FxRateCNY:            decimal.NewFromInt(1),
		AutoUpdateFiat:       true,
		AutoUpdateStablecoin: true,
		Version:              1,
	})
}

func startReconciler(ctx context.Context, root *cmd.CompositionRoot) {
	reconciler := root.CreateReconciler()
	logger := root.Logger()

	reconciler.Subscribe(func(table string, rowID int64, changed map[string]string) {
		logger.Debug("remote change reconciled",
			"table", table, "rowID", rowID, "fields", len(changed))
	})

	go func() {
		err := reconciler.Run(ctx, root.ChangeFeed(), "orders", "boxes", "containers", "tariffs")
		if err != nil && ctx.Err() == nil {
			logger.Error("reconciler stopped", "error", err)
		}
	}()
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:        root.CreateCreateOrderCommandHandler(),
		QuoteOrder:         root.CreateQuoteOrderCommandHandler(),
		TransitionOrder:    root.CreateTransitionOrderCommandHandler(),
		ProposeAlternative: root.CreateProposeAlternativeCommandHandler(),
		CreateBox:          root.CreateCreateBoxCommandHandler(),
		AssignOrder:        root.CreateAssignOrderToBoxCommandHandler(),
		UnassignOrder:      root.CreateUnassignOrderFromBoxCommandHandler(),
		SendBox:            root.CreateSendBoxDirectlyCommandHandler(),
		UnpackBox:          root.CreateUnpackBoxCommandHandler(),
		DeleteBox:          root.CreateDeleteBoxCommandHandler(),
		CreateContainer:    root.CreateCreateContainerCommandHandler(),
		AssignBox:          root.CreateAssignBoxToContainerCommandHandler(),
		SendContainer:      root.CreateSendContainerCommandHandler(),
		DeleteContainer:    root.CreateDeleteContainerCommandHandler(),
		PatchTariffs:       root.CreatePatchTariffsCommandHandler(),
		RefreshRates:       root.CreateRefreshRatesCommandHandler(),
		Tariffs:            root.TariffStore(),
		ActiveOrders:       root.CreateGetActiveOrdersQueryHandler(),
		BoxContents:        root.CreateGetBoxContentsQueryHandler(),
		ShippedContainers:  root.CreateGetShippedContainersQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
