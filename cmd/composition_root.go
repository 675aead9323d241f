package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/feed"
	"fulfillment/internal/adapters/out/postgres/tariffrepo"
	"fulfillment/internal/adapters/out/rates"
	"fulfillment/internal/core/application/reconcile"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/tariff"
	"fulfillment/internal/core/domain/services/quotation"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	tariffStore *tariffrepo.GormTariffStore
	provider    *rates.Client
	notifier    *notifier.HTTPNotifier
	changeFeed  *feed.PqChangeFeed
	engine      quotation.Engine
	rateWriter  *jobs.DebouncedRateWriter
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, dsn string) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	defaultFxRate, err := decimal.NewFromString(config.DefaultFxRate)
	if err != nil {
		return CompositionRoot{}, err
	}
	engine, err := quotation.NewEngine(defaultFxRate)
	if err != nil {
		return CompositionRoot{}, err
	}

	tariffStore := tariffrepo.NewGormTariffStore(gormDB)

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		tariffStore: tariffStore,
		provider:    rates.NewClient(config.RateProviderURL),
		notifier:    notifier.NewHTTPNotifier(config.NotifierURL),
		changeFeed:  feed.NewPqChangeFeed(dsn, logger),
		engine:      engine,
		rateWriter:  jobs.NewDebouncedRateWriter(tariffStore, logger, jobs.DefaultWriteDelay),
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) TariffStore() ports.TariffStore {
	return c.tariffStore
}

func (c *CompositionRoot) SeedStore() *tariffrepo.GormTariffStore {
	return c.tariffStore
}

func (c *CompositionRoot) ChangeFeed() ports.ChangeFeed {
	return c.changeFeed
}

func (c *CompositionRoot) RateWriter() *jobs.DebouncedRateWriter {
	return c.rateWriter
}

func (c *CompositionRoot) CreateReconciler() *reconcile.Reconciler {
	return reconcile.New(c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateQuoteOrderCommandHandler() commands.QuoteOrderCommandHandler {
	return commands.NewQuoteOrderCommandHandler(
		c.orderUoWFactory(), c.tariffStore, c.engine, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateProposeAlternativeCommandHandler() commands.ProposeAlternativeCommandHandler {
	return commands.NewProposeAlternativeCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateBoxCommandHandler() commands.CreateBoxCommandHandler {
	return commands.NewCreateBoxCommandHandler(c.boxUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderToBoxCommandHandler() commands.AssignOrderToBoxCommandHandler {
	return commands.NewAssignOrderToBoxCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateUnassignOrderFromBoxCommandHandler() commands.UnassignOrderFromBoxCommandHandler {
	return commands.NewUnassignOrderFromBoxCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateSendBoxDirectlyCommandHandler() commands.SendBoxDirectlyCommandHandler {
	return commands.NewSendBoxDirectlyCommandHandler(c.boxUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUnpackBoxCommandHandler() commands.UnpackBoxCommandHandler {
	return commands.NewUnpackBoxCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDeleteBoxCommandHandler() commands.DeleteBoxCommandHandler {
	return commands.NewDeleteBoxCommandHandler(c.boxUoWFactory())
}

func (c *CompositionRoot) CreateCreateContainerCommandHandler() commands.CreateContainerCommandHandler {
	return commands.NewCreateContainerCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAssignBoxToContainerCommandHandler() commands.AssignBoxToContainerCommandHandler {
	return commands.NewAssignBoxToContainerCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateSendContainerCommandHandler() commands.SendContainerCommandHandler {
	return commands.NewSendContainerCommandHandler(c.fullUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeleteContainerCommandHandler() commands.DeleteContainerCommandHandler {
	return commands.NewDeleteContainerCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreatePatchTariffsCommandHandler() commands.PatchTariffsCommandHandler {
	return commands.NewPatchTariffsCommandHandler(c.tariffStore)
}

// CreateRefreshRatesCommandHandler builds the handler for manual refreshes:
// fetched rates are patched into the store immediately.
func (c *CompositionRoot) CreateRefreshRatesCommandHandler() commands.RefreshRatesCommandHandler {
	return commands.NewRefreshRatesCommandHandler(
		c.tariffStore, c.provider, directRateWriter{store: c.tariffStore}, c.logger)
}

// CreatePollingRefreshRatesCommandHandler builds the handler the cron job
// runs: fetched rates go through the debounced writer.
func (c *CompositionRoot) CreatePollingRefreshRatesCommandHandler() commands.RefreshRatesCommandHandler {
	return commands.NewRefreshRatesCommandHandler(
		c.tariffStore, c.provider, c.rateWriter, c.logger)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBoxContentsQueryHandler() queries.GetBoxContentsQueryHandler {
	return queries.NewGetBoxContentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShippedContainersQueryHandler() queries.GetShippedContainersQueryHandler {
	return queries.NewGetShippedContainersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) boxUoWFactory() commands.BoxUoWFactory {
	return FuncBoxUoWFactory(func() commands.BoxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBoxUoWFactory func() commands.BoxUoW

func (f FuncBoxUoWFactory) Create() commands.BoxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// directRateWriter patches the tariff store synchronously, for manual
// refreshes that must take effect before the HTTP response returns.
type directRateWriter struct {
	store ports.TariffStore
}

func (w directRateWriter) WriteRate(ctx context.Context, _ ports.RateKind, patch tariff.Patch) error {
	_, err := w.store.Patch(ctx, patch)
	return err
}
