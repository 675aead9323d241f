package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/boxrepo"
	"fulfillment/internal/adapters/out/postgres/containerrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/tariffrepo"
	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/container"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tariff"
	"fulfillment/internal/pkg/errs"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
	tariffs   *tariffrepo.GormTariffStore
}

func (s *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&boxrepo.BoxDTO{},
		&containerrepo.ContainerDTO{},
		&tariffrepo.TariffDTO{},
	)
	s.Require().NoError(err)

	s.factory = postgres.NewGormUnitOfWorkFactory(db)
	s.tariffs = tariffrepo.NewGormTariffStore(db)
}

func (s *UnitOfWorkTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE orders, boxes, containers, tariffs CASCADE").Error)
}

func (s *UnitOfWorkTestSuite) newOrder(id int64, mode kernel.FreightMode) *order.Order {
	orderID, err := kernel.NewID(id)
	s.Require().NoError(err)

	aggregate, err := order.NewOrder(orderID, "client-42", "ceramic tiles", 3, mode)
	s.Require().NoError(err)
	return aggregate
}

func (s *UnitOfWorkTestSuite) quoted(aggregate *order.Order) *order.Order {
	s.Require().NoError(aggregate.MarkUnderReview())

	unitPrice, err := kernel.NewMoney("10.50")
	s.Require().NoError(err)
	freightPrice, err := kernel.NewMoney("3.20")
	s.Require().NoError(err)
	dims, err := kernel.NewDimensions(
		decimal.NewFromInt(30), decimal.NewFromInt(40), decimal.NewFromInt(50),
		decimal.RequireFromString("2.5"))
	s.Require().NoError(err)
	charge, err := kernel.NewMoney("23.03")
	s.Require().NoError(err)

	s.Require().NoError(aggregate.ApplyQuote(unitPrice, freightPrice, dims, charge))
	return aggregate
}

func (s *UnitOfWorkTestSuite) TestOrderRoundTrip() {
	ctx := context.Background()
	aggregate := s.quoted(s.newOrder(1, kernel.FreightModeAir))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	s.Require().NoError(uow.Commit(ctx))

	restored, err := s.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	s.Require().NoError(err)

	s.Equal(aggregate.ID(), restored.ID())
	s.Equal("client-42", restored.ClientRef())
	s.Equal(order.Quoted, restored.Status())
	s.Equal(kernel.FreightModeAir, restored.FreightMode())
	s.Require().NotNil(restored.FinalCharge())
	s.Equal("23.03", restored.FinalCharge().StringFixed())
	s.True(restored.Dimensions().WeightKg().Equal(decimal.RequireFromString("2.5")))
}

func (s *UnitOfWorkTestSuite) TestUpdateClearsNullableColumns() {
	ctx := context.Background()

	boxID, err := kernel.NewID(10)
	s.Require().NoError(err)
	packedBox, err := box.NewBox(boxID, "B-10")
	s.Require().NoError(err)

	aggregate := s.quoted(s.newOrder(2, kernel.FreightModeAir))
	s.Require().NoError(aggregate.ConfirmPayment())
	s.Require().NoError(aggregate.ValidatePayment())
	s.Require().NoError(aggregate.AssignToBox(boxID, false))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.BoxRepository().Add(ctx, packedBox))
	s.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	s.Require().NoError(uow.Commit(ctx))

	s.Require().NoError(aggregate.UnassignFromBox())

	uow = s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Update(ctx, aggregate))
	s.Require().NoError(uow.Commit(ctx))

	restored, err := s.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	s.Require().NoError(err)
	s.Nil(restored.Box(), "cleared box assignment must persist")
	s.Equal(order.ReadyToPack, restored.Status())
}

func (s *UnitOfWorkTestSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	aggregate := s.newOrder(3, kernel.FreightModeMaritime)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	s.Require().NoError(uow.Rollback(ctx))

	_, err := s.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UnitOfWorkTestSuite) TestContainerTrackingRoundTrip() {
	ctx := context.Background()

	containerID, err := kernel.NewID(20)
	s.Require().NoError(err)
	aggregate, err := container.NewContainer(containerID, "C-20")
	s.Require().NoError(err)
	s.Require().NoError(aggregate.ReceiveBox())

	eta := time.Now().Add(14 * 24 * time.Hour).UTC().Truncate(time.Second)
	s.Require().NoError(aggregate.MarkShipped(container.TrackingInfo{
		Number:  "MSKU1234567",
		Carrier: "Maersk",
		Link:    "https://tracking.example/MSKU1234567",
		ETA:     &eta,
	}))

	repo := containerrepo.NewGormContainerRepository(s.db)
	s.Require().NoError(repo.Add(ctx, aggregate))

	restored, err := repo.Get(ctx, containerID)
	s.Require().NoError(err)
	s.Equal(container.Shipped, restored.Status())
	s.Equal("MSKU1234567", restored.Tracking().Number)
	s.Require().NotNil(restored.Tracking().ETA)
	s.True(eta.Equal(restored.Tracking().ETA.UTC()))
	s.NotNil(restored.ShippedAt())
}

func (s *UnitOfWorkTestSuite) TestGetAllByBox() {
	ctx := context.Background()

	boxID, err := kernel.NewID(30)
	s.Require().NoError(err)
	packedBox, err := box.NewBox(boxID, "B-30")
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.BoxRepository().Add(ctx, packedBox))
	for i := int64(4); i <= 6; i++ {
		member := s.quoted(s.newOrder(i, kernel.FreightModeAir))
		s.Require().NoError(member.ConfirmPayment())
		s.Require().NoError(member.ValidatePayment())
		s.Require().NoError(member.AssignToBox(boxID, false))
		s.Require().NoError(uow.OrderRepository().Add(ctx, member))
	}
	s.Require().NoError(uow.Commit(ctx))

	members, err := s.factory.Create().OrderRepository().GetAllByBox(ctx, boxID)
	s.Require().NoError(err)
	s.Require().Len(members, 3)
	for i, member := range members {
		s.Equal(int64(i+4), member.ID().Int64(), "members must be sorted by id")
		s.Equal(order.Packed, member.Status())
	}
}

func (s *UnitOfWorkTestSuite) TestTariffPatchKeepsUnnamedFields() {
	ctx := context.Background()

	initial := tariff.Tariff{
		AirRatePerKg:         decimal.RequireFromString("0.90"),
		SeaRatePerCubicMeter: decimal.RequireFromString("180"),
		MarginPercent:        decimal.RequireFromString("25"),
		FxRateUSD:            decimal.RequireFromString("7.25"),
		FxRateCNY:            decimal.RequireFromString("1.00"),
		AutoUpdateFiat:       true,
		Version:              1,
		UpdatedAt:            time.Now().UTC(),
	}
	s.Require().NoError(s.tariffs.Seed(ctx, initial))

	margin := decimal.RequireFromString("30")
	updated, err := s.tariffs.Patch(ctx, tariff.Patch{MarginPercent: &margin})
	s.Require().NoError(err)

	s.True(updated.MarginPercent.Equal(margin))
	s.True(updated.FxRateUSD.Equal(initial.FxRateUSD), "unnamed fields keep their stored values")
	s.Equal(int64(2), updated.Version)

	current, err := s.tariffs.Get(ctx)
	s.Require().NoError(err)
	s.True(current.MarginPercent.Equal(margin))
	s.True(current.AutoUpdateFiat)
}

func (s *UnitOfWorkTestSuite) TestSeedDoesNotOverwrite() {
	ctx := context.Background()

	first := tariff.Tariff{FxRateUSD: decimal.RequireFromString("7.25"), Version: 1}
	s.Require().NoError(s.tariffs.Seed(ctx, first))

	second := tariff.Tariff{FxRateUSD: decimal.RequireFromString("9.99"), Version: 1}
	s.Require().NoError(s.tariffs.Seed(ctx, second))

	current, err := s.tariffs.Get(ctx)
	s.Require().NoError(err)
	s.True(current.FxRateUSD.Equal(first.FxRateUSD))
}

func (s *UnitOfWorkTestSuite) TestDeleteEmptyBox() {
	ctx := context.Background()

	boxID, err := kernel.NewID(40)
	s.Require().NoError(err)
	emptyBox, err := box.NewBox(boxID, "B-40")
	s.Require().NoError(err)

	repo := boxrepo.NewGormBoxRepository(s.db)
	s.Require().NoError(repo.Add(ctx, emptyBox))
	s.Require().NoError(repo.Delete(ctx, boxID))

	_, err = repo.Get(ctx, boxID)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
