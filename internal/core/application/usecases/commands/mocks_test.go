package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/container"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tariff"
	"fulfillment/internal/core/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func id(t *testing.T, v int64) kernel.ID {
	t.Helper()
	value, err := kernel.NewID(v)
	require.NoError(t, err)
	return value
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(s)
	require.NoError(t, err)
	return m
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, orderID kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByBox(ctx context.Context, boxID kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockBoxRepository struct{ mock.Mock }

func (m *MockBoxRepository) Add(ctx context.Context, b *box.Box) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBoxRepository) Update(ctx context.Context, b *box.Box) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBoxRepository) Delete(ctx context.Context, boxID kernel.ID) error {
	args := m.Called(ctx, boxID)
	return args.Error(0)
}

func (m *MockBoxRepository) Get(ctx context.Context, boxID kernel.ID) (*box.Box, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*box.Box), args.Error(1)
}

func (m *MockBoxRepository) GetAllByContainer(ctx context.Context, containerID kernel.ID) ([]*box.Box, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*box.Box), args.Error(1)
}

type MockContainerRepository struct{ mock.Mock }

func (m *MockContainerRepository) Add(ctx context.Context, c *container.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContainerRepository) Update(ctx context.Context, c *container.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContainerRepository) Delete(ctx context.Context, containerID kernel.ID) error {
	args := m.Called(ctx, containerID)
	return args.Error(0)
}

func (m *MockContainerRepository) Get(ctx context.Context, containerID kernel.ID) (*container.Container, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*container.Container), args.Error(1)
}

// MockUoW satisfies every UoW interface the handlers use; tests register
// only the repositories a handler actually touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BoxRepository() ports.BoxRepository {
	args := m.Called()
	return args.Get(0).(ports.BoxRepository)
}

func (m *MockUoW) ContainerRepository() ports.ContainerRepository {
	args := m.Called()
	return args.Get(0).(ports.ContainerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockBoxUoWFactory struct{ mock.Mock }

func (m *MockBoxUoWFactory) Create() commands.BoxUoW {
	args := m.Called()
	return args.Get(0).(commands.BoxUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockTariffStore struct{ mock.Mock }

func (m *MockTariffStore) Get(ctx context.Context) (tariff.Tariff, error) {
	args := m.Called(ctx)
	return args.Get(0).(tariff.Tariff), args.Error(1)
}

func (m *MockTariffStore) Patch(ctx context.Context, patch tariff.Patch) (tariff.Tariff, error) {
	args := m.Called(ctx, patch)
	return args.Get(0).(tariff.Tariff), args.Error(1)
}

type MockRateProvider struct{ mock.Mock }

func (m *MockRateProvider) Fetch(ctx context.Context, kind ports.RateKind, side ports.RateSide) (ports.RateQuote, error) {
	args := m.Called(ctx, kind, side)
	return args.Get(0).(ports.RateQuote), args.Error(1)
}

type MockPayerNotifier struct{ mock.Mock }

func (m *MockPayerNotifier) NotifyStatusChanged(ctx context.Context, orderID kernel.ID, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type MockRateWriter struct{ mock.Mock }

func (m *MockRateWriter) WriteRate(ctx context.Context, kind ports.RateKind, patch tariff.Patch) error {
	args := m.Called(ctx, kind, patch)
	return args.Error(0)
}
