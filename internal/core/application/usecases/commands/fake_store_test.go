package commands_test

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/container"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// fakeStore is an in-memory store for cascade tests. Mutations only become
// visible on commit, mirroring the real unit of work; failUpdateOrder
// injects a persistence failure for one order id to exercise saga
// compensation.
type fakeStore struct {
	orders     map[int64]*order.Order
	boxes      map[int64]*box.Box
	containers map[int64]*container.Container

	failUpdateOrder int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:     make(map[int64]*order.Order),
		boxes:      make(map[int64]*box.Box),
		containers: make(map[int64]*container.Container),
	}
}

func (s *fakeStore) Create() commands.UoW {
	return &fakeUoW{store: s}
}

// fakeBoxFactory adapts the store to the narrower BoxUoWFactory.
type fakeBoxFactory struct{ store *fakeStore }

func (f *fakeBoxFactory) Create() commands.BoxUoW {
	return &fakeUoW{store: f.store}
}

type fakeUoW struct {
	store   *fakeStore
	pending []func()
	active  bool
}

func (u *fakeUoW) Begin(context.Context) error {
	u.active = true
	u.pending = nil
	return nil
}

func (u *fakeUoW) Commit(context.Context) error {
	if !u.active {
		return errors.New("no active transaction")
	}
	for _, apply := range u.pending {
		apply()
	}
	u.active = false
	return nil
}

func (u *fakeUoW) Rollback(context.Context) error {
	u.pending = nil
	u.active = false
	return nil
}

func (u *fakeUoW) OrderRepository() ports.OrderRepository         { return &fakeOrderRepo{uow: u} }
func (u *fakeUoW) BoxRepository() ports.BoxRepository             { return &fakeBoxRepo{uow: u} }
func (u *fakeUoW) ContainerRepository() ports.ContainerRepository { return &fakeContainerRepo{uow: u} }

type fakeOrderRepo struct{ uow *fakeUoW }

func (r *fakeOrderRepo) Add(_ context.Context, o *order.Order) error {
	r.uow.pending = append(r.uow.pending, func() { r.uow.store.orders[o.ID().Int64()] = o })
	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	if r.uow.store.failUpdateOrder == o.ID().Int64() {
		return fmt.Errorf("update rejected for order %d", o.ID().Int64())
	}
	r.uow.pending = append(r.uow.pending, func() { r.uow.store.orders[o.ID().Int64()] = o })
	return nil
}

func (r *fakeOrderRepo) Get(_ context.Context, orderID kernel.ID) (*order.Order, error) {
	stored, ok := r.uow.store.orders[orderID.Int64()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}
	return copyOrder(stored)
}

func (r *fakeOrderRepo) GetAllByBox(_ context.Context, boxID kernel.ID) ([]*order.Order, error) {
	var result []*order.Order
	for _, stored := range r.uow.store.orders {
		if stored.Box() != nil && *stored.Box() == boxID {
			rehydrated, err := copyOrder(stored)
			if err != nil {
				return nil, err
			}
			result = append(result, rehydrated)
		}
	}
	return result, nil
}

// copyOrder rehydrates a detached aggregate the way a real repository
// would, so uncommitted in-memory mutations never leak between loads.
func copyOrder(stored *order.Order) (*order.Order, error) {
	return order.RestoreOrder(stored.ID(), stored.ClientRef(), stored.Description(),
		stored.Quantity(), stored.Status(), stored.FreightMode(),
		stored.UnitPrice(), stored.FreightPrice(), stored.Dimensions(),
		stored.FinalCharge(), stored.Box(), stored.AlternativeProposal(),
		stored.CreatedAt(), stored.UpdatedAt())
}

type fakeBoxRepo struct{ uow *fakeUoW }

func (r *fakeBoxRepo) Add(_ context.Context, b *box.Box) error {
	r.uow.pending = append(r.uow.pending, func() { r.uow.store.boxes[b.ID().Int64()] = b })
	return nil
}

func (r *fakeBoxRepo) Update(_ context.Context, b *box.Box) error {
	r.uow.pending = append(r.uow.pending, func() { r.uow.store.boxes[b.ID().Int64()] = b })
	return nil
}

func (r *fakeBoxRepo) Delete(_ context.Context, boxID kernel.ID) error {
	r.uow.pending = append(r.uow.pending, func() { delete(r.uow.store.boxes, boxID.Int64()) })
	return nil
}

func (r *fakeBoxRepo) Get(_ context.Context, boxID kernel.ID) (*box.Box, error) {
	stored, ok := r.uow.store.boxes[boxID.Int64()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("boxID", boxID)
	}
	return copyBox(stored)
}

func (r *fakeBoxRepo) GetAllByContainer(_ context.Context, containerID kernel.ID) ([]*box.Box, error) {
	var result []*box.Box
	for _, stored := range r.uow.store.boxes {
		if stored.Container() != nil && *stored.Container() == containerID {
			rehydrated, err := copyBox(stored)
			if err != nil {
				return nil, err
			}
			result = append(result, rehydrated)
		}
	}
	return result, nil
}

func copyBox(stored *box.Box) (*box.Box, error) {
	return box.RestoreBox(stored.ID(), stored.Name(), stored.Status(),
		stored.Container(), stored.CreatedAt())
}

type fakeContainerRepo struct{ uow *fakeUoW }

func (r *fakeContainerRepo) Add(_ context.Context, c *container.Container) error {
	r.uow.pending = append(r.uow.pending, func() { r.uow.store.containers[c.ID().Int64()] = c })
	return nil
}

func (r *fakeContainerRepo) Update(_ context.Context, c *container.Container) error {
	r.uow.pending = append(r.uow.pending, func() { r.uow.store.containers[c.ID().Int64()] = c })
	return nil
}

func (r *fakeContainerRepo) Delete(_ context.Context, containerID kernel.ID) error {
	r.uow.pending = append(r.uow.pending, func() { delete(r.uow.store.containers, containerID.Int64()) })
	return nil
}

func (r *fakeContainerRepo) Get(_ context.Context, containerID kernel.ID) (*container.Container, error) {
	stored, ok := r.uow.store.containers[containerID.Int64()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("containerID", containerID)
	}
	return container.RestoreContainer(stored.ID(), stored.Name(), stored.Status(),
		stored.Tracking(), stored.ShippedAt(), stored.CreatedAt())
}
