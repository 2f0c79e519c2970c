package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/domain/model/staff"
)

var ErrSeedUoWFactoryIsRequired = errors.New("seed unit of work factory is required")

// SeedResult counts what was registered in the coordinator.
type SeedResult struct {
	MenuItems int
	Chefs     int
	Couriers  int
	Customers int
}

// SeedRestaurantCommandHandler reads the seed data in one read transaction and
// registers it with the coordinator.
type SeedRestaurantCommandHandler struct {
	restaurant *restaurant.Restaurant
	uowFactory SeedUoWFactory
	logger     *slog.Logger
}

func NewSeedRestaurantCommandHandler(
	r *restaurant.Restaurant,
	uowFactory SeedUoWFactory,
	logger *slog.Logger,
) SeedRestaurantCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return SeedRestaurantCommandHandler{restaurant: r, uowFactory: uowFactory, logger: logger}
}

func (h *SeedRestaurantCommandHandler) Handle(ctx context.Context, cmd SeedRestaurantCommand) (SeedResult, error) {
	if err := cmd.Validate(); err != nil {
		return SeedResult{}, err
	}
	if h.restaurant == nil {
		return SeedResult{}, ErrRestaurantIsRequired
	}
	if h.uowFactory == nil {
		return SeedResult{}, ErrSeedUoWFactoryIsRequired
	}

	data, err := h.load(ctx)
	if err != nil {
		return SeedResult{}, err
	}

	result, err := h.register(data)
	if err != nil {
		return result, err
	}

	h.logger.InfoContext(ctx, "restaurant seeded",
		"menu_items", result.MenuItems,
		"chefs", result.Chefs,
		"couriers", result.Couriers,
		"customers", result.Customers,
	)

	if cmd.Open() {
		if err := h.restaurant.Open(); err != nil {
			return result, err
		}
		h.logger.InfoContext(ctx, "restaurant opened", "name", h.restaurant.Name())
	}

	return result, nil
}

type seedData struct {
	items     []*menu.MenuItem
	chefs     []*staff.Chef
	couriers  []*staff.Courier
	customers []*customer.Customer
}

func (h *SeedRestaurantCommandHandler) load(ctx context.Context) (data seedData, err error) {
	uow := h.uowFactory.Create()

	if err = uow.Begin(ctx); err != nil {
		return seedData{}, err
	}

	defer func() {
		if err != nil {
			_ = uow.Rollback(ctx)
		}
	}()

	if data.items, err = uow.MenuRepository().GetAll(ctx); err != nil {
		return seedData{}, fmt.Errorf("load menu: %w", err)
	}
	if data.chefs, err = uow.StaffRepository().GetAllChefs(ctx); err != nil {
		return seedData{}, fmt.Errorf("load chefs: %w", err)
	}
	if data.couriers, err = uow.StaffRepository().GetAllCouriers(ctx); err != nil {
		return seedData{}, fmt.Errorf("load couriers: %w", err)
	}
	if data.customers, err = uow.CustomerRepository().GetAll(ctx); err != nil {
		return seedData{}, fmt.Errorf("load customers: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return seedData{}, err
	}
	return data, nil
}

func (h *SeedRestaurantCommandHandler) register(data seedData) (SeedResult, error) {
	var result SeedResult

	for _, item := range data.items {
		if err := h.restaurant.AddMenuItem(item); err != nil {
			return result, err
		}
		result.MenuItems++
	}
	for _, c := range data.chefs {
		if err := h.restaurant.AddChef(c); err != nil {
			return result, err
		}
		result.Chefs++
	}
	for _, c := range data.couriers {
		if err := h.restaurant.AddDeliveryStaff(c); err != nil {
			return result, err
		}
		result.Couriers++
	}
	for _, c := range data.customers {
		if err := h.restaurant.RegisterCustomer(c); err != nil {
			return result, err
		}
		result.Customers++
	}

	return result, nil
}
