package cmd

import (
	"fmt"

	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	calculator services.PricingCalculator
	numbers    *services.OrderNumberGenerator
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	packagingFee, err := kernel.MoneyFromString(configs.PackagingFee)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid PACKAGING_FEE: %w", err)
	}
	deliveryFee, err := kernel.MoneyFromString(configs.DeliveryFee)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid DELIVERY_FEE: %w", err)
	}
	feePolicy, err := services.NewFixedFeePolicy(packagingFee, deliveryFee)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator: services.NewPricingCalculator(feePolicy),
		// Shared across handlers so concurrent requests draw from one sequence.
		numbers: services.NewOrderNumberGenerator(configs.OrderNumberPrefix),
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.calculator, c.numbers)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	// Reads go through the repository outside any transaction.
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrdersSummaryQueryHandler() queries.GetOrdersSummaryQueryHandler {
	return queries.NewGetOrdersSummaryQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
