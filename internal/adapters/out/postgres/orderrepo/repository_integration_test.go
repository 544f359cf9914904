package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.placedOrder("FD-20260830-000000001", "u1")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)

	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_Fails() {
	ctx := context.Background()

	first := suite.placedOrder("FD-20260830-000000042", "u1")
	second := suite.placedOrder("FD-20260830-000000042", "u2")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Unique index on the number column is the backstop against generator
	// collisions after a restart.
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.placedOrder("FD-20260830-000000007", "u1")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal(original.Number(), retrieved.Number())
	suite.Equal(original.UserID(), retrieved.UserID())
	suite.Equal(original.MerchantID(), retrieved.MerchantID())
	suite.Equal(original.Remark(), retrieved.Remark())
	suite.Equal(order.Created, retrieved.Status())
	suite.True(original.DeliveryInfo().IsEqual(retrieved.DeliveryInfo()))
	suite.True(original.Pricing().IsEqual(retrieved.Pricing()))
	suite.WithinDuration(original.CreatedAt(), retrieved.CreatedAt(), time.Millisecond)

	originalItems := original.Items()
	retrievedItems := retrieved.Items()
	suite.Require().Len(retrievedItems, len(originalItems))
	for i, item := range originalItems {
		suite.True(item.IsEqual(retrievedItems[i]), "item %d mismatch", i)
		suite.Equal(item.Quantity(), retrievedItems[i].Quantity())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_PreservesItemOrder() {
	ctx := context.Background()

	items := make([]order.Item, 0, 5)
	for i := range 5 {
		price, err := kernel.MoneyFromString("1.50")
		suite.Require().NoError(err)
		item, err := order.NewItem(fmt.Sprintf("d%d", i), fmt.Sprintf("Dish %d", i), i+1, price)
		suite.Require().NoError(err)
		items = append(items, item)
	}
	testOrder := suite.placedOrderWithItems("FD-20260830-000000008", "u1", items)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	retrievedItems := retrieved.Items()
	suite.Require().Len(retrievedItems, 5)
	for i, item := range retrievedItems {
		suite.Equal(fmt.Sprintf("d%d", i), item.DishID())
	}
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InvalidUUID_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.UUID{})
	suite.Require().Error(err)
	suite.ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

// placedOrder creates a valid order with two item lines.
func (suite *OrderRepositoryIntegrationTestSuite) placedOrder(number string, userID string) *order.Order {
	price1, err := kernel.MoneyFromString("15.00")
	suite.Require().NoError(err)
	item1, err := order.NewItem("d1", "Kung Pao Chicken", 2, price1)
	suite.Require().NoError(err)

	price2, err := kernel.MoneyFromString("8.50")
	suite.Require().NoError(err)
	item2, err := order.NewItem("d2", "Spring Rolls", 1, price2)
	suite.Require().NoError(err)

	return suite.placedOrderWithItems(number, userID, []order.Item{item1, item2})
}

func (suite *OrderRepositoryIntegrationTestSuite) placedOrderWithItems(
	number string, userID string, items []order.Item,
) *order.Order {
	delivery, err := order.NewDeliveryInfo("Zhang Wei", "13812345678", "88 Nanjing Rd")
	suite.Require().NoError(err)

	itemsTotal := kernel.ZeroMoney()
	for _, item := range items {
		lineTotal, totalErr := item.Total()
		suite.Require().NoError(totalErr)
		itemsTotal, totalErr = itemsTotal.Add(lineTotal)
		suite.Require().NoError(totalErr)
	}
	packagingFee, err := kernel.MoneyFromString("2.00")
	suite.Require().NoError(err)
	deliveryFee, err := kernel.MoneyFromString("5.00")
	suite.Require().NoError(err)
	pricing, err := order.NewPricing(itemsTotal, packagingFee, deliveryFee)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), number, userID, "m1", items, delivery, "extra chili", pricing,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
