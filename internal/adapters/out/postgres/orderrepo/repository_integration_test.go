package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

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

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
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

	testOrder := suite.createPendingOrder(time.Now().UTC())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	categoryID := kernel.NewUUID()
	price := suite.money(12500)
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	original, err := order.NewOrder(
		kernel.NewUUID(),
		"Robin Vega",
		"+1-555-0171",
		"17 Cedar Lane",
		"boiler leaks on startup",
		&categoryID,
		price,
		true,
		createdAt,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Robin Vega", retrieved.ClientName())
	suite.Equal("+1-555-0171", retrieved.ClientPhone())
	suite.Equal("17 Cedar Lane", retrieved.Address())
	suite.Equal("boiler leaks on startup", retrieved.Problem())
	suite.Require().NotNil(retrieved.CategoryID())
	suite.True(retrieved.CategoryID().IsEqual(categoryID))
	suite.Equal(int64(12500), retrieved.Price().Amount())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.Worker())
	suite.True(retrieved.IsPremium())
	suite.False(retrieved.OnSite())
	suite.WithinDuration(createdAt, retrieved.CreatedAt(), time.Millisecond)

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

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleProgress_PersistsStatusAndFlags() {
	ctx := context.Background()

	workerID := kernel.NewUUID()
	testOrder := suite.createPendingOrder(time.Now().UTC())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Assign(workerID))
	suite.Require().NoError(testOrder.Start())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())
	suite.Require().NotNil(retrieved.Worker())
	suite.True(retrieved.Worker().IsEqual(workerID))
	suite.True(retrieved.OnSite())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Cancellation_ClearsWorkerColumn() {
	ctx := context.Background()

	workerID := kernel.NewUUID()
	testOrder := suite.createAssignedOrder(workerID)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Cancel("client moved away"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// The worker release must reach the database, not just the aggregate.
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
	suite.Equal("client moved away", retrieved.Reason())
	suite.Nil(retrieved.Worker())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	phantom := suite.createPendingOrder(time.Now().UTC())

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, phantom)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsNewestFirst() {
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	oldest := suite.createPendingOrder(base)
	middle := suite.createPendingOrder(base.Add(10 * time.Minute))
	newest := suite.createPendingOrder(base.Add(20 * time.Minute))

	for _, o := range []*order.Order{oldest, newest, middle} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(all, 3)
	suite.Equal(newest.ID(), all[0].ID())
	suite.Equal(middle.ID(), all[1].ID())
	suite.Equal(oldest.ID(), all[2].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInPendingStatus_ExcludesClaimedOrders() {
	ctx := context.Background()

	pending := suite.createPendingOrder(time.Now().UTC())
	claimed := suite.createAssignedOrder(kernel.NewUUID())

	for _, o := range []*order.Order{pending, claimed} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	pool, err := suite.repository.GetAllInPendingStatus(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(pool, 1)
	suite.Equal(pending.ID(), pool[0].ID())
	suite.Equal(order.Pending, pool[0].Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignPending_PendingOrder_WritesClaim() {
	ctx := context.Background()

	workerID := kernel.NewUUID()
	testOrder := suite.createPendingOrder(time.Now().UTC())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Assign(workerID))
	suite.Require().NoError(suite.repository.AssignPending(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, retrieved.Status())
	suite.Require().NotNil(retrieved.Worker())
	suite.True(retrieved.Worker().IsEqual(workerID))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignPending_AlreadyClaimed_ReturnsAlreadyAssigned() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder(time.Now().UTC())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First claim wins.
	suite.Require().NoError(testOrder.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.AssignPending(ctx, testOrder))

	// A rival loaded the order while it was still pending.
	rivalView := suite.restorePendingCopy(testOrder)
	suite.Require().NoError(rivalView.Assign(kernel.NewUUID()))

	err := suite.repository.AssignPending(ctx, rivalView)
	suite.Require().ErrorIs(err, order.ErrAlreadyAssigned)

	// The winner's claim is untouched.
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.Worker().IsEqual(*testOrder.Worker()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignPending_ConcurrentClaims_ExactlyOneWins() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder(time.Now().UTC())
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	const claimers = 5
	results := make(chan error, claimers)

	for range claimers {
		claim := suite.restorePendingCopy(testOrder)
		go func() {
			if err := claim.Assign(kernel.NewUUID()); err != nil {
				results <- err
				return
			}
			results <- suite.repository.AssignPending(ctx, claim)
		}()
	}

	var wins, losses int
	for range claimers {
		err := <-results
		switch {
		case err == nil:
			wins++
		default:
			suite.Require().ErrorIs(err, order.ErrAlreadyAssigned)
			losses++
		}
	}

	suite.Equal(1, wins, "exactly one concurrent claim must succeed")
	suite.Equal(claimers-1, losses)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, retrieved.Status())
	suite.NotNil(retrieved.Worker())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignPending_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	phantom := suite.createPendingOrder(time.Now().UTC())
	suite.Require().NoError(phantom.Assign(kernel.NewUUID()))

	err := suite.repository.AssignPending(ctx, phantom)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
				return err
			},
			expected: "not found",
		},
		{
			name: "add unconstructed order",
			operation: func() error {
				return suite.repository.Add(context.Background(), &order.Order{})
			},
			expected: "constructor",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUnreachableDatabase_SurfacesPersistenceFailure() {
	ctx := context.Background()

	connStr, err := suite.container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)

	// Sever the dedicated connection so every call fails in transport.
	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())

	repository := orderrepo.NewGormOrderRepository(db, new(MockAggregateTracker))

	_, err = repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrPersistenceFailure)

	_, err = repository.GetAllInPendingStatus(ctx)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrPersistenceFailure)

	err = repository.Add(ctx, suite.createPendingOrder(time.Now().UTC()))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrPersistenceFailure)
}

// createPendingOrder creates an unassigned order created at the given time.
func (suite *OrderRepositoryIntegrationTestSuite) createPendingOrder(createdAt time.Time) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		"Test Client",
		"+1-555-0100",
		"1 Main Street",
		"no heat",
		nil,
		suite.money(5000),
		false,
		createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

// createAssignedOrder creates an order already claimed by the given worker.
func (suite *OrderRepositoryIntegrationTestSuite) createAssignedOrder(workerID kernel.UUID) *order.Order {
	testOrder := suite.createPendingOrder(time.Now().UTC())
	suite.Require().NoError(testOrder.Assign(workerID))
	return testOrder
}

// restorePendingCopy rebuilds a pending snapshot of an order, simulating a
// rival request that read the row before any claim landed.
func (suite *OrderRepositoryIntegrationTestSuite) restorePendingCopy(original *order.Order) *order.Order {
	copyOrder, err := order.RestoreOrder(
		original.ID(),
		original.ClientName(),
		original.ClientPhone(),
		original.Address(),
		original.Problem(),
		original.CategoryID(),
		original.Price(),
		order.Pending,
		"",
		nil,
		original.IsPremium(),
		false,
		original.CreatedAt(),
	)
	suite.Require().NoError(err)
	return copyOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) money(amount int64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return m
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
