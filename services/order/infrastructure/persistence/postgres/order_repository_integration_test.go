package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/answerking/answerking-api/pkg/apperr"
	"github.com/answerking/answerking-api/pkg/database"
	"github.com/answerking/answerking-api/pkg/database/dbtest"
	orderdomain "github.com/answerking/answerking-api/services/order/domain"
	domainevents "github.com/answerking/answerking-api/services/order/domain/events"
	"github.com/answerking/answerking-api/services/order/domain/models"
	"github.com/answerking/answerking-api/services/order/infrastructure/persistence/postgres"
)

// OrderRepositoryIntegrationTestSuite runs the order repository against a
// real PostgreSQL container with the production migrations applied.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg      *dbtest.Postgres
	sqlDB   *sql.DB
	db      *database.Database
	repo    *postgres.OrderRepository
	catalog *postgres.ItemCatalog

	burger, coke models.MenuItem
}

func TestOrderRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

func (s *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := dbtest.Start(context.Background())
	s.Require().NoError(err)
	s.pg, s.sqlDB = pg, pg.DB

	s.db = database.New(s.sqlDB, nil)
	s.repo = postgres.NewOrderRepository(s.db, nil)
	s.catalog = postgres.NewItemCatalog(s.db)
}

func (s *OrderRepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(context.Background()))

	s.burger = s.insertItem("Burger", "1.20", false)
	s.coke = s.insertItem("Coke", "1.50", false)
}

func (s *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if s.pg != nil {
		s.Require().NoError(s.pg.Stop(context.Background()))
	}
}

func (s *OrderRepositoryIntegrationTestSuite) TestSaveAndGet() {
	ctx := context.Background()
	o := s.newOrder()
	s.Require().NoError(o.SetLine(s.burger, 2))
	s.Require().NoError(o.SetLine(s.coke, 1))

	s.Require().NoError(s.repo.Save(ctx, o))
	s.NotZero(o.ID)

	got, err := s.repo.GetByID(ctx, o.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, got.Status)
	s.Equal("5.10", got.Total.StringFixed(2))
	s.Require().Len(got.Lines, 2)
	s.Equal("Burger", got.Lines[0].ItemName)
	s.Equal("2.40", got.Lines[0].SubTotal.StringFixed(2))
	s.Equal("Coke", got.Lines[1].ItemName)
}

func (s *OrderRepositoryIntegrationTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(context.Background(), 999)
	s.ErrorIs(err, orderdomain.ErrOrderNotFound)
	s.True(apperr.IsNotFound(err))
}

func (s *OrderRepositoryIntegrationTestSuite) TestList() {
	ctx := context.Background()

	orders, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Empty(orders)

	first := s.newOrder()
	s.Require().NoError(first.SetLine(s.burger, 1))
	s.Require().NoError(s.repo.Save(ctx, first))
	second := s.newOrder()
	s.Require().NoError(s.repo.Save(ctx, second))

	orders, err = s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(orders, 2)
	s.Equal(first.ID, orders[0].ID)
	s.Len(orders[0].Lines, 1)
	s.Empty(orders[1].Lines)
}

func (s *OrderRepositoryIntegrationTestSuite) TestUpdate_SetLine() {
	ctx := context.Background()
	o := s.newOrder()
	s.Require().NoError(o.SetLine(s.burger, 2))
	s.Require().NoError(s.repo.Save(ctx, o))

	updated, err := s.repo.Update(ctx, o.ID, domainevents.ReasonLineSet, func(o *models.Order) error {
		return o.SetLine(s.coke, 1)
	})
	s.Require().NoError(err)
	s.Equal("5.10", updated.Total.StringFixed(2))

	got, err := s.repo.GetByID(ctx, o.ID)
	s.Require().NoError(err)
	s.Equal("5.10", got.Total.StringFixed(2))
	s.Require().Len(got.Lines, 2)
	s.Equal(s.burger.ID, got.Lines[0].ItemID, "line order must survive a rewrite")
}

func (s *OrderRepositoryIntegrationTestSuite) TestUpdate_FailedMutationPersistsNothing() {
	ctx := context.Background()
	o := s.newOrder()
	s.Require().NoError(o.SetLine(s.burger, 2))
	s.Require().NoError(s.repo.Save(ctx, o))

	_, err := s.repo.Update(ctx, o.ID, domainevents.ReasonLineSet, func(o *models.Order) error {
		return o.SetLine(s.burger, 0)
	})
	s.ErrorIs(err, orderdomain.ErrInvalidQuantity)

	got, err := s.repo.GetByID(ctx, o.ID)
	s.Require().NoError(err)
	s.Equal("2.40", got.Total.StringFixed(2))
	s.Equal(2, got.Lines[0].Quantity)
}

func (s *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	_, err := s.repo.Update(context.Background(), 404, domainevents.ReasonFields, func(*models.Order) error { return nil })
	s.ErrorIs(err, orderdomain.ErrOrderNotFound)
}

func (s *OrderRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	o := s.newOrder()
	s.Require().NoError(o.SetLine(s.burger, 2))
	s.Require().NoError(s.repo.Save(ctx, o))

	s.Require().NoError(s.repo.Delete(ctx, o.ID))

	_, err := s.repo.GetByID(ctx, o.ID)
	s.ErrorIs(err, orderdomain.ErrOrderNotFound)
	var lines int
	s.Require().NoError(s.sqlDB.QueryRow("SELECT count(*) FROM order_lines WHERE order_id = $1", o.ID).Scan(&lines))
	s.Zero(lines)

	s.ErrorIs(s.repo.Delete(ctx, o.ID), orderdomain.ErrOrderNotFound)
}

func (s *OrderRepositoryIntegrationTestSuite) TestRepriceItem() {
	ctx := context.Background()
	withBurger := s.newOrder()
	s.Require().NoError(withBurger.SetLine(s.burger, 2))
	s.Require().NoError(withBurger.SetLine(s.coke, 1))
	s.Require().NoError(s.repo.Save(ctx, withBurger))
	withoutBurger := s.newOrder()
	s.Require().NoError(withoutBurger.SetLine(s.coke, 1))
	s.Require().NoError(s.repo.Save(ctx, withoutBurger))

	changed, err := s.repo.RepriceItem(ctx, s.burger.ID, decimal.RequireFromString("2.00"))
	s.Require().NoError(err)
	s.Equal([]int64{withBurger.ID}, changed)

	got, err := s.repo.GetByID(ctx, withBurger.ID)
	s.Require().NoError(err)
	s.Equal("4.00", got.Lines[0].SubTotal.StringFixed(2))
	s.Equal("5.50", got.Total.StringFixed(2))

	other, err := s.repo.GetByID(ctx, withoutBurger.ID)
	s.Require().NoError(err)
	s.Equal("1.50", other.Total.StringFixed(2))
}

func (s *OrderRepositoryIntegrationTestSuite) TestRepriceItem_OverflowIsValidation() {
	ctx := context.Background()
	o := s.newOrder()
	s.Require().NoError(o.SetLine(s.burger, models.MaxQuantity))
	s.Require().NoError(s.repo.Save(ctx, o))

	_, err := s.repo.RepriceItem(ctx, s.burger.ID, decimal.NewFromInt(models.MaxQuantity))
	s.ErrorIs(err, orderdomain.ErrAmountTooLarge)
	s.True(apperr.IsValidation(err))

	got, err := s.repo.GetByID(ctx, o.ID)
	s.Require().NoError(err)
	s.Equal(models.MaxQuantity, got.Lines[0].Quantity)
	s.Equal(o.Total.StringFixed(2), got.Total.StringFixed(2))
}

func (s *OrderRepositoryIntegrationTestSuite) TestRepriceInsideOuterTransaction() {
	ctx := context.Background()
	o := s.newOrder()
	s.Require().NoError(o.SetLine(s.burger, 1))
	s.Require().NoError(s.repo.Save(ctx, o))

	err := s.db.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.RepriceItem(ctx, s.burger.ID, decimal.RequireFromString("3.00")); err != nil {
			return err
		}
		return apperr.Invalid("price", "rejected after reprice")
	})
	s.Require().Error(err)

	got, err := s.repo.GetByID(ctx, o.ID)
	s.Require().NoError(err)
	s.Equal("1.20", got.Total.StringFixed(2), "outer rollback must undo the reprice")
}

func (s *OrderRepositoryIntegrationTestSuite) TestItemCatalog_SkipsRetiredAndMissing() {
	ctx := context.Background()
	retired := s.insertItem("Old Burger", "0.99", true)

	found, err := s.catalog.FindAvailable(ctx, []int64{s.burger.ID, retired.ID, 12345})
	s.Require().NoError(err)
	s.Len(found, 1)
	s.Equal("1.20", found[s.burger.ID].Price.StringFixed(2))

	found, err = s.catalog.FindAvailable(ctx, nil)
	s.Require().NoError(err)
	s.Empty(found)
}

func (s *OrderRepositoryIntegrationTestSuite) TestItemCatalog_LocksRowsInsideTransaction() {
	ctx := context.Background()
	err := s.db.InTx(ctx, func(ctx context.Context) error {
		found, err := s.catalog.FindAvailable(ctx, []int64{s.burger.ID})
		s.Require().NoError(err)
		s.Len(found, 1)

		conn, err := s.sqlDB.Conn(context.Background())
		s.Require().NoError(err)
		defer conn.Close() //nolint:errcheck
		_, err = conn.ExecContext(context.Background(), "SET lock_timeout = '200ms'")
		s.Require().NoError(err)
		_, err = conn.ExecContext(context.Background(), "UPDATE items SET price = 9 WHERE id = $1", s.burger.ID)
		s.Error(err, "a price change must wait for the transaction that read the price")
		return nil
	})
	s.Require().NoError(err)

	_, err = s.sqlDB.ExecContext(ctx, "UPDATE items SET price = 9 WHERE id = $1", s.burger.ID)
	s.NoError(err, "the lock is released on commit")
}

func (s *OrderRepositoryIntegrationTestSuite) newOrder() *models.Order {
	addr, err := models.NewAddress("1 Main Street")
	s.Require().NoError(err)
	return models.NewOrder(addr)
}

func (s *OrderRepositoryIntegrationTestSuite) insertItem(name, price string, retired bool) models.MenuItem {
	var id int64
	err := s.sqlDB.QueryRow(
		"INSERT INTO items (name, price, stock, retired) VALUES ($1, $2, 10, $3) RETURNING id",
		name, price, retired,
	).Scan(&id)
	s.Require().NoError(err)
	return models.MenuItem{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}
