package postgres_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/answerking/answerking-api/pkg/apperr"
	"github.com/answerking/answerking-api/pkg/database"
	"github.com/answerking/answerking-api/pkg/database/dbtest"
	menudomain "github.com/answerking/answerking-api/services/menu/domain"
	"github.com/answerking/answerking-api/services/menu/domain/models"
	"github.com/answerking/answerking-api/services/menu/infrastructure/persistence/postgres"
)

type MenuRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *dbtest.Postgres
	items      *postgres.ItemRepository
	categories *postgres.CategoryRepository
}

func TestMenuRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(MenuRepositoryIntegrationTestSuite))
}

func (s *MenuRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := dbtest.Start(context.Background())
	s.Require().NoError(err)
	s.pg = pg

	db := database.New(pg.DB, nil)
	s.items = postgres.NewItemRepository(db, nil)
	s.categories = postgres.NewCategoryRepository(db, nil)
}

func (s *MenuRepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(context.Background()))
}

func (s *MenuRepositoryIntegrationTestSuite) TearDownSuite() {
	if s.pg != nil {
		s.Require().NoError(s.pg.Stop(context.Background()))
	}
}

func (s *MenuRepositoryIntegrationTestSuite) saveItem(name, price string) *models.Item {
	calories := 300
	it, err := models.NewItem(models.ItemSpec{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Stock:    10,
		Calories: &calories,
	})
	s.Require().NoError(err)
	s.Require().NoError(s.items.Save(context.Background(), it))
	return it
}

func (s *MenuRepositoryIntegrationTestSuite) TestItem_SaveGetList() {
	ctx := context.Background()
	burger := s.saveItem("Burger", "1.20")
	s.saveItem("Coke", "1.50")

	got, err := s.items.GetByID(ctx, burger.ID)
	s.Require().NoError(err)
	s.Equal(models.Name("Burger"), got.Name)
	s.Equal("1.20", got.Price.StringFixed(2))
	s.Require().NotNil(got.Calories)
	s.Equal(300, *got.Calories)
	s.Empty(got.Description)

	all, err := s.items.List(ctx)
	s.Require().NoError(err)
	s.Len(all, 2)

	_, err = s.items.GetByID(ctx, 999)
	s.ErrorIs(err, menudomain.ErrItemNotFound)
}

func (s *MenuRepositoryIntegrationTestSuite) TestItem_DuplicateNameConflicts() {
	s.saveItem("Burger", "1.20")

	dup, err := models.NewItem(models.ItemSpec{Name: "Burger", Price: decimal.RequireFromString("2.00")})
	s.Require().NoError(err)
	err = s.items.Save(context.Background(), dup)
	s.ErrorIs(err, menudomain.ErrItemAlreadyExists)
	s.True(apperr.IsConflict(err))
}

func (s *MenuRepositoryIntegrationTestSuite) TestItem_Update() {
	ctx := context.Background()
	burger := s.saveItem("Burger", "1.20")

	updated, err := s.items.Update(ctx, burger.ID, func(it *models.Item) error {
		_, err := it.Replace(models.ItemSpec{Name: "Cheese Burger", Price: decimal.RequireFromString("2.10"), Stock: 3})
		return err
	})
	s.Require().NoError(err)
	s.Equal(models.Name("Cheese Burger"), updated.Name)

	got, err := s.items.GetByID(ctx, burger.ID)
	s.Require().NoError(err)
	s.Equal("2.10", got.Price.StringFixed(2))
	s.Nil(got.Calories)
}

func (s *MenuRepositoryIntegrationTestSuite) TestItem_RetireOrDelete() {
	ctx := context.Background()
	loose := s.saveItem("Fries", "0.90")
	listed := s.saveItem("Burger", "1.20")

	cat, err := models.NewCategory(models.CategorySpec{Name: "Mains", ItemIDs: []int64{listed.ID}})
	s.Require().NoError(err)
	s.Require().NoError(s.categories.Save(ctx, cat))

	retired, err := s.items.RetireOrDelete(ctx, loose.ID)
	s.Require().NoError(err)
	s.False(retired)
	_, err = s.items.GetByID(ctx, loose.ID)
	s.ErrorIs(err, menudomain.ErrItemNotFound)

	retired, err = s.items.RetireOrDelete(ctx, listed.ID)
	s.Require().NoError(err)
	s.True(retired)
	got, err := s.items.GetByID(ctx, listed.ID)
	s.Require().NoError(err)
	s.True(got.Retired)

	available, err := s.items.AvailableIDs(ctx, []int64{listed.ID})
	s.Require().NoError(err)
	s.False(available[listed.ID])

	_, err = s.items.RetireOrDelete(ctx, 999)
	s.ErrorIs(err, menudomain.ErrItemNotFound)
}

func (s *MenuRepositoryIntegrationTestSuite) TestCategory_Lifecycle() {
	ctx := context.Background()
	burger := s.saveItem("Burger", "1.20")
	coke := s.saveItem("Coke", "1.50")

	cat, err := models.NewCategory(models.CategorySpec{Name: "Combo", Description: "Meal deals.", ItemIDs: []int64{coke.ID, burger.ID}})
	s.Require().NoError(err)
	s.Require().NoError(s.categories.Save(ctx, cat))
	s.Require().Len(cat.Items, 2)

	got, err := s.categories.GetByID(ctx, cat.ID)
	s.Require().NoError(err)
	s.Equal([]int64{coke.ID, burger.ID}, got.ItemIDs, "membership keeps request order")

	updated, err := s.categories.Update(ctx, cat.ID, func(c *models.Category) error {
		return c.Replace(models.CategorySpec{Name: "Combos", ItemIDs: []int64{burger.ID}})
	})
	s.Require().NoError(err)
	s.Equal([]int64{burger.ID}, updated.ItemIDs)

	items, err := s.categories.Items(ctx, cat.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(burger.ID, items[0].ID)

	s.Require().NoError(s.categories.Retire(ctx, cat.ID))
	got, err = s.categories.GetByID(ctx, cat.ID)
	s.Require().NoError(err)
	s.True(got.Retired)

	s.ErrorIs(s.categories.Retire(ctx, 999), menudomain.ErrCategoryNotFound)
	_, err = s.categories.Items(ctx, 999)
	s.ErrorIs(err, menudomain.ErrCategoryNotFound)
}

func (s *MenuRepositoryIntegrationTestSuite) TestCategory_UnknownItemAndDuplicateName() {
	ctx := context.Background()

	bad, err := models.NewCategory(models.CategorySpec{Name: "Ghosts", ItemIDs: []int64{404}})
	s.Require().NoError(err)
	s.ErrorIs(s.categories.Save(ctx, bad), menudomain.ErrUnknownItem)

	first, err := models.NewCategory(models.CategorySpec{Name: "Drinks"})
	s.Require().NoError(err)
	s.Require().NoError(s.categories.Save(ctx, first))
	second, err := models.NewCategory(models.CategorySpec{Name: "Drinks"})
	s.Require().NoError(err)
	s.ErrorIs(s.categories.Save(ctx, second), menudomain.ErrCategoryAlreadyExists)
}
