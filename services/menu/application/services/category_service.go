package services

import (
	"context"
	"fmt"

	"github.com/answerking/answerking-api/pkg/logger"
	"github.com/answerking/answerking-api/services/menu/domain/models"
	"github.com/answerking/answerking-api/services/menu/domain/repositories"
	domainsvcs "github.com/answerking/answerking-api/services/menu/domain/services"
)

// CategoryService manages categories and their item membership.
type CategoryService struct {
	repo  repositories.CategoryRepository
	items repositories.ItemRepository
	log   logger.Logger
}

// NewCategoryService returns a CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, items repositories.ItemRepository, log logger.Logger) *CategoryService {
	return &CategoryService{repo: repo, items: items, log: log}
}

// List returns every category with its items.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Get returns one category with its items.
func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Create saves a new category. Every listed item must exist and not be retired.
func (s *CategoryService) Create(ctx context.Context, spec models.CategorySpec) (*models.Category, error) {
	c, err := models.NewCategory(spec)
	if err != nil {
		return nil, err
	}
	if err := s.checkMembership(ctx, c.ItemIDs); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return c, nil
}

// Replace overwrites name, description and membership of a category.
func (s *CategoryService) Replace(ctx context.Context, id int64, spec models.CategorySpec) (*models.Category, error) {
	c, err := s.repo.Update(ctx, id, func(c *models.Category) error {
		if err := c.Replace(spec); err != nil {
			return err
		}
		return s.checkMembership(ctx, c.ItemIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("replace category: %w", err)
	}
	return c, nil
}

// Retire marks the category retired. Retiring twice succeeds.
func (s *CategoryService) Retire(ctx context.Context, id int64) error {
	if err := s.repo.Retire(ctx, id); err != nil {
		return fmt.Errorf("retire category: %w", err)
	}
	s.log.InfoContext(ctx, "category retired", "category_id", id)
	return nil
}

// Items returns the items of a category in membership order.
func (s *CategoryService) Items(ctx context.Context, id int64) ([]*models.Item, error) {
	items, err := s.repo.Items(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list category items: %w", err)
	}
	return items, nil
}

func (s *CategoryService) checkMembership(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	available, err := s.items.AvailableIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("check items: %w", err)
	}
	return domainsvcs.CheckMembership(ids, available)
}
