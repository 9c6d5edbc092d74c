package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/answerking/answerking-api/services/menu/domain"
)

func intPtr(i int) *int { return &i }

func validSpec() ItemSpec {
	return ItemSpec{
		Name:        "Burger",
		Description: "Beef, bun.",
		Price:       decimal.RequireFromString("1.20"),
		Stock:       100,
		Calories:    intPtr(500),
	}
}

func TestNewItem(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *ItemSpec)
		wantErr error
	}{
		{"valid", func(*ItemSpec) {}, nil},
		{"no description", func(s *ItemSpec) { s.Description = "" }, nil},
		{"no calories", func(s *ItemSpec) { s.Calories = nil }, nil},
		{"free item", func(s *ItemSpec) { s.Price = decimal.Zero }, nil},
		{"name with digits", func(s *ItemSpec) { s.Name = "Burger 2" }, domain.ErrInvalidName},
		{"blank name", func(s *ItemSpec) { s.Name = "   " }, domain.ErrInvalidName},
		{"long name", func(s *ItemSpec) { s.Name = strings.Repeat("a", 51) }, domain.ErrInvalidName},
		{"tab in name", func(s *ItemSpec) { s.Name = "Big\tBurger" }, domain.ErrInvalidName},
		{"newline in description", func(s *ItemSpec) { s.Description = "Beef\nbun" }, domain.ErrInvalidDescription},
		{"bad description", func(s *ItemSpec) { s.Description = "50% off" }, domain.ErrInvalidDescription},
		{"negative price", func(s *ItemSpec) { s.Price = decimal.RequireFromString("-0.01") }, domain.ErrInvalidPrice},
		{"three decimals", func(s *ItemSpec) { s.Price = decimal.RequireFromString("1.005") }, domain.ErrInvalidPrice},
		{"price too large", func(s *ItemSpec) { s.Price = decimal.NewFromInt(MaxNumber + 1) }, domain.ErrInvalidPrice},
		{"negative stock", func(s *ItemSpec) { s.Stock = -1 }, domain.ErrInvalidStock},
		{"negative calories", func(s *ItemSpec) { s.Calories = intPtr(-5) }, domain.ErrInvalidCalories},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)
			it, err := NewItem(spec)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if it.Retired {
				t.Fatal("new item must not be retired")
			}
		})
	}
}

func TestNewItem_CompressesWhitespace(t *testing.T) {
	spec := validSpec()
	spec.Name = "  Big   Burger "
	spec.Description = "Beef,   bun."
	it, err := NewItem(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Name != "Big Burger" || it.Description != "Beef, bun." {
		t.Fatalf("got %q / %q", it.Name, it.Description)
	}
}

func TestItem_Replace(t *testing.T) {
	it, err := NewItem(validSpec())
	if err != nil {
		t.Fatal(err)
	}

	t.Run("same price", func(t *testing.T) {
		spec := validSpec()
		spec.Stock = 5
		changed, err := it.Replace(spec)
		if err != nil || changed {
			t.Fatalf("changed=%v err=%v", changed, err)
		}
		if it.Stock != 5 {
			t.Fatalf("stock = %d", it.Stock)
		}
	})

	t.Run("new price", func(t *testing.T) {
		spec := validSpec()
		spec.Price = decimal.RequireFromString("2.00")
		changed, err := it.Replace(spec)
		if err != nil || !changed {
			t.Fatalf("changed=%v err=%v", changed, err)
		}
	})

	t.Run("rejected spec changes nothing", func(t *testing.T) {
		before := *it
		spec := validSpec()
		spec.Name = "Fries"
		spec.Stock = -1
		if _, err := it.Replace(spec); !errors.Is(err, domain.ErrInvalidStock) {
			t.Fatalf("expected ErrInvalidStock, got %v", err)
		}
		if it.Name != before.Name || !it.Price.Equal(before.Price) {
			t.Fatal("item mutated by rejected replace")
		}
	})
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory(CategorySpec{Name: "Mains", ItemIDs: []int64{3, 1, 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.ItemIDs) != 2 || c.ItemIDs[0] != 3 || c.ItemIDs[1] != 1 {
		t.Fatalf("unexpected ids: %v", c.ItemIDs)
	}

	if _, err := NewCategory(CategorySpec{Name: "Mains 2"}); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := NewCategory(CategorySpec{Name: "Mains", ItemIDs: []int64{0}}); !errors.Is(err, domain.ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}
