package service

import (
	"context"
	"errors"

	"campus-cafeteria/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartService struct {
	carts  CartRepository
	tables TableRepository
	menus  MenuRepository
}

func NewCartService(carts CartRepository, tables TableRepository, menus MenuRepository) *CartService {
	return &CartService{carts: carts, tables: tables, menus: menus}
}

func (s *CartService) GetOrCreate(ctx context.Context, userID, tableID string) (*domain.Cart, error) {
	table, err := s.tables.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.GetCart(ctx, userID, tableID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return s.carts.CreateCartIfAbsent(ctx, &domain.Cart{
		ID:          uuid.NewString(),
		UserID:      userID,
		TableID:     table.ID,
		TableNumber: table.TableNumber,
		Items:       []domain.LineItem{},
		TotalPrice:  decimal.Zero,
	})
}

// AddItems resolves every menu before the cart is touched, so a single
// unknown menu leaves the cart as it was.
func (s *CartService) AddItems(ctx context.Context, userID, tableID string, items []domain.CartItemRequest) (*domain.Cart, error) {
	if len(items) == 0 {
		return nil, domain.InvalidStatef("no items to add")
	}

	lines, err := resolveLineItems(ctx, s.menus, items)
	if err != nil {
		return nil, err
	}

	cart, err := s.GetOrCreate(ctx, userID, tableID)
	if err != nil {
		return nil, err
	}

	cart.Items = append(cart.Items, lines...)
	cart.Recalculate()

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, userID, tableID string) error {
	return s.carts.DeleteCart(ctx, userID, tableID)
}

// resolveLineItems snapshots menu name and price for each requested item.
func resolveLineItems(ctx context.Context, menus MenuRepository, items []domain.CartItemRequest) ([]domain.LineItem, error) {
	lines := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		menu, err := menus.GetMenu(ctx, item.MenuID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.LineItem{
			MenuID:            menu.ID,
			MenuName:          menu.Name,
			Quantity:          item.Quantity,
			UnitPrice:         menu.Price,
			SpicinessLevel:    item.SpicinessLevel,
			RiceAmount:        item.RiceAmount,
			AdditionalOptions: item.AdditionalOptions,
			Comment:           item.Comment,
		})
	}
	return lines, nil
}

var _ CartServiceInterface = (*CartService)(nil)
