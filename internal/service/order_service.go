package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campus-cafeteria/internal/domain"

	"github.com/google/uuid"
)

type OrderService struct {
	orders    OrderRepository
	carts     CartRepository
	tables    TableRepository
	menus     MenuRepository
	notifier  OrderNotifier
	publisher EventPublisher
}

func NewOrderService(orders OrderRepository, carts CartRepository, tables TableRepository, menus MenuRepository, notifier OrderNotifier, publisher EventPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		tables:    tables,
		menus:     menus,
		notifier:  notifier,
		publisher: publisher,
	}
}

// BuildFromCart snapshots a cart into a new, unsaved order.
func (s *OrderService) BuildFromCart(cart *domain.Cart, status domain.OrderStatus) *domain.Order {
	items := make([]domain.LineItem, len(cart.Items))
	copy(items, cart.Items)
	now := time.Now()
	return &domain.Order{
		ID:          uuid.NewString(),
		UserID:      cart.UserID,
		TableID:     cart.TableID,
		TableNumber: cart.TableNumber,
		Items:       items,
		TotalPrice:  cart.TotalPrice,
		Status:      status,
		OrderedAt:   now,
	}
}

// LoadCheckoutCart returns the user's cart for the table or an InvalidState
// error when there is nothing to order.
func (s *OrderService) LoadCheckoutCart(ctx context.Context, userID, tableID string) (*domain.Cart, error) {
	cart, err := s.carts.GetCart(ctx, userID, tableID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && cart.IsEmpty()) {
		return nil, domain.InvalidStatef("cart is empty")
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *OrderService) CreateFromCart(ctx context.Context, userID, tableID string) (*domain.Order, error) {
	cart, err := s.LoadCheckoutCart(ctx, userID, tableID)
	if err != nil {
		return nil, err
	}

	order := s.BuildFromCart(cart, domain.StatusInCart)
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	s.publish(ctx, domain.OrderEvent(domain.EventOrderCreated, order))
	return order, nil
}

func (s *OrderService) Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error) {
	table, err := s.tables.GetTable(ctx, req.TableID)
	if err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, domain.InvalidStatef("order has no items")
	}

	items, err := resolveLineItems(ctx, s.menus, req.Items)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		TableID:     table.ID,
		TableNumber: table.TableNumber,
		Items:       items,
		TotalPrice:  domain.SumLineItems(items),
		Status:      domain.StatusPending,
		OrderedAt:   time.Now(),
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	s.publish(ctx, domain.OrderEvent(domain.EventOrderCreated, order))
	return order, nil
}

// Ready is accepted from any status.
func (s *OrderService) Ready(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.setStatus(ctx, orderID, domain.StatusReady)
	if err != nil {
		return nil, err
	}
	if _, err := s.notifier.OrderReady(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Complete is accepted from any status.
func (s *OrderService) Complete(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.setStatus(ctx, orderID, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}
	if _, err := s.notifier.OrderCompleted(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckTransition(order.Status, domain.StatusCancelled); err != nil {
		return nil, err
	}
	return s.apply(ctx, order, domain.StatusCancelled)
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.GetOrder(ctx, orderID)
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListOrdersByUser(ctx, userID)
}

func (s *OrderService) setStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, order, status)
}

func (s *OrderService) apply(ctx context.Context, order *domain.Order, status domain.OrderStatus) (*domain.Order, error) {
	now := time.Now()
	order.Status = status
	order.UpdatedAt = now
	if status == domain.StatusCompleted {
		order.CompletedAt = &now
	}
	if err := s.orders.UpdateOrderStatus(ctx, order); err != nil {
		return nil, err
	}
	s.publish(ctx, domain.OrderEvent(domain.EventOrderStatusChanged, order))
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, msg domain.KafkaMessage) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		slog.Warn("event publish failed", "type", msg.Type, "order_id", msg.OrderID, "error", err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
