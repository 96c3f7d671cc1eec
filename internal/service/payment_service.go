package service

import (
	"context"
	"log/slog"
	"time"

	"campus-cafeteria/internal/domain"

	"github.com/google/uuid"
)

type PaymentService struct {
	payments  PaymentRepository
	tables    TableRepository
	orders    *OrderService
	publisher EventPublisher
}

func NewPaymentService(payments PaymentRepository, tables TableRepository, orders *OrderService, publisher EventPublisher) *PaymentService {
	return &PaymentService{
		payments:  payments,
		tables:    tables,
		orders:    orders,
		publisher: publisher,
	}
}

// Process settles the user's cart for a table. The order, its history
// counters, the payment, the table occupancy and the cart removal are
// written in one transaction.
func (s *PaymentService) Process(ctx context.Context, userID string, req domain.PaymentRequest) (*domain.Payment, error) {
	table, err := s.tables.GetTable(ctx, req.TableID)
	if err != nil {
		return nil, err
	}

	cart, err := s.orders.LoadCheckoutCart(ctx, userID, table.ID)
	if err != nil {
		return nil, err
	}

	if req.Amount == nil || !req.Amount.Equal(cart.TotalPrice) {
		return nil, domain.InvalidStatef("amount mismatch: cart total is %s", cart.TotalPrice.String())
	}

	order := s.orders.BuildFromCart(cart, domain.StatusInCart)
	if err := domain.CheckTransition(order.Status, domain.StatusPayed); err != nil {
		return nil, err
	}
	order.Status = domain.StatusPayed

	now := time.Now()
	payment := domain.Payment{
		ID:      uuid.NewString(),
		OrderID: order.ID,
		UserID:  userID,
		TableID: table.ID,
		Amount:  *req.Amount,
		Method:  req.PaymentMethod,
		Status:  domain.PaymentCompleted,
		PaidAt:  &now,
	}

	checkout := &domain.Checkout{
		Order:       *order,
		Payment:     payment,
		TableID:     table.ID,
		UserID:      userID,
		CartID:      cart.ID,
		CartVersion: cart.UpdatedAt,
	}
	if err := s.payments.Checkout(ctx, checkout); err != nil {
		return nil, err
	}
	slog.Info("checkout committed", "order_id", order.ID, "payment_id", payment.ID, "table_id", table.ID)

	s.publish(ctx, domain.OrderEvent(domain.EventOrderCreated, &checkout.Order))
	s.publish(ctx, domain.OrderEvent(domain.EventOrderPaid, &checkout.Order))

	return &checkout.Payment, nil
}

func (s *PaymentService) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	return s.payments.GetPaymentByOrder(ctx, orderID)
}

func (s *PaymentService) ListByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	return s.payments.ListPaymentsByUser(ctx, userID)
}

func (s *PaymentService) publish(ctx context.Context, msg domain.KafkaMessage) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		slog.Warn("event publish failed", "type", msg.Type, "order_id", msg.OrderID, "error", err)
	}
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
