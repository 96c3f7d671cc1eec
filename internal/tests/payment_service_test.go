package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-cafeteria/internal/domain"
	"campus-cafeteria/internal/mocks"
	"campus-cafeteria/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

var cartVersion = time.Date(2024, 3, 4, 12, 30, 0, 0, time.UTC)

func TestPaymentService_Process(t *testing.T) {
	ctx := context.Background()
	table := &domain.Table{ID: "t1", TableNumber: "A-1", IsAvailable: true}
	errCheckout := errors.New("connection reset")

	tests := []struct {
		name          string
		req           domain.PaymentRequest
		prepareMocks  func(payments *mocks.PaymentRepository, tables *mocks.TableRepository, carts *mocks.CartRepository, publisher *mocks.EventPublisher)
		expectedError error
	}{
		{
			name: "exact_amount_commits_checkout",
			req:  domain.PaymentRequest{TableID: "t1", Amount: amount(13000), PaymentMethod: domain.PaymentCard},
			prepareMocks: func(payments *mocks.PaymentRepository, tables *mocks.TableRepository, carts *mocks.CartRepository, publisher *mocks.EventPublisher) {
				tables.On("GetTable", ctx, "t1").Return(table, nil).Once()
				cart := cartWithItems()
				cart.UpdatedAt = cartVersion
				carts.On("GetCart", ctx, "u1", "t1").Return(cart, nil).Once()
				payments.On("Checkout", ctx, mock.MatchedBy(func(c *domain.Checkout) bool {
					return c.Order.Status == domain.StatusPayed &&
						len(c.Order.Items) == 2 &&
						c.Payment.OrderID == c.Order.ID &&
						c.Payment.Status == domain.PaymentCompleted &&
						c.Payment.Method == domain.PaymentCard &&
						c.Payment.Amount.Equal(decimal.NewFromInt(13000)) &&
						c.Payment.PaidAt != nil &&
						c.TableID == "t1" && c.UserID == "u1" &&
						c.CartID == "c1" && c.CartVersion.Equal(cartVersion)
				})).Return(nil).Once()
				publisher.On("Publish", ctx, mock.MatchedBy(func(m domain.KafkaMessage) bool {
					return m.Type == domain.EventOrderCreated && len(m.Items) == 2
				})).Return(nil).Once()
				publisher.On("Publish", ctx, mock.MatchedBy(func(m domain.KafkaMessage) bool {
					return m.Type == domain.EventOrderPaid && m.Status == domain.StatusPayed
				})).Return(nil).Once()
			},
		},
		{
			name: "amount_mismatch",
			req:  domain.PaymentRequest{TableID: "t1", Amount: amount(12999), PaymentMethod: domain.PaymentCash},
			prepareMocks: func(payments *mocks.PaymentRepository, tables *mocks.TableRepository, carts *mocks.CartRepository, publisher *mocks.EventPublisher) {
				tables.On("GetTable", ctx, "t1").Return(table, nil).Once()
				carts.On("GetCart", ctx, "u1", "t1").Return(cartWithItems(), nil).Once()
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name: "amount_missing",
			req:  domain.PaymentRequest{TableID: "t1", PaymentMethod: domain.PaymentMobile},
			prepareMocks: func(payments *mocks.PaymentRepository, tables *mocks.TableRepository, carts *mocks.CartRepository, publisher *mocks.EventPublisher) {
				tables.On("GetTable", ctx, "t1").Return(table, nil).Once()
				carts.On("GetCart", ctx, "u1", "t1").Return(cartWithItems(), nil).Once()
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name: "empty_cart",
			req:  domain.PaymentRequest{TableID: "t1", Amount: amount(0), PaymentMethod: domain.PaymentCard},
			prepareMocks: func(payments *mocks.PaymentRepository, tables *mocks.TableRepository, carts *mocks.CartRepository, publisher *mocks.EventPublisher) {
				tables.On("GetTable", ctx, "t1").Return(table, nil).Once()
				carts.On("GetCart", ctx, "u1", "t1").Return(nil, domain.NotFoundf("cart not found")).Once()
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name: "unknown_table",
			req:  domain.PaymentRequest{TableID: "t1", Amount: amount(13000), PaymentMethod: domain.PaymentCard},
			prepareMocks: func(payments *mocks.PaymentRepository, tables *mocks.TableRepository, carts *mocks.CartRepository, publisher *mocks.EventPublisher) {
				tables.On("GetTable", ctx, "t1").Return(nil, domain.NotFoundf("table t1 not found")).Once()
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "checkout_failure_publishes_nothing",
			req:  domain.PaymentRequest{TableID: "t1", Amount: amount(13000), PaymentMethod: domain.PaymentCard},
			prepareMocks: func(payments *mocks.PaymentRepository, tables *mocks.TableRepository, carts *mocks.CartRepository, publisher *mocks.EventPublisher) {
				tables.On("GetTable", ctx, "t1").Return(table, nil).Once()
				carts.On("GetCart", ctx, "u1", "t1").Return(cartWithItems(), nil).Once()
				payments.On("Checkout", ctx, mock.Anything).Return(errCheckout).Once()
			},
			expectedError: errCheckout,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			payments := mocks.NewPaymentRepository(t)
			tables := mocks.NewTableRepository(t)
			carts := mocks.NewCartRepository(t)
			publisher := mocks.NewEventPublisher(t)
			testCase.prepareMocks(payments, tables, carts, publisher)

			orders := service.NewOrderService(mocks.NewOrderRepository(t), carts, tables,
				mocks.NewMenuRepository(t), mocks.NewOrderNotifier(t), publisher)
			svc := service.NewPaymentService(payments, tables, orders, publisher)

			payment, err := svc.Process(ctx, "u1", testCase.req)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, payment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.PaymentCompleted, payment.Status)
			assert.NotEmpty(t, payment.OrderID)
		})
	}
}

func TestPaymentService_Queries(t *testing.T) {
	ctx := context.Background()
	payments := mocks.NewPaymentRepository(t)
	publisher := mocks.NewEventPublisher(t)
	orders := service.NewOrderService(mocks.NewOrderRepository(t), mocks.NewCartRepository(t),
		mocks.NewTableRepository(t), mocks.NewMenuRepository(t), mocks.NewOrderNotifier(t), publisher)
	svc := service.NewPaymentService(payments, mocks.NewTableRepository(t), orders, publisher)

	payments.On("GetPaymentByOrder", ctx, "o1").Return(&domain.Payment{ID: "p1", OrderID: "o1"}, nil).Once()
	payments.On("GetPaymentByOrder", ctx, "o2").Return(nil, domain.NotFoundf("payment for order o2 not found")).Once()
	payments.On("ListPaymentsByUser", ctx, "u1").Return([]domain.Payment{{ID: "p1"}, {ID: "p2"}}, nil).Once()

	payment, err := svc.GetByOrderID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "p1", payment.ID)

	_, err = svc.GetByOrderID(ctx, "o2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
