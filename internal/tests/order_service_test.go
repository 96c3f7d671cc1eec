package tests

import (
	"context"
	"errors"
	"testing"

	"campus-cafeteria/internal/domain"
	"campus-cafeteria/internal/mocks"
	"campus-cafeteria/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderDeps struct {
	orders    *mocks.OrderRepository
	carts     *mocks.CartRepository
	tables    *mocks.TableRepository
	menus     *mocks.MenuRepository
	notifier  *mocks.OrderNotifier
	publisher *mocks.EventPublisher
}

func newOrderDeps(t *testing.T) orderDeps {
	return orderDeps{
		orders:    mocks.NewOrderRepository(t),
		carts:     mocks.NewCartRepository(t),
		tables:    mocks.NewTableRepository(t),
		menus:     mocks.NewMenuRepository(t),
		notifier:  mocks.NewOrderNotifier(t),
		publisher: mocks.NewEventPublisher(t),
	}
}

func (d orderDeps) service() *service.OrderService {
	return service.NewOrderService(d.orders, d.carts, d.tables, d.menus, d.notifier, d.publisher)
}

func cartWithItems() *domain.Cart {
	cart := &domain.Cart{
		ID:          "c1",
		UserID:      "u1",
		TableID:     "t1",
		TableNumber: "A-1",
		Items: []domain.LineItem{
			{MenuID: "m1", MenuName: "비빔밥", Quantity: 1, UnitPrice: decimal.NewFromInt(8000)},
			{MenuID: "m2", MenuName: "라면", Quantity: 1, UnitPrice: decimal.NewFromInt(5000)},
		},
	}
	cart.Recalculate()
	return cart
}

func TestOrderService_CreateFromCart(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMocks  func(d orderDeps)
		expectedError error
	}{
		{
			name: "snapshots_cart",
			prepareMocks: func(d orderDeps) {
				d.carts.On("GetCart", ctx, "u1", "t1").Return(cartWithItems(), nil).Once()
				d.orders.On("CreateOrder", ctx, mock.MatchedBy(func(o *domain.Order) bool {
					return o.Status == domain.StatusInCart && len(o.Items) == 2 &&
						o.TotalPrice.Equal(decimal.NewFromInt(13000)) && o.TableNumber == "A-1"
				})).Return(nil).Once()
				d.publisher.On("Publish", ctx, mock.MatchedBy(func(m domain.KafkaMessage) bool {
					return m.Type == domain.EventOrderCreated && len(m.Items) == 2
				})).Return(nil).Once()
			},
		},
		{
			name: "empty_cart",
			prepareMocks: func(d orderDeps) {
				d.carts.On("GetCart", ctx, "u1", "t1").
					Return(&domain.Cart{ID: "c1", Items: []domain.LineItem{}}, nil).Once()
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name: "missing_cart",
			prepareMocks: func(d orderDeps) {
				d.carts.On("GetCart", ctx, "u1", "t1").Return(nil, domain.NotFoundf("cart not found")).Once()
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name: "publish_failure_is_not_fatal",
			prepareMocks: func(d orderDeps) {
				d.carts.On("GetCart", ctx, "u1", "t1").Return(cartWithItems(), nil).Once()
				d.orders.On("CreateOrder", ctx, mock.Anything).Return(nil).Once()
				d.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps := newOrderDeps(t)
			testCase.prepareMocks(deps)

			order, err := deps.service().CreateFromCart(ctx, "u1", "t1")
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, order.ID)
			assert.Equal(t, domain.StatusInCart, order.Status)
		})
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	req := domain.CreateOrderRequest{
		TableID: "t1",
		Items:   []domain.CartItemRequest{{MenuID: "m1", Quantity: 3}},
	}

	tests := []struct {
		name          string
		req           domain.CreateOrderRequest
		prepareMocks  func(d orderDeps)
		expectedError error
	}{
		{
			name: "pending_order_from_menus",
			req:  req,
			prepareMocks: func(d orderDeps) {
				d.tables.On("GetTable", ctx, "t1").Return(&domain.Table{ID: "t1", TableNumber: "B-2"}, nil).Once()
				d.menus.On("GetMenu", ctx, "m1").
					Return(&domain.Menu{ID: "m1", Name: "김밥", Price: decimal.NewFromInt(3500)}, nil).Once()
				d.orders.On("CreateOrder", ctx, mock.MatchedBy(func(o *domain.Order) bool {
					return o.Status == domain.StatusPending && o.TableNumber == "B-2" &&
						o.TotalPrice.Equal(decimal.NewFromInt(10500))
				})).Return(nil).Once()
				d.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "unknown_table",
			req:  req,
			prepareMocks: func(d orderDeps) {
				d.tables.On("GetTable", ctx, "t1").Return(nil, domain.NotFoundf("table t1 not found")).Once()
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "no_items",
			req:  domain.CreateOrderRequest{TableID: "t1"},
			prepareMocks: func(d orderDeps) {
				d.tables.On("GetTable", ctx, "t1").Return(&domain.Table{ID: "t1"}, nil).Once()
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name: "unknown_menu",
			req:  req,
			prepareMocks: func(d orderDeps) {
				d.tables.On("GetTable", ctx, "t1").Return(&domain.Table{ID: "t1"}, nil).Once()
				d.menus.On("GetMenu", ctx, "m1").Return(nil, domain.NotFoundf("menu m1 not found")).Once()
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps := newOrderDeps(t)
			testCase.prepareMocks(deps)

			order, err := deps.service().Create(ctx, "u1", testCase.req)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", order.UserID)
		})
	}
}

func TestOrderService_ReadyThenComplete(t *testing.T) {
	ctx := context.Background()
	notifications := mocks.NewNotificationRepository(t)
	deps := newOrderDeps(t)
	svc := service.NewOrderService(deps.orders, deps.carts, deps.tables, deps.menus,
		service.NewNotificationService(notifications), deps.publisher)

	order := &domain.Order{ID: "o1", UserID: "u1", Status: domain.StatusPayed}

	var created []domain.NotificationType
	notifications.On("CreateNotification", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			n := args.Get(1).(*domain.Notification)
			created = append(created, n.Type)
		}).
		Return(nil).Twice()

	deps.orders.On("GetOrder", ctx, "o1").Return(order, nil).Twice()
	deps.orders.On("UpdateOrderStatus", ctx, mock.Anything).Return(nil).Twice()
	deps.publisher.On("Publish", ctx, mock.MatchedBy(func(m domain.KafkaMessage) bool {
		return m.Type == domain.EventOrderStatusChanged
	})).Return(nil).Twice()

	ready, err := svc.Ready(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, ready.Status)
	assert.Nil(t, ready.CompletedAt)

	completed, err := svc.Complete(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	assert.Equal(t, []domain.NotificationType{
		domain.NotificationOrderReady,
		domain.NotificationOrderCompleted,
	}, created)
}

func TestOrderService_ReadyAndComplete_AnyPriorStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		from             domain.OrderStatus
		complete         bool
		expectedStatus   domain.OrderStatus
		expectedNotified domain.NotificationType
	}{
		{name: "ready_from_cancelled", from: domain.StatusCancelled, expectedStatus: domain.StatusReady, expectedNotified: domain.NotificationOrderReady},
		{name: "ready_from_completed", from: domain.StatusCompleted, expectedStatus: domain.StatusReady, expectedNotified: domain.NotificationOrderReady},
		{name: "ready_from_in_cart", from: domain.StatusInCart, expectedStatus: domain.StatusReady, expectedNotified: domain.NotificationOrderReady},
		{name: "complete_from_cancelled", from: domain.StatusCancelled, complete: true, expectedStatus: domain.StatusCompleted, expectedNotified: domain.NotificationOrderCompleted},
		{name: "complete_from_completed", from: domain.StatusCompleted, complete: true, expectedStatus: domain.StatusCompleted, expectedNotified: domain.NotificationOrderCompleted},
		{name: "complete_from_in_cart", from: domain.StatusInCart, complete: true, expectedStatus: domain.StatusCompleted, expectedNotified: domain.NotificationOrderCompleted},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			notifications := mocks.NewNotificationRepository(t)
			deps := newOrderDeps(t)
			svc := service.NewOrderService(deps.orders, deps.carts, deps.tables, deps.menus,
				service.NewNotificationService(notifications), deps.publisher)

			var created []*domain.Notification
			notifications.On("CreateNotification", ctx, mock.Anything).
				Run(func(args mock.Arguments) {
					created = append(created, args.Get(1).(*domain.Notification))
				}).
				Return(nil).Once()
			deps.orders.On("GetOrder", ctx, "o1").
				Return(&domain.Order{ID: "o1", UserID: "u1", Status: testCase.from}, nil).Once()
			deps.orders.On("UpdateOrderStatus", ctx, mock.MatchedBy(func(o *domain.Order) bool {
				return o.Status == testCase.expectedStatus
			})).Return(nil).Once()
			deps.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

			var (
				order *domain.Order
				err   error
			)
			if testCase.complete {
				order, err = svc.Complete(ctx, "o1")
			} else {
				order, err = svc.Ready(ctx, "o1")
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedStatus, order.Status)
			require.Len(t, created, 1)
			assert.Equal(t, testCase.expectedNotified, created[0].Type)
			assert.Equal(t, "o1", created[0].OrderID)
			assert.Equal(t, "u1", created[0].UserID)
		})
	}
}

func TestOrderService_Ready_UnknownOrder(t *testing.T) {
	ctx := context.Background()
	deps := newOrderDeps(t)
	deps.orders.On("GetOrder", ctx, "missing").Return(nil, domain.NotFoundf("order missing not found")).Once()

	_, err := deps.service().Ready(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderService_Cancel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		from          domain.OrderStatus
		expectedError error
	}{
		{name: "from_pending", from: domain.StatusPending},
		{name: "from_in_cart", from: domain.StatusInCart},
		{name: "from_payed", from: domain.StatusPayed},
		{name: "from_confirmed", from: domain.StatusConfirmed},
		{name: "from_preparing", from: domain.StatusPreparing, expectedError: domain.ErrInvalidState},
		{name: "from_completed", from: domain.StatusCompleted, expectedError: domain.ErrInvalidState},
		{name: "from_cancelled", from: domain.StatusCancelled, expectedError: domain.ErrInvalidState},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps := newOrderDeps(t)
			deps.orders.On("GetOrder", ctx, "o1").
				Return(&domain.Order{ID: "o1", UserID: "u1", Status: testCase.from}, nil).Once()
			if testCase.expectedError == nil {
				deps.orders.On("UpdateOrderStatus", ctx, mock.MatchedBy(func(o *domain.Order) bool {
					return o.Status == domain.StatusCancelled
				})).Return(nil).Once()
				deps.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()
			}

			order, err := deps.service().Cancel(ctx, "o1")
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, order.Status)
		})
	}
}
