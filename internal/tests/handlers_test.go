package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "campus-cafeteria/internal/api/http"
	"campus-cafeteria/internal/domain"
	"campus-cafeteria/internal/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	tables        *mocks.TableServiceInterface
	menus         *mocks.MenuServiceInterface
	users         *mocks.UserServiceInterface
	carts         *mocks.CartServiceInterface
	orders        *mocks.OrderServiceInterface
	payments      *mocks.PaymentServiceInterface
	ratings       *mocks.RatingServiceInterface
	notifications *mocks.NotificationServiceInterface
	chat          *mocks.ChatServiceInterface
}

func setupTestRouter(t *testing.T) (http.Handler, handlerMocks) {
	m := handlerMocks{
		tables:        mocks.NewTableServiceInterface(t),
		menus:         mocks.NewMenuServiceInterface(t),
		users:         mocks.NewUserServiceInterface(t),
		carts:         mocks.NewCartServiceInterface(t),
		orders:        mocks.NewOrderServiceInterface(t),
		payments:      mocks.NewPaymentServiceInterface(t),
		ratings:       mocks.NewRatingServiceInterface(t),
		notifications: mocks.NewNotificationServiceInterface(t),
		chat:          mocks.NewChatServiceInterface(t),
	}
	handler := &httpapi.Handler{
		Tables:        m.tables,
		Menus:         m.menus,
		Users:         m.users,
		Carts:         m.carts,
		Orders:        m.orders,
		Payments:      m.payments,
		Ratings:       m.ratings,
		Notifications: m.notifications,
		Chat:          m.chat,
	}
	return httpapi.NewRouter(handler), m
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) httpapi.Response {
	t.Helper()
	var resp httpapi.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := serve(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "campus-cafeteria", body["service"])
}

func TestGetTableHandler(t *testing.T) {
	tests := []struct {
		name      string
		mockTable *domain.Table
		mockError error
		wantCode  int
	}{
		{name: "found", mockTable: &domain.Table{ID: "t1", TableNumber: "A-1"}, wantCode: http.StatusOK},
		{name: "not found", mockError: domain.NotFoundf("table t1 not found"), wantCode: http.StatusNotFound},
		{name: "database error", mockError: errors.New("db error"), wantCode: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			m.tables.On("Get", mock.Anything, "t1").Return(testCase.mockTable, testCase.mockError).Once()

			w := serve(router, http.MethodGet, "/api/tables/t1", "")
			assert.Equal(t, testCase.wantCode, w.Code)

			resp := decodeEnvelope(t, w)
			assert.Equal(t, testCase.mockError == nil, resp.Success)
			if testCase.wantCode == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", resp.Message)
			}
		})
	}
}

func TestTableRoutes(t *testing.T) {
	router, m := setupTestRouter(t)
	m.tables.On("ListAvailable", mock.Anything).Return([]domain.Table{{ID: "t1"}}, nil).Once()
	m.tables.On("GetByQRCode", mock.Anything, "qr-1").Return(&domain.Table{ID: "t1"}, nil).Once()
	m.tables.On("ReleaseByQRCode", mock.Anything, "qr-1").Return(&domain.Table{ID: "t1", IsAvailable: true}, nil).Once()
	m.tables.On("QRCodePNG", mock.Anything, "t1").Return(pngMagic, nil).Once()
	m.tables.On("Create", mock.Anything, mock.MatchedBy(func(tb *domain.Table) bool {
		return tb.TableNumber == "B-7" && tb.Capacity == 2
	})).Return(nil).Once()

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/tables/available", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/tables/qr/qr-1", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPut, "/api/tables/qr/qr-1/release", "").Code)
	assert.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/tables", `{"table_number":"B-7","capacity":2}`).Code)

	w := serve(router, http.MethodGet, "/api/tables/t1/qrcode", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, pngMagic, w.Body.Bytes())
}

func TestPopularMenusHandler(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(*mocks.MenuServiceInterface)
		wantCode  int
	}{
		{
			name: "default limit",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("Popular", mock.Anything, 10).Return([]domain.Menu{{ID: "m1"}}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "explicit limit",
			query: "?limit=5",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("Popular", mock.Anything, 5).Return([]domain.Menu{}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "zero limit",
			query:     "?limit=0",
			setupMock: func(m *mocks.MenuServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "garbage limit",
			query:     "?limit=ten",
			setupMock: func(m *mocks.MenuServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.setupMock(m.menus)

			w := serve(router, http.MethodGet, "/api/menus/popular"+testCase.query, "")
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestMenuPageHandler(t *testing.T) {
	router, m := setupTestRouter(t)
	m.menus.On("Page", mock.Anything, "u1").Return(&domain.MenuPage{
		AllMenus:     []domain.Menu{{ID: "m1"}},
		PopularMenus: []domain.Menu{},
	}, nil).Once()
	m.menus.On("PopularForUser", mock.Anything, "u1", 3).Return([]domain.Menu{}, nil).Once()

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/menus/page?userId=u1", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/api/menus/page", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/menus/popular/u1", "").Code)
}

func TestDeleteMenuHandler(t *testing.T) {
	router, m := setupTestRouter(t)
	m.menus.On("Delete", mock.Anything, "m1").Return(nil).Once()
	m.menus.On("Delete", mock.Anything, "m2").Return(domain.NotFoundf("menu m2 not found")).Once()

	assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/api/menus/m1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodDelete, "/api/menus/m2", "").Code)
}

func TestAddToCartHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.CartServiceInterface)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"table_id":"t1","items":[{"menu_id":"m1","quantity":2,"spiciness_level":1}]}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("AddItems", mock.Anything, "u1", "t1", mock.MatchedBy(func(items []domain.CartItemRequest) bool {
					return len(items) == 1 && items[0].Quantity == 2
				})).Return(&domain.Cart{ID: "c1", TotalPrice: decimal.NewFromInt(16000)}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.CartServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing table",
			body:      `{"items":[{"menu_id":"m1","quantity":1}]}`,
			setupMock: func(m *mocks.CartServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "empty items",
			body:      `{"table_id":"t1","items":[]}`,
			setupMock: func(m *mocks.CartServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "item without quantity",
			body:      `{"table_id":"t1","items":[{"menu_id":"m1"}]}`,
			setupMock: func(m *mocks.CartServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown menu",
			body: `{"table_id":"t1","items":[{"menu_id":"zz","quantity":1}]}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("AddItems", mock.Anything, "u1", "t1", mock.Anything).
					Return(nil, domain.NotFoundf("menu zz not found")).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.setupMock(m.carts)

			w := serve(router, http.MethodPost, "/api/carts/user/u1/add", testCase.body)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCartRoutes(t *testing.T) {
	router, m := setupTestRouter(t)
	m.carts.On("GetOrCreate", mock.Anything, "u1", "t1").Return(&domain.Cart{ID: "c1"}, nil).Once()
	m.carts.On("Clear", mock.Anything, "u1", "t1").Return(nil).Once()

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/carts/user/u1/table/t1", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/api/carts/user/u1/table/t1", "").Code)
}

func TestOrderRoutes(t *testing.T) {
	router, m := setupTestRouter(t)
	m.orders.On("CreateFromCart", mock.Anything, "u1", "t1").
		Return(nil, domain.InvalidStatef("cart is empty")).Once()
	m.orders.On("Create", mock.Anything, "u1", mock.Anything).Return(&domain.Order{ID: "o1"}, nil).Once()
	m.orders.On("Get", mock.Anything, "o1").Return(&domain.Order{ID: "o1"}, nil).Once()
	m.orders.On("Ready", mock.Anything, "o1").Return(&domain.Order{ID: "o1", Status: domain.StatusReady}, nil).Once()
	m.orders.On("Complete", mock.Anything, "o1").Return(&domain.Order{ID: "o1", Status: domain.StatusCompleted}, nil).Once()
	m.orders.On("Cancel", mock.Anything, "o1").Return(nil, domain.InvalidStatef("order status COMPLETED is terminal")).Once()
	m.orders.On("ListByUser", mock.Anything, "u1").Return([]domain.Order{}, nil).Once()

	w := serve(router, http.MethodPost, "/api/orders/user/u1/table/t1/from-cart", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "cart is empty", decodeEnvelope(t, w).Message)

	assert.Equal(t, http.StatusCreated,
		serve(router, http.MethodPost, "/api/orders/u1", `{"table_id":"t1","items":[{"menu_id":"m1","quantity":1}]}`).Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/orders/o1", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPut, "/api/orders/o1/ready", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPut, "/api/orders/o1/complete", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPut, "/api/orders/o1/cancel", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/orders/user/u1", "").Code)
}

func TestProcessPaymentHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.PaymentServiceInterface)
		wantCode  int
	}{
		{
			name: "paid",
			body: `{"table_id":"t1","amount":13000,"payment_method":"CARD"}`,
			setupMock: func(m *mocks.PaymentServiceInterface) {
				m.On("Process", mock.Anything, "u1", mock.MatchedBy(func(req domain.PaymentRequest) bool {
					return req.Amount != nil && req.Amount.Equal(decimal.NewFromInt(13000))
				})).Return(&domain.Payment{ID: "p1", Status: domain.PaymentCompleted}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "amount mismatch",
			body: `{"table_id":"t1","amount":12999,"payment_method":"CASH"}`,
			setupMock: func(m *mocks.PaymentServiceInterface) {
				m.On("Process", mock.Anything, "u1", mock.Anything).
					Return(nil, domain.InvalidStatef("amount mismatch: cart total is 13000")).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "unknown method",
			body:      `{"table_id":"t1","amount":13000,"payment_method":"BITCOIN"}`,
			setupMock: func(m *mocks.PaymentServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing amount",
			body:      `{"table_id":"t1","payment_method":"CARD"}`,
			setupMock: func(m *mocks.PaymentServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.setupMock(m.payments)

			w := serve(router, http.MethodPost, "/api/payments/user/u1", testCase.body)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestUpsertRatingHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.RatingServiceInterface)
		wantCode  int
	}{
		{
			name: "valid",
			body: `{"rating":5,"comment":"최고"}`,
			setupMock: func(m *mocks.RatingServiceInterface) {
				m.On("Upsert", mock.Anything, "m1", "u1", domain.RatingRequest{Rating: 5, Comment: "최고"}).
					Return(&domain.MenuRating{ID: "r1", Rating: 5}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "out of range",
			body:      `{"rating":9}`,
			setupMock: func(m *mocks.RatingServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown menu",
			body: `{"rating":3}`,
			setupMock: func(m *mocks.RatingServiceInterface) {
				m.On("Upsert", mock.Anything, "m1", "u1", mock.Anything).
					Return(nil, domain.NotFoundf("menu m1 not found")).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.setupMock(m.ratings)

			w := serve(router, http.MethodPost, "/api/ratings/menu/m1/user/u1", testCase.body)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestNotificationRoutes(t *testing.T) {
	router, m := setupTestRouter(t)
	m.notifications.On("ListUnread", mock.Anything, "u1").Return([]domain.Notification{}, nil).Once()
	m.notifications.On("MarkAsRead", mock.Anything, "n1").Return(&domain.Notification{ID: "n1", IsRead: true}, nil).Once()
	m.notifications.On("MenuAvailable", mock.Anything, "u1", "m1", "떡볶이").
		Return(&domain.Notification{ID: "n2", Type: domain.NotificationMenuAvailable}, nil).Once()

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/notifications/user/u1/unread", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPut, "/api/notifications/n1/read", "").Code)
	assert.Equal(t, http.StatusCreated,
		serve(router, http.MethodPost, "/api/notifications/menu-available/u1", `{"menu_id":"m1","menu_name":"떡볶이"}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(router, http.MethodPost, "/api/notifications/menu-available/u1", `{"menu_id":"m1"}`).Code)
}

func TestSendChatHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.ChatServiceInterface)
		wantCode  int
	}{
		{
			name: "reply",
			body: `{"message":"안녕","session_id":"s1"}`,
			setupMock: func(m *mocks.ChatServiceInterface) {
				m.On("Send", mock.Anything, "u1", domain.ChatRequest{Message: "안녕", SessionID: "s1"}).
					Return(&domain.ChatMessage{ID: "c1", SessionID: "s1", Response: "안녕하세요!"}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing message",
			body:      `{"session_id":"s1"}`,
			setupMock: func(m *mocks.ChatServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "collaborator failure",
			body: `{"message":"안녕"}`,
			setupMock: func(m *mocks.ChatServiceInterface) {
				m.On("Send", mock.Anything, "u1", mock.Anything).
					Return(nil, domain.ExternalServicef("llm unavailable")).Once()
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.setupMock(m.chat)

			w := serve(router, http.MethodPost, "/api/chat/user/u1", testCase.body)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestUserRoutes(t *testing.T) {
	router, m := setupTestRouter(t)
	m.users.On("Get", mock.Anything, "u1").Return(&domain.User{ID: "u1", Allergies: domain.Some([]string{})}, nil).Once()
	m.users.On("UpdateAllergies", mock.Anything, "u1", []string{"땅콩"}).
		Return(&domain.User{ID: "u1", Allergies: domain.Some([]string{"땅콩"})}, nil).Once()

	w := serve(router, http.MethodGet, "/api/users/u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allergy_ingredients":[]`)

	w = serve(router, http.MethodPut, "/api/users/u1/allergies", `{"allergy_ingredients":["땅콩"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
