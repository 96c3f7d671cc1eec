package service

import (
	"context"

	"campus-cafeteria/internal/domain"
)

type TableRepository interface {
	CreateTable(ctx context.Context, table *domain.Table) error
	ListTables(ctx context.Context) ([]domain.Table, error)
	ListAvailableTables(ctx context.Context) ([]domain.Table, error)
	GetTable(ctx context.Context, id string) (*domain.Table, error)
	GetTableByQRCode(ctx context.Context, qrCode string) (*domain.Table, error)
	SetTableAvailability(ctx context.Context, id string, available bool) (*domain.Table, error)
}

type MenuRepository interface {
	CreateMenu(ctx context.Context, menu *domain.Menu) error
	UpdateMenu(ctx context.Context, menu *domain.Menu) error
	DeleteMenu(ctx context.Context, id string) (int64, error)
	ListMenus(ctx context.Context) ([]domain.Menu, error)
	ListMenusByRestaurant(ctx context.Context, restaurantName string) ([]domain.Menu, error)
	GetMenu(ctx context.Context, id string) (*domain.Menu, error)
	RatingSummary(ctx context.Context, menuID string) (domain.RatingSummary, error)
}

type UserRepository interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	SaveUser(ctx context.Context, user *domain.User) error
}

type CartRepository interface {
	GetCart(ctx context.Context, userID, tableID string) (*domain.Cart, error)
	CreateCartIfAbsent(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
	SaveCart(ctx context.Context, cart *domain.Cart) error
	DeleteCart(ctx context.Context, userID, tableID string) error
}

// OrderRepository.CreateOrder stores the order together with the order
// history accumulation for its line items.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, order *domain.Order) error
}

type OrderHistoryRepository interface {
	TopOrderHistory(ctx context.Context, userID string, limit int) ([]domain.OrderHistory, error)
	PopularMenus(ctx context.Context, limit int) ([]domain.PopularMenu, error)
}

// PaymentRepository.Checkout persists a whole checkout atomically.
type PaymentRepository interface {
	Checkout(ctx context.Context, checkout *domain.Checkout) error
	GetPaymentByOrder(ctx context.Context, orderID string) (*domain.Payment, error)
	ListPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error)
}

type RatingRepository interface {
	GetRatingByMenuAndUser(ctx context.Context, menuID, userID string) (*domain.MenuRating, error)
	InsertRating(ctx context.Context, rating *domain.MenuRating) error
	UpdateRating(ctx context.Context, rating *domain.MenuRating) error
	ListRatingsByMenu(ctx context.Context, menuID string) ([]domain.MenuRating, error)
	ListRatingsByUser(ctx context.Context, userID string) ([]domain.MenuRating, error)
	// DeleteRating returns the menu of the removed rating, or "" when no
	// rating matched.
	DeleteRating(ctx context.Context, id string) (string, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *domain.Notification) error
	ListNotificationsByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	ListUnreadNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) (*domain.Notification, error)
}

type ChatRepository interface {
	SaveChatMessage(ctx context.Context, message *domain.ChatMessage) error
	ListChatBySession(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	ListChatByUser(ctx context.Context, userID string) ([]domain.ChatMessage, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, msg domain.KafkaMessage) error
}

type PopularityCache interface {
	TopMenus(ctx context.Context, limit int) ([]domain.PopularMenu, error)
	IncrementMenu(ctx context.Context, menuID string, quantity int) error
}

type RatingCache interface {
	GetRating(ctx context.Context, menuID string) (domain.RatingSummary, bool, error)
	SetRating(ctx context.Context, summary domain.RatingSummary) error
}

type TextGenerator interface {
	Generate(ctx context.Context, prompt domain.ChatPrompt) (string, error)
}

type QRGenerator interface {
	Generate(qrCode string) ([]byte, error)
}

type TableServiceInterface interface {
	Create(ctx context.Context, table *domain.Table) error
	List(ctx context.Context) ([]domain.Table, error)
	ListAvailable(ctx context.Context) ([]domain.Table, error)
	Get(ctx context.Context, id string) (*domain.Table, error)
	GetByQRCode(ctx context.Context, qrCode string) (*domain.Table, error)
	Release(ctx context.Context, id string) (*domain.Table, error)
	ReleaseByQRCode(ctx context.Context, qrCode string) (*domain.Table, error)
	QRCodePNG(ctx context.Context, id string) ([]byte, error)
}

type MenuServiceInterface interface {
	Create(ctx context.Context, menu *domain.Menu) error
	Update(ctx context.Context, menu *domain.Menu) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Menu, error)
	ListByRestaurant(ctx context.Context, restaurantName string) ([]domain.Menu, error)
	Get(ctx context.Context, id string) (*domain.Menu, error)
	Page(ctx context.Context, userID string) (*domain.MenuPage, error)
	PopularForUser(ctx context.Context, userID string, limit int) ([]domain.Menu, error)
	Popular(ctx context.Context, limit int) ([]domain.Menu, error)
}

type UserServiceInterface interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	UpdateAllergies(ctx context.Context, id string, allergies []string) (*domain.User, error)
}

type CartServiceInterface interface {
	GetOrCreate(ctx context.Context, userID, tableID string) (*domain.Cart, error)
	AddItems(ctx context.Context, userID, tableID string, items []domain.CartItemRequest) (*domain.Cart, error)
	Clear(ctx context.Context, userID, tableID string) error
}

type OrderServiceInterface interface {
	CreateFromCart(ctx context.Context, userID, tableID string) (*domain.Order, error)
	Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error)
	Ready(ctx context.Context, orderID string) (*domain.Order, error)
	Complete(ctx context.Context, orderID string) (*domain.Order, error)
	Cancel(ctx context.Context, orderID string) (*domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type PaymentServiceInterface interface {
	Process(ctx context.Context, userID string, req domain.PaymentRequest) (*domain.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Payment, error)
}

type RatingServiceInterface interface {
	Upsert(ctx context.Context, menuID, userID string, req domain.RatingRequest) (*domain.MenuRating, error)
	ListByMenu(ctx context.Context, menuID string) ([]domain.MenuRating, error)
	ListByUser(ctx context.Context, userID string) ([]domain.MenuRating, error)
	Delete(ctx context.Context, id string) error
}

type NotificationServiceInterface interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	ListUnread(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id string) (*domain.Notification, error)
	MenuAvailable(ctx context.Context, userID, menuID, menuName string) (*domain.Notification, error)
	OrderReady(ctx context.Context, order *domain.Order) (*domain.Notification, error)
	OrderCompleted(ctx context.Context, order *domain.Order) (*domain.Notification, error)
}

type ChatServiceInterface interface {
	Send(ctx context.Context, userID string, req domain.ChatRequest) (*domain.ChatMessage, error)
	History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	UserHistory(ctx context.Context, userID string) ([]domain.ChatMessage, error)
}
