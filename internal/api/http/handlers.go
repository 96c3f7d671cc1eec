package httpapi

import (
	"net/http"
	"time"

	"campus-cafeteria/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Tables        service.TableServiceInterface
	Menus         service.MenuServiceInterface
	Users         service.UserServiceInterface
	Carts         service.CartServiceInterface
	Orders        service.OrderServiceInterface
	Payments      service.PaymentServiceInterface
	Ratings       service.RatingServiceInterface
	Notifications service.NotificationServiceInterface
	Chat          service.ChatServiceInterface
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/tables", h.listTables).Methods("GET")
	api.HandleFunc("/tables", h.createTable).Methods("POST")
	api.HandleFunc("/tables/available", h.listAvailableTables).Methods("GET")
	api.HandleFunc("/tables/qr/{qrCode}", h.getTableByQRCode).Methods("GET")
	api.HandleFunc("/tables/qr/{qrCode}/release", h.releaseTableByQRCode).Methods("PUT")
	api.HandleFunc("/tables/{tableId}", h.getTable).Methods("GET")
	api.HandleFunc("/tables/{tableId}/qrcode", h.getTableQRCode).Methods("GET")
	api.HandleFunc("/tables/{tableId}/release", h.releaseTable).Methods("PUT")

	api.HandleFunc("/menus", h.listMenus).Methods("GET")
	api.HandleFunc("/menus", h.createMenu).Methods("POST")
	api.HandleFunc("/menus/page", h.menuPage).Methods("GET")
	api.HandleFunc("/menus/popular", h.popularMenus).Methods("GET")
	api.HandleFunc("/menus/popular/{userId}", h.userPopularMenus).Methods("GET")
	api.HandleFunc("/menus/restaurant/{restaurantName}", h.listRestaurantMenus).Methods("GET")
	api.HandleFunc("/menus/{menuId}", h.getMenu).Methods("GET")
	api.HandleFunc("/menus/{menuId}", h.updateMenu).Methods("PUT")
	api.HandleFunc("/menus/{menuId}", h.deleteMenu).Methods("DELETE")

	api.HandleFunc("/users", h.saveUser).Methods("POST")
	api.HandleFunc("/users/{userId}", h.getUser).Methods("GET")
	api.HandleFunc("/users/{userId}/allergies", h.updateAllergies).Methods("PUT")

	api.HandleFunc("/carts/user/{userId}/table/{tableId}", h.getCart).Methods("GET")
	api.HandleFunc("/carts/user/{userId}/table/{tableId}", h.clearCart).Methods("DELETE")
	api.HandleFunc("/carts/user/{userId}/add", h.addToCart).Methods("POST")

	api.HandleFunc("/orders/user/{userId}", h.listUserOrders).Methods("GET")
	api.HandleFunc("/orders/user/{userId}/table/{tableId}/from-cart", h.createOrderFromCart).Methods("POST")
	api.HandleFunc("/orders/{userId}", h.createOrder).Methods("POST")
	api.HandleFunc("/orders/{orderId}", h.getOrder).Methods("GET")
	api.HandleFunc("/orders/{orderId}/ready", h.readyOrder).Methods("PUT")
	api.HandleFunc("/orders/{orderId}/complete", h.completeOrder).Methods("PUT")
	api.HandleFunc("/orders/{orderId}/cancel", h.cancelOrder).Methods("PUT")

	api.HandleFunc("/payments/user/{userId}", h.processPayment).Methods("POST")
	api.HandleFunc("/payments/user/{userId}", h.listUserPayments).Methods("GET")
	api.HandleFunc("/payments/order/{orderId}", h.getOrderPayment).Methods("GET")

	api.HandleFunc("/ratings/menu/{menuId}/user/{userId}", h.upsertRating).Methods("POST")
	api.HandleFunc("/ratings/menu/{menuId}", h.listMenuRatings).Methods("GET")
	api.HandleFunc("/ratings/user/{userId}", h.listUserRatings).Methods("GET")
	api.HandleFunc("/ratings/{ratingId}", h.deleteRating).Methods("DELETE")

	api.HandleFunc("/notifications/user/{userId}", h.listNotifications).Methods("GET")
	api.HandleFunc("/notifications/user/{userId}/unread", h.listUnreadNotifications).Methods("GET")
	api.HandleFunc("/notifications/{notificationId}/read", h.markNotificationRead).Methods("PUT")
	api.HandleFunc("/notifications/menu-available/{userId}", h.notifyMenuAvailable).Methods("POST")

	api.HandleFunc("/chat/user/{userId}", h.sendChat).Methods("POST")
	api.HandleFunc("/chat/user/{userId}/history", h.userChatHistory).Methods("GET")
	api.HandleFunc("/chat/session/{sessionId}", h.sessionChatHistory).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "campus-cafeteria",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func pathVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}
