package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Table struct {
	ID             string    `json:"id"`
	TableNumber    string    `json:"table_number"`
	Capacity       int       `json:"capacity"`
	RestaurantName string    `json:"restaurant_name"`
	IsAvailable    bool      `json:"is_available"`
	QRCode         string    `json:"qr_code"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NutritionInfo fields are nil when the kitchen did not publish a value.
type NutritionInfo struct {
	Calories    *int             `json:"calories,omitempty"`
	Protein     *decimal.Decimal `json:"protein,omitempty"`
	Carbs       *decimal.Decimal `json:"carbs,omitempty"`
	Fat         *decimal.Decimal `json:"fat,omitempty"`
	Sugar       *decimal.Decimal `json:"sugar,omitempty"`
	Sodium      *int             `json:"sodium,omitempty"`
	Fiber       *decimal.Decimal `json:"fiber,omitempty"`
	Cholesterol *int             `json:"cholesterol,omitempty"`
}

type Menu struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	RestaurantName     string          `json:"restaurant_name"`
	ImageURL           string          `json:"image_url"`
	IsAvailable        bool            `json:"is_available"`
	AvailableDate      *time.Time      `json:"available_date,omitempty"`
	Nutrition          *NutritionInfo  `json:"nutrition_info,omitempty"`
	AllergyIngredients []string        `json:"allergy_ingredients"`
	AverageRating      float64         `json:"average_rating"`
	OrderCount         int             `json:"order_count,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type MenuPage struct {
	AllMenus     []Menu `json:"all_menus"`
	PopularMenus []Menu `json:"popular_menus"`
}

type NutritionGoal struct {
	DailyCalorieGoal *int             `json:"daily_calorie_goal,omitempty"`
	MaxCalorieGoal   *int             `json:"max_calorie_goal,omitempty"`
	MinProteinGoal   *decimal.Decimal `json:"min_protein_goal,omitempty"`
	DietMode         *bool            `json:"is_diet_mode,omitempty"`
	HighProteinMode  *bool            `json:"is_high_protein_mode,omitempty"`
}

func (g NutritionGoal) IsDietMode() bool {
	return g.DietMode != nil && *g.DietMode
}

func (g NutritionGoal) IsHighProteinMode() bool {
	return g.HighProteinMode != nil && *g.HighProteinMode
}

type User struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Allergies     Optional[[]string]      `json:"allergy_ingredients"`
	NutritionGoal Optional[NutritionGoal] `json:"nutrition_goal"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// DietaryProfile is the part of a user the chat relay needs. A user that does
// not exist yields a profile with nothing recorded.
type DietaryProfile struct {
	Allergies     Optional[[]string]
	NutritionGoal Optional[NutritionGoal]
}

func (u *User) DietaryProfile() DietaryProfile {
	if u == nil {
		return DietaryProfile{}
	}
	return DietaryProfile{Allergies: u.Allergies, NutritionGoal: u.NutritionGoal}
}

// LineItem is shared by carts and orders. Name and price are copied from the
// menu when the item is added and never refreshed.
type LineItem struct {
	MenuID            string          `json:"menu_id"`
	MenuName          string          `json:"menu_name"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"price"`
	SpicinessLevel    int             `json:"spiciness_level"`
	RiceAmount        string          `json:"rice_amount,omitempty"`
	AdditionalOptions []string        `json:"additional_options,omitempty"`
	Comment           string          `json:"comment,omitempty"`
}

func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type Cart struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	TableID     string          `json:"table_id"`
	TableNumber string          `json:"table_number"`
	Items       []LineItem      `json:"items"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

func (c *Cart) Recalculate() {
	c.TotalPrice = SumLineItems(c.Items)
}

type Order struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	TableID     string          `json:"table_id"`
	TableNumber string          `json:"table_number"`
	Items       []LineItem      `json:"items"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      OrderStatus     `json:"status"`
	OrderedAt   time.Time       `json:"ordered_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderHistory is a per user, per menu counter used only for ranking.
type OrderHistory struct {
	UserID        string    `json:"user_id"`
	MenuID        string    `json:"menu_id"`
	MenuName      string    `json:"menu_name"`
	OrderCount    int       `json:"order_count"`
	LastOrderedAt time.Time `json:"last_ordered_at"`
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "CARD"
	PaymentCash   PaymentMethod = "CASH"
	PaymentMobile PaymentMethod = "MOBILE"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

type Payment struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	UserID    string          `json:"user_id"`
	TableID   string          `json:"table_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"payment_method"`
	Status    PaymentStatus   `json:"status"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Checkout is everything a successful payment writes. It is persisted as a
// single unit: either all of it is stored or none of it is.
// CartID and CartVersion identify the cart snapshot the amount was checked
// against; the checkout fails if the cart changed since.
type Checkout struct {
	Order       Order
	Payment     Payment
	TableID     string
	UserID      string
	CartID      string
	CartVersion time.Time
}

type MenuRating struct {
	ID        string    `json:"id"`
	MenuID    string    `json:"menu_id"`
	MenuName  string    `json:"menu_name,omitempty"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotificationType string

const (
	NotificationOrderReady     NotificationType = "ORDER_READY"
	NotificationOrderCompleted NotificationType = "ORDER_COMPLETED"
	NotificationMenuAvailable  NotificationType = "MENU_AVAILABLE"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	OrderID   string           `json:"order_id,omitempty"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

type ChatRole string

const (
	ChatRoleUser      ChatRole = "USER"
	ChatRoleAssistant ChatRole = "ASSISTANT"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response,omitempty"`
	Role      ChatRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Content is the text a turn contributes to the conversation transcript.
func (m ChatMessage) Content() string {
	if m.Role == ChatRoleUser {
		return m.Message
	}
	return m.Response
}
