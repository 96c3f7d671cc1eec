package domain

import "github.com/shopspring/decimal"

// ChatPrompt is the body sent to the text generation collaborator. Field
// names follow the collaborator's camelCase contract, not this API's.
type ChatPrompt struct {
	Message          string           `json:"message"`
	PreviousMessages []PromptTurn     `json:"previousMessages,omitempty"`
	UserInfo         *PromptUserInfo  `json:"userInfo,omitempty"`
	Menus            []PromptMenu     `json:"menus,omitempty"`
	Recommendations  []Recommendation `json:"recommendations,omitempty"`
}

type PromptTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

type PromptUserInfo struct {
	Allergies     []string             `json:"allergies,omitempty"`
	NutritionGoal *PromptNutritionGoal `json:"nutritionGoal,omitempty"`
}

type PromptNutritionGoal struct {
	DailyCalorieGoal  *int             `json:"dailyCalorieGoal,omitempty"`
	MinProteinGoal    *decimal.Decimal `json:"minProteinGoal,omitempty"`
	MaxCalorieGoal    *int             `json:"maxCalorieGoal,omitempty"`
	IsDietMode        *bool            `json:"isDietMode,omitempty"`
	IsHighProteinMode *bool            `json:"isHighProteinMode,omitempty"`
}

type PromptNutrition struct {
	Calories    *int             `json:"calories,omitempty"`
	Protein     *decimal.Decimal `json:"protein,omitempty"`
	Carbs       *decimal.Decimal `json:"carbs,omitempty"`
	Fat         *decimal.Decimal `json:"fat,omitempty"`
	Sugar       *decimal.Decimal `json:"sugar,omitempty"`
	Sodium      *int             `json:"sodium,omitempty"`
	Fiber       *decimal.Decimal `json:"fiber,omitempty"`
	Cholesterol *int             `json:"cholesterol,omitempty"`
}

type PromptMenu struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	RestaurantName     string           `json:"restaurantName"`
	Price              decimal.Decimal  `json:"price"`
	NutritionInfo      *PromptNutrition `json:"nutritionInfo,omitempty"`
	AllergyIngredients []string         `json:"allergyIngredients,omitempty"`
}

type RecommendationKind string

const (
	RecommendLowCalorie  RecommendationKind = "LOW_CALORIE"
	RecommendHighProtein RecommendationKind = "HIGH_PROTEIN"
)

// Recommendation is one pick produced from the menu catalog and the user's
// dietary profile.
type Recommendation struct {
	Kind     RecommendationKind `json:"kind"`
	MenuID   string             `json:"menuId"`
	MenuName string             `json:"menuName"`
	Calories *int               `json:"calories,omitempty"`
	Protein  *decimal.Decimal   `json:"protein,omitempty"`
}

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id"`
}
