package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"campus-cafeteria/internal/domain"

	"github.com/google/uuid"
)

const promptRecommendationLimit = 3

// DietaryProfiler is satisfied by *UserService.
type DietaryProfiler interface {
	DietaryProfile(ctx context.Context, userID string) (domain.DietaryProfile, error)
}

type ChatService struct {
	repo      ChatRepository
	profiles  DietaryProfiler
	menus     MenuRepository
	generator TextGenerator
}

func NewChatService(repo ChatRepository, profiles DietaryProfiler, menus MenuRepository, generator TextGenerator) *ChatService {
	return &ChatService{
		repo:      repo,
		profiles:  profiles,
		menus:     menus,
		generator: generator,
	}
}

// Send relays a message to the text generation collaborator. A collaborator
// failure never reaches the caller: the reply is produced locally instead.
func (s *ChatService) Send(ctx context.Context, userID string, req domain.ChatRequest) (*domain.ChatMessage, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, domain.InvalidStatef("message is required")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	userTurn := &domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		SessionID: sessionID,
		Message:   req.Message,
		Role:      domain.ChatRoleUser,
		CreatedAt: time.Now(),
	}
	if err := s.repo.SaveChatMessage(ctx, userTurn); err != nil {
		return nil, err
	}

	transcript, err := s.repo.ListChatBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.DietaryProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	menus, err := s.menus.ListMenus(ctx)
	if err != nil {
		return nil, err
	}

	reply := s.reply(ctx, BuildPrompt(req.Message, transcript, profile, menus), profile, menus)

	assistantTurn := &domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		SessionID: sessionID,
		Message:   req.Message,
		Response:  reply,
		Role:      domain.ChatRoleAssistant,
		CreatedAt: time.Now(),
	}
	if err := s.repo.SaveChatMessage(ctx, assistantTurn); err != nil {
		return nil, err
	}
	return assistantTurn, nil
}

func (s *ChatService) History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	return s.repo.ListChatBySession(ctx, sessionID)
}

func (s *ChatService) UserHistory(ctx context.Context, userID string) ([]domain.ChatMessage, error) {
	return s.repo.ListChatByUser(ctx, userID)
}

func (s *ChatService) reply(ctx context.Context, prompt domain.ChatPrompt, profile domain.DietaryProfile, menus []domain.Menu) string {
	var (
		text string
		err  error
	)
	if s.generator == nil {
		err = domain.ExternalServicef("text generator is not configured")
	} else {
		text, err = s.generator.Generate(ctx, prompt)
	}
	if err == nil && strings.TrimSpace(text) == "" {
		err = domain.ExternalServicef("text generator returned an empty reply")
	}
	if err != nil {
		slog.Warn("text generation unavailable, answering locally", "error", err)
		return FallbackReply(prompt.Message, profile, menus)
	}
	return text
}

// BuildPrompt assembles the collaborator request: the full transcript, the
// recorded dietary profile, the menu catalog and the local recommendations.
func BuildPrompt(message string, transcript []domain.ChatMessage, profile domain.DietaryProfile, menus []domain.Menu) domain.ChatPrompt {
	prompt := domain.ChatPrompt{Message: message}

	for _, turn := range transcript {
		prompt.PreviousMessages = append(prompt.PreviousMessages, domain.PromptTurn{
			Role:    turn.Role,
			Content: turn.Content(),
		})
	}

	var info domain.PromptUserInfo
	if allergies, ok := profile.Allergies.Get(); ok && len(allergies) > 0 {
		info.Allergies = allergies
	}
	if goal, ok := profile.NutritionGoal.Get(); ok {
		pg := domain.PromptNutritionGoal{
			DailyCalorieGoal:  goal.DailyCalorieGoal,
			MinProteinGoal:    goal.MinProteinGoal,
			MaxCalorieGoal:    goal.MaxCalorieGoal,
			IsDietMode:        goal.DietMode,
			IsHighProteinMode: goal.HighProteinMode,
		}
		if pg != (domain.PromptNutritionGoal{}) {
			info.NutritionGoal = &pg
		}
	}
	if info.Allergies != nil || info.NutritionGoal != nil {
		prompt.UserInfo = &info
	}

	for _, m := range menus {
		pm := domain.PromptMenu{
			ID:                 m.ID,
			Name:               m.Name,
			RestaurantName:     m.RestaurantName,
			Price:              m.Price,
			AllergyIngredients: m.AllergyIngredients,
		}
		if n := m.Nutrition; n != nil {
			pm.NutritionInfo = &domain.PromptNutrition{
				Calories:    n.Calories,
				Protein:     n.Protein,
				Carbs:       n.Carbs,
				Fat:         n.Fat,
				Sugar:       n.Sugar,
				Sodium:      n.Sodium,
				Fiber:       n.Fiber,
				Cholesterol: n.Cholesterol,
			}
		}
		prompt.Menus = append(prompt.Menus, pm)
	}

	prompt.Recommendations = Recommend(menus, profile).Top(promptRecommendationLimit)
	return prompt
}

var _ ChatServiceInterface = (*ChatService)(nil)
