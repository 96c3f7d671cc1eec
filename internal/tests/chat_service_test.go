package tests

import (
	"context"
	"testing"

	"campus-cafeteria/internal/domain"
	"campus-cafeteria/internal/mocks"
	"campus-cafeteria/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func decimalPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func nutritionMenus() []domain.Menu {
	return []domain.Menu{
		{ID: "m1", Name: "돈까스", Price: decimal.NewFromInt(7000),
			Nutrition:          &domain.NutritionInfo{Calories: intPtr(850), Protein: decimalPtr(32)},
			AllergyIngredients: []string{"밀", "돼지고기"}},
		{ID: "m2", Name: "샐러드", Price: decimal.NewFromInt(6000),
			Nutrition: &domain.NutritionInfo{Calories: intPtr(320), Protein: decimalPtr(12)}},
		{ID: "m3", Name: "닭가슴살 덮밥", Price: decimal.NewFromInt(6500),
			Nutrition: &domain.NutritionInfo{Calories: intPtr(540), Protein: decimalPtr(41.5)}},
		{ID: "m4", Name: "김치찌개", Price: decimal.NewFromInt(6000),
			AllergyIngredients: []string{"대두"}},
	}
}

type chatDeps struct {
	repo      *mocks.ChatRepository
	profiles  *mocks.DietaryProfiler
	menus     *mocks.MenuRepository
	generator *mocks.TextGenerator
}

func newChatDeps(t *testing.T) chatDeps {
	return chatDeps{
		repo:      mocks.NewChatRepository(t),
		profiles:  mocks.NewDietaryProfiler(t),
		menus:     mocks.NewMenuRepository(t),
		generator: mocks.NewTextGenerator(t),
	}
}

// expectTurn wires the common persistence and lookup calls of one Send.
func (d chatDeps) expectTurn(ctx context.Context, profile domain.DietaryProfile, transcript []domain.ChatMessage) {
	d.repo.On("SaveChatMessage", ctx, mock.MatchedBy(func(m *domain.ChatMessage) bool {
		return m.Role == domain.ChatRoleUser
	})).Return(nil).Once()
	d.repo.On("ListChatBySession", ctx, mock.AnythingOfType("string")).Return(transcript, nil).Once()
	d.profiles.On("DietaryProfile", ctx, "u1").Return(profile, nil).Once()
	d.menus.On("ListMenus", ctx).Return(nutritionMenus(), nil).Once()
	d.repo.On("SaveChatMessage", ctx, mock.MatchedBy(func(m *domain.ChatMessage) bool {
		return m.Role == domain.ChatRoleAssistant
	})).Return(nil).Once()
}

func TestChatService_Send_UsesGenerator(t *testing.T) {
	ctx := context.Background()
	deps := newChatDeps(t)

	transcript := []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Message: "안녕"},
		{Role: domain.ChatRoleAssistant, Message: "안녕", Response: "안녕하세요!"},
		{Role: domain.ChatRoleUser, Message: "점심 추천해줘"},
	}
	deps.expectTurn(ctx, domain.DietaryProfile{}, transcript)
	deps.generator.On("Generate", ctx, mock.MatchedBy(func(p domain.ChatPrompt) bool {
		return p.Message == "점심 추천해줘" &&
			len(p.PreviousMessages) == 3 &&
			p.PreviousMessages[1].Content == "안녕하세요!" &&
			len(p.Menus) == 4 &&
			len(p.Recommendations) > 0
	})).Return("닭가슴살 덮밥을 추천해요.", nil).Once()

	svc := service.NewChatService(deps.repo, deps.profiles, deps.menus, deps.generator)
	reply, err := svc.Send(ctx, "u1", domain.ChatRequest{Message: "점심 추천해줘", SessionID: "s1"})

	require.NoError(t, err)
	assert.Equal(t, "s1", reply.SessionID)
	assert.Equal(t, domain.ChatRoleAssistant, reply.Role)
	assert.Equal(t, "점심 추천해줘", reply.Message)
	assert.Equal(t, "닭가슴살 덮밥을 추천해요.", reply.Response)
}

func TestChatService_Send_FallsBack(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		prepareMocks func(generator *mocks.TextGenerator)
		noGenerator  bool
	}{
		{
			name: "generator_error",
			prepareMocks: func(generator *mocks.TextGenerator) {
				generator.On("Generate", ctx, mock.Anything).
					Return("", domain.ExternalServicef("llm returned status 503")).Once()
			},
		},
		{
			name: "generator_blank_reply",
			prepareMocks: func(generator *mocks.TextGenerator) {
				generator.On("Generate", ctx, mock.Anything).Return("  ", nil).Once()
			},
		},
		{
			name:         "generator_not_configured",
			prepareMocks: func(generator *mocks.TextGenerator) {},
			noGenerator:  true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps := newChatDeps(t)
			deps.expectTurn(ctx, domain.DietaryProfile{}, nil)
			testCase.prepareMocks(deps.generator)

			var generator service.TextGenerator = deps.generator
			if testCase.noGenerator {
				generator = nil
			}
			svc := service.NewChatService(deps.repo, deps.profiles, deps.menus, generator)

			reply, err := svc.Send(ctx, "u1", domain.ChatRequest{Message: "칼로리 낮은 메뉴 알려줘", SessionID: "s1"})
			require.NoError(t, err)
			assert.Contains(t, reply.Response, "kcal")
			assert.Contains(t, reply.Response, "샐러드")
		})
	}
}

func TestChatService_Send_NewSession(t *testing.T) {
	ctx := context.Background()
	deps := newChatDeps(t)
	deps.expectTurn(ctx, domain.DietaryProfile{}, nil)
	deps.generator.On("Generate", ctx, mock.Anything).Return("네!", nil).Once()

	svc := service.NewChatService(deps.repo, deps.profiles, deps.menus, deps.generator)
	reply, err := svc.Send(ctx, "u1", domain.ChatRequest{Message: "안녕"})

	require.NoError(t, err)
	assert.NotEmpty(t, reply.SessionID)
}

func TestChatService_Send_BlankMessage(t *testing.T) {
	deps := newChatDeps(t)
	svc := service.NewChatService(deps.repo, deps.profiles, deps.menus, deps.generator)

	_, err := svc.Send(context.Background(), "u1", domain.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestBuildPrompt(t *testing.T) {
	profile := domain.DietaryProfile{
		Allergies: domain.Some([]string{"밀"}),
		NutritionGoal: domain.Some(domain.NutritionGoal{
			DailyCalorieGoal: intPtr(600),
			MinProteinGoal:   decimalPtr(30),
		}),
	}

	prompt := service.BuildPrompt("추천해줘", nil, profile, nutritionMenus())

	require.NotNil(t, prompt.UserInfo)
	assert.Equal(t, []string{"밀"}, prompt.UserInfo.Allergies)
	require.NotNil(t, prompt.UserInfo.NutritionGoal)
	assert.Equal(t, 600, *prompt.UserInfo.NutritionGoal.DailyCalorieGoal)

	require.Len(t, prompt.Menus, 4)
	assert.NotNil(t, prompt.Menus[0].NutritionInfo)
	assert.Nil(t, prompt.Menus[3].NutritionInfo)

	var names []string
	for _, r := range prompt.Recommendations {
		names = append(names, string(r.Kind)+":"+r.MenuName)
	}
	assert.Equal(t, []string{
		"LOW_CALORIE:샐러드",
		"LOW_CALORIE:닭가슴살 덮밥",
		"HIGH_PROTEIN:닭가슴살 덮밥",
		"HIGH_PROTEIN:돈까스",
	}, names)
}

func TestBuildPrompt_EmptyProfileOmitsUserInfo(t *testing.T) {
	prompt := service.BuildPrompt("hi", nil, domain.DietaryProfile{
		Allergies: domain.Some([]string{}),
	}, nil)

	assert.Nil(t, prompt.UserInfo)
	assert.Empty(t, prompt.Menus)
	assert.Empty(t, prompt.Recommendations)
}
