package tests

import (
	"testing"

	"campus-cafeteria/internal/domain"
	"campus-cafeteria/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestFallbackReply(t *testing.T) {
	allergic := domain.DietaryProfile{Allergies: domain.Some([]string{"돼지고기", "새우"})}
	dieting := domain.DietaryProfile{NutritionGoal: domain.Some(domain.NutritionGoal{DailyCalorieGoal: intPtr(600)})}
	strict := domain.DietaryProfile{NutritionGoal: domain.Some(domain.NutritionGoal{DailyCalorieGoal: intPtr(200)})}

	tests := []struct {
		name     string
		message  string
		profile  domain.DietaryProfile
		contains []string
		excludes []string
	}{
		{
			name:     "greeting",
			message:  "안녕하세요",
			contains: []string{"학식 주문 도우미"},
		},
		{
			name:     "greeting_english",
			message:  "Hello there",
			contains: []string{"학식 주문 도우미"},
		},
		{
			name:     "menu_question",
			message:  "오늘 뭐 나와?",
			contains: []string{"메뉴 화면"},
		},
		{
			name:     "recommendation",
			message:  "추천 좀 해줘",
			contains: []string{"지난 주문 이력"},
		},
		{
			name:     "ordering",
			message:  "주문 어떻게 해?",
			contains: []string{"장바구니에 담은 뒤"},
		},
		{
			name:     "price",
			message:  "얼마야?",
			contains: []string{"총 금액"},
		},
		{
			name:     "default",
			message:  "고마워",
			contains: []string{"무엇이든 물어보세요"},
		},
		{
			name:     "allergy_without_profile",
			message:  "알레르기 확인해줘",
			contains: []string{"등록된 알레르기 유발성분이 없습니다"},
		},
		{
			name:     "allergy_list",
			message:  "내 알레르기 정보 알려줘",
			profile:  allergic,
			contains: []string{"돼지고기, 새우"},
		},
		{
			name:     "allergy_conflict_in_named_menu",
			message:  "돈까스 메뉴에 알러지 성분 있어?",
			profile:  allergic,
			contains: []string{"돈까스 메뉴에는 알레르기 유발성분 '돼지고기'"},
		},
		{
			name:     "allergy_safe_named_menu",
			message:  "김치찌개 메뉴 알레르기 괜찮아?",
			profile:  allergic,
			contains: []string{"김치찌개 메뉴에는 등록하신 알레르기 유발성분이 없습니다"},
		},
		{
			name:     "allergy_unknown_menu",
			message:  "이 메뉴 알레르기 괜찮아?",
			profile:  allergic,
			contains: []string{"메뉴 이름을 정확히"},
		},
		{
			name:     "calories_without_goal",
			message:  "칼로리 낮은 거",
			contains: []string{"칼로리가 가장 낮은 메뉴는 샐러드 (320kcal)", "돈까스 (850kcal)"},
		},
		{
			name:     "calories_with_goal",
			message:  "다이어트 중이야",
			profile:  dieting,
			contains: []string{"600kcal 이하", "샐러드 (320kcal)", "다른 추천 메뉴: 닭가슴살 덮밥 (540kcal)"},
		},
		{
			name:     "calories_goal_unreachable",
			message:  "칼로리 알려줘",
			profile:  strict,
			contains: []string{"200kcal 이하인 메뉴를 찾지 못했습니다"},
		},
		{
			name:     "protein",
			message:  "단백질 많은 거",
			contains: []string{"단백질이 가장 많은 메뉴는 닭가슴살 덮밥 (41.5g)"},
			excludes: []string{"kcal"},
		},
		{
			name:     "nutrition_without_signal",
			message:  "영양성분 궁금해",
			contains: []string{"칼로리나 단백질 목표를 설정하시면"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			reply := service.FallbackReply(testCase.message, testCase.profile, nutritionMenus())
			for _, want := range testCase.contains {
				assert.Contains(t, reply, want)
			}
			for _, unwanted := range testCase.excludes {
				assert.NotContains(t, reply, unwanted)
			}
		})
	}
}

func TestFallbackReply_NoMenus(t *testing.T) {
	reply := service.FallbackReply("칼로리 낮은 메뉴", domain.DietaryProfile{}, nil)
	assert.Contains(t, reply, "칼로리나 단백질 목표를 설정하시면")
}
