package service

import (
	"fmt"
	"strings"

	"campus-cafeteria/internal/domain"
)

const (
	replyGreeting  = "안녕하세요! 학식 주문 도우미입니다. 무엇을 도와드릴까요?"
	replyMenu      = "오늘의 메뉴는 메뉴 화면에서 확인하실 수 있어요. 특정 메뉴 정보나 추천이 필요하면 말씀해주세요!"
	replyRecommend = "인기 메뉴나 지난 주문 이력을 바탕으로 메뉴를 추천해드릴 수 있어요. 어떤 음식을 좋아하시나요?"
	replyOrder     = "메뉴를 골라 장바구니에 담은 뒤 결제하시면 주문이 완료됩니다. 도움이 필요하면 말씀해주세요!"
	replyPrice     = "메뉴별 가격은 메뉴 화면에서, 총 금액은 장바구니에서 확인하실 수 있어요!"
	replyDefault   = "메뉴 추천, 주문 방법, 가격, 알레르기 확인, 영양성분 정보 등 학식 주문에 관한 무엇이든 물어보세요!"
	replyNutrition = "영양성분을 기준으로 메뉴를 추천해드릴 수 있어요. 칼로리나 단백질 목표를 설정하시면 더 정확하게 추천해드립니다."
)

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// FallbackReply answers locally when the text generation collaborator is
// unavailable. Rules are checked in order and the first match wins.
func FallbackReply(message string, profile domain.DietaryProfile, menus []domain.Menu) string {
	text := strings.ToLower(message)

	switch {
	case containsAny(text, "알레르기", "알러지"):
		return allergyReply(text, profile, menus)
	case containsAny(text, "다이어트", "칼로리", "단백질", "영양성분", "영양"):
		return nutritionReply(text, profile, menus)
	case containsAny(text, "안녕", "hello"):
		return replyGreeting
	case containsAny(text, "메뉴", "뭐"):
		return replyMenu
	case containsAny(text, "추천"):
		return replyRecommend
	case containsAny(text, "주문", "시켜"):
		return replyOrder
	case containsAny(text, "비용", "가격", "얼마"):
		return replyPrice
	default:
		return replyDefault
	}
}

func allergyReply(text string, profile domain.DietaryProfile, menus []domain.Menu) string {
	allergies, ok := profile.Allergies.Get()
	if !ok || len(allergies) == 0 {
		return "등록된 알레르기 유발성분이 없습니다. 알레르기 정보를 등록하시면 메뉴를 고를 때 안내해드릴게요."
	}

	if !containsAny(text, "메뉴", "이거", "이것") {
		return fmt.Sprintf("등록된 알레르기 유발성분은 %s입니다. 메뉴를 고를 때 이 성분이 들어있는지 확인해드릴 수 있어요.",
			strings.Join(allergies, ", "))
	}

	for _, menu := range menus {
		if menu.Name == "" || !strings.Contains(text, strings.ToLower(menu.Name)) {
			continue
		}
		if conflicts := AllergenConflicts(menu, allergies); len(conflicts) > 0 {
			return fmt.Sprintf("%s 메뉴에는 알레르기 유발성분 '%s'이(가) 들어있습니다. 주문하실 때 주의해주세요.",
				menu.Name, strings.Join(conflicts, ", "))
		}
		return fmt.Sprintf("%s 메뉴에는 등록하신 알레르기 유발성분이 없습니다. 안심하고 주문하셔도 됩니다.", menu.Name)
	}
	return "메뉴 이름을 정확히 알려주시면 알레르기 유발성분을 확인해드릴게요."
}

func nutritionReply(text string, profile domain.DietaryProfile, menus []domain.Menu) string {
	goal, hasGoal := profile.NutritionGoal.Get()
	rec := Recommend(menus, profile)

	var b strings.Builder

	wantsCalories := containsAny(text, "칼로리", "다이어트") ||
		(hasGoal && (goal.IsDietMode() || goal.DailyCalorieGoal != nil))
	if wantsCalories && len(menus) > 0 {
		writeCalorieSection(&b, rec)
	}

	wantsProtein := containsAny(text, "단백질") ||
		(hasGoal && (goal.IsHighProteinMode() || goal.MinProteinGoal != nil))
	if wantsProtein && len(menus) > 0 {
		writeProteinSection(&b, rec)
	}

	if b.Len() == 0 {
		return replyNutrition
	}
	return strings.TrimSpace(b.String())
}

func writeCalorieSection(b *strings.Builder, rec Recommendations) {
	picks := rec.LowCalorie
	if len(picks) == 0 {
		if rec.CalorieLimit != nil {
			fmt.Fprintf(b, "죄송합니다. %dkcal 이하인 메뉴를 찾지 못했습니다. ", *rec.CalorieLimit)
		}
		return
	}

	best := picks[0]
	if rec.CalorieLimit != nil {
		fmt.Fprintf(b, "일일 칼로리 목표(%dkcal 이하)를 고려하면 %s (%dkcal)을 추천드립니다. ",
			*rec.CalorieLimit, best.MenuName, *best.Calories)
	} else {
		fmt.Fprintf(b, "칼로리가 가장 낮은 메뉴는 %s (%dkcal)입니다. ", best.MenuName, *best.Calories)
	}

	if len(picks) > 1 && len(picks) <= 3 {
		others := make([]string, 0, len(picks)-1)
		for _, p := range picks[1:] {
			others = append(others, fmt.Sprintf("%s (%dkcal)", p.MenuName, *p.Calories))
		}
		fmt.Fprintf(b, "다른 추천 메뉴: %s. ", strings.Join(others, ", "))
	}
}

func writeProteinSection(b *strings.Builder, rec Recommendations) {
	picks := rec.HighProtein
	if len(picks) == 0 {
		if rec.ProteinFloor != nil {
			fmt.Fprintf(b, "죄송합니다. 단백질 %sg 이상인 메뉴를 찾지 못했습니다. ", rec.ProteinFloor.StringFixed(1))
		}
		return
	}

	best := picks[0]
	if rec.ProteinFloor != nil {
		fmt.Fprintf(b, "단백질 목표(%sg 이상)를 고려하면 %s (%sg)을 추천드립니다. ",
			rec.ProteinFloor.StringFixed(1), best.MenuName, best.Protein.StringFixed(1))
	} else {
		fmt.Fprintf(b, "단백질이 가장 많은 메뉴는 %s (%sg)입니다. ", best.MenuName, best.Protein.StringFixed(1))
	}

	if len(picks) > 1 && len(picks) <= 3 {
		others := make([]string, 0, len(picks)-1)
		for _, p := range picks[1:] {
			others = append(others, fmt.Sprintf("%s (%sg)", p.MenuName, p.Protein.StringFixed(1)))
		}
		fmt.Fprintf(b, "다른 추천 메뉴: %s. ", strings.Join(others, ", "))
	}
}
