package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"campus-cafeteria/internal/domain"

	"github.com/google/uuid"
)

const userPopularLimit = 3

type MenuService struct {
	repo        MenuRepository
	history     OrderHistoryRepository
	leaderboard PopularityCache
	ratings     RatingCache
}

func NewMenuService(repo MenuRepository, history OrderHistoryRepository, leaderboard PopularityCache, ratings RatingCache) *MenuService {
	return &MenuService{
		repo:        repo,
		history:     history,
		leaderboard: leaderboard,
		ratings:     ratings,
	}
}

func (s *MenuService) Create(ctx context.Context, menu *domain.Menu) error {
	if strings.TrimSpace(menu.Name) == "" {
		return domain.InvalidStatef("menu name is required")
	}
	if menu.Price.IsNegative() {
		return domain.InvalidStatef("menu price must not be negative")
	}
	menu.ID = uuid.NewString()
	return s.repo.CreateMenu(ctx, menu)
}

func (s *MenuService) Update(ctx context.Context, menu *domain.Menu) error {
	if strings.TrimSpace(menu.Name) == "" {
		return domain.InvalidStatef("menu name is required")
	}
	if menu.Price.IsNegative() {
		return domain.InvalidStatef("menu price must not be negative")
	}
	return s.repo.UpdateMenu(ctx, menu)
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.DeleteMenu(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("menu %s not found", id)
	}
	return nil
}

func (s *MenuService) List(ctx context.Context) ([]domain.Menu, error) {
	menus, err := s.repo.ListMenus(ctx)
	if err != nil {
		return nil, err
	}
	s.fillRatings(ctx, menus)
	return menus, nil
}

func (s *MenuService) ListByRestaurant(ctx context.Context, restaurantName string) ([]domain.Menu, error) {
	menus, err := s.repo.ListMenusByRestaurant(ctx, restaurantName)
	if err != nil {
		return nil, err
	}
	s.fillRatings(ctx, menus)
	return menus, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.Menu, error) {
	menu, err := s.repo.GetMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	menu.AverageRating = s.averageRating(ctx, menu.ID)
	return menu, nil
}

func (s *MenuService) Page(ctx context.Context, userID string) (*domain.MenuPage, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	popular, err := s.PopularForUser(ctx, userID, userPopularLimit)
	if err != nil {
		return nil, err
	}
	return &domain.MenuPage{AllMenus: all, PopularMenus: popular}, nil
}

// PopularForUser ranks menus by how often this user ordered them. Menus
// deleted since are skipped.
func (s *MenuService) PopularForUser(ctx context.Context, userID string, limit int) ([]domain.Menu, error) {
	popular := []domain.Menu{}
	if userID == "" {
		return popular, nil
	}
	histories, err := s.history.TopOrderHistory(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	for _, h := range histories {
		menu, err := s.repo.GetMenu(ctx, h.MenuID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		menu.OrderCount = h.OrderCount
		menu.AverageRating = s.averageRating(ctx, menu.ID)
		popular = append(popular, *menu)
	}
	return popular, nil
}

// Popular reads the global leaderboard, falling back to the order history
// aggregate when the cache is empty or unreachable.
func (s *MenuService) Popular(ctx context.Context, limit int) ([]domain.Menu, error) {
	if limit <= 0 {
		limit = 10
	}

	var ranked []domain.PopularMenu
	if s.leaderboard != nil {
		top, err := s.leaderboard.TopMenus(ctx, limit)
		if err != nil {
			slog.Warn("popular menus cache read failed, using database", "error", err)
		}
		ranked = top
	}
	if len(ranked) == 0 {
		fromDB, err := s.history.PopularMenus(ctx, limit)
		if err != nil {
			return nil, err
		}
		ranked = fromDB
	}

	menus := make([]domain.Menu, 0, len(ranked))
	for _, entry := range ranked {
		menu, err := s.repo.GetMenu(ctx, entry.MenuID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		menu.OrderCount = int(entry.Score)
		menu.AverageRating = s.averageRating(ctx, menu.ID)
		menus = append(menus, *menu)
	}
	return menus, nil
}

func (s *MenuService) fillRatings(ctx context.Context, menus []domain.Menu) {
	for i := range menus {
		menus[i].AverageRating = s.averageRating(ctx, menus[i].ID)
	}
}

func (s *MenuService) averageRating(ctx context.Context, menuID string) float64 {
	if s.ratings != nil {
		summary, ok, err := s.ratings.GetRating(ctx, menuID)
		if err != nil {
			slog.Warn("rating cache read failed", "menu_id", menuID, "error", err)
		}
		if ok {
			return summary.AvgRating
		}
	}
	summary, err := s.repo.RatingSummary(ctx, menuID)
	if err != nil {
		slog.Warn("rating summary query failed", "menu_id", menuID, "error", err)
		return 0
	}
	return summary.AvgRating
}

var _ MenuServiceInterface = (*MenuService)(nil)
