package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campus-cafeteria/internal/domain"

	"github.com/google/uuid"
)

type RatingService struct {
	repository RatingRepository
	menus      MenuRepository
	publisher  EventPublisher
}

func NewRatingService(repository RatingRepository, menus MenuRepository, publisher EventPublisher) *RatingService {
	return &RatingService{
		repository: repository,
		menus:      menus,
		publisher:  publisher,
	}
}

// Upsert keeps one rating per (menu, user): the second call overwrites the
// first.
func (s *RatingService) Upsert(ctx context.Context, menuID, userID string, req domain.RatingRequest) (*domain.MenuRating, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, domain.InvalidStatef("rating must be between 1 and 5")
	}

	menu, err := s.menus.GetMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repository.GetRatingByMenuAndUser(ctx, menuID, userID)
	switch {
	case err == nil:
		existing.Rating = req.Rating
		existing.Comment = req.Comment
		if err := s.repository.UpdateRating(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update rating: %w", err)
		}
	case errors.Is(err, domain.ErrNotFound):
		existing = &domain.MenuRating{
			ID:      uuid.NewString(),
			MenuID:  menuID,
			UserID:  userID,
			Rating:  req.Rating,
			Comment: req.Comment,
		}
		if err := s.repository.InsertRating(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to insert rating: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to check existing rating: %w", err)
	}
	existing.MenuName = menu.Name

	s.publish(ctx, domain.KafkaMessage{
		Type:      domain.EventNewRating,
		MenuID:    menuID,
		UserID:    userID,
		Rating:    req.Rating,
		Timestamp: time.Now(),
	})

	return existing, nil
}

func (s *RatingService) ListByMenu(ctx context.Context, menuID string) ([]domain.MenuRating, error) {
	ratings, err := s.repository.ListRatingsByMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	return s.withMenuNames(ctx, ratings), nil
}

func (s *RatingService) ListByUser(ctx context.Context, userID string) ([]domain.MenuRating, error) {
	ratings, err := s.repository.ListRatingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withMenuNames(ctx, ratings), nil
}

// Delete is idempotent. Removing a rating re-announces its menu so the cached
// average is recomputed without it.
func (s *RatingService) Delete(ctx context.Context, id string) error {
	menuID, err := s.repository.DeleteRating(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	if menuID == "" {
		return nil
	}
	s.publish(ctx, domain.KafkaMessage{
		Type:      domain.EventNewRating,
		MenuID:    menuID,
		Timestamp: time.Now(),
	})
	return nil
}

func (s *RatingService) publish(ctx context.Context, msg domain.KafkaMessage) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		slog.Warn("event publish failed", "type", msg.Type, "menu_id", msg.MenuID, "error", err)
	}
}

// withMenuNames leaves the name empty for menus that no longer exist.
func (s *RatingService) withMenuNames(ctx context.Context, ratings []domain.MenuRating) []domain.MenuRating {
	names := make(map[string]string)
	for i := range ratings {
		name, ok := names[ratings[i].MenuID]
		if !ok {
			if menu, err := s.menus.GetMenu(ctx, ratings[i].MenuID); err == nil {
				name = menu.Name
			}
			names[ratings[i].MenuID] = name
		}
		ratings[i].MenuName = name
	}
	return ratings
}

var _ RatingServiceInterface = (*RatingService)(nil)
