package service

import (
	"context"

	"campus-cafeteria/internal/domain"

	"github.com/google/uuid"
)

const (
	titleOrderReady       = "주문 준비 완료"
	messageOrderReady     = "주문이 준비되었습니다. 받으러 와주세요."
	titleOrderCompleted   = "주문 완료"
	messageOrderCompleted = "주문이 완료되었습니다."
	titleMenuAvailable    = "메뉴 제공 시작"
)

// OrderNotifier is what the order workflow needs to alert a user.
type OrderNotifier interface {
	OrderReady(ctx context.Context, order *domain.Order) (*domain.Notification, error)
	OrderCompleted(ctx context.Context, order *domain.Order) (*domain.Notification, error)
}

type NotificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListNotificationsByUser(ctx, userID)
}

func (s *NotificationService) ListUnread(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListUnreadNotifications(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id string) (*domain.Notification, error) {
	return s.repo.MarkNotificationRead(ctx, id)
}

func (s *NotificationService) MenuAvailable(ctx context.Context, userID, menuID, menuName string) (*domain.Notification, error) {
	return s.append(ctx, &domain.Notification{
		UserID:  userID,
		Title:   titleMenuAvailable,
		Message: menuName + " 메뉴가 제공되었습니다.",
		Type:    domain.NotificationMenuAvailable,
	})
}

func (s *NotificationService) OrderReady(ctx context.Context, order *domain.Order) (*domain.Notification, error) {
	return s.append(ctx, &domain.Notification{
		UserID:  order.UserID,
		OrderID: order.ID,
		Title:   titleOrderReady,
		Message: messageOrderReady,
		Type:    domain.NotificationOrderReady,
	})
}

func (s *NotificationService) OrderCompleted(ctx context.Context, order *domain.Order) (*domain.Notification, error) {
	return s.append(ctx, &domain.Notification{
		UserID:  order.UserID,
		OrderID: order.ID,
		Title:   titleOrderCompleted,
		Message: messageOrderCompleted,
		Type:    domain.NotificationOrderCompleted,
	})
}

func (s *NotificationService) append(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.ID = uuid.NewString()
	n.IsRead = false
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

var (
	_ NotificationServiceInterface = (*NotificationService)(nil)
	_ OrderNotifier                = (*NotificationService)(nil)
)
