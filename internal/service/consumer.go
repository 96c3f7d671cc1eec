package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"campus-cafeteria/internal/domain"

	"github.com/segmentio/kafka-go"
)

// MessageReader is satisfied by *kafka.Reader.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Consumer keeps the popularity leaderboard and the rating cache in step with
// the events published by orders, payments and ratings.
type Consumer struct {
	Reader      MessageReader
	Leaderboard PopularityCache
	Menus       MenuRepository
	Ratings     RatingCache
}

func NewConsumer(reader MessageReader, leaderboard PopularityCache, menus MenuRepository, ratings RatingCache) *Consumer {
	return &Consumer{
		Reader:      reader,
		Leaderboard: leaderboard,
		Menus:       menus,
		Ratings:     ratings,
	}
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	slog.Info("event consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				slog.Info("event consumer stopped")
				return
			}
			slog.Error("read message failed", "error", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			slog.Error("unmarshal message failed", "offset", message.Offset, "error", err)
			continue
		}

		if err := c.Process(ctx, msg); err != nil {
			slog.Error("process message failed", "type", msg.Type, "error", err)
		}
	}
}

func (c *Consumer) Process(ctx context.Context, msg domain.KafkaMessage) error {
	switch msg.Type {
	case domain.EventOrderCreated:
		return c.countOrder(ctx, msg)
	case domain.EventNewRating:
		return c.refreshRating(ctx, msg)
	default:
		return nil
	}
}

func (c *Consumer) countOrder(ctx context.Context, msg domain.KafkaMessage) error {
	for _, item := range msg.Items {
		if item.MenuID == "" || item.Quantity <= 0 {
			continue
		}
		if err := c.Leaderboard.IncrementMenu(ctx, item.MenuID, item.Quantity); err != nil {
			return err
		}
	}
	slog.Debug("order counted", "order_id", msg.OrderID, "items", len(msg.Items))
	return nil
}

func (c *Consumer) refreshRating(ctx context.Context, msg domain.KafkaMessage) error {
	summary, err := c.Menus.RatingSummary(ctx, msg.MenuID)
	if err != nil {
		return err
	}
	if err := c.Ratings.SetRating(ctx, summary); err != nil {
		return err
	}
	slog.Debug("rating refreshed", "menu_id", msg.MenuID, "avg_rating", summary.AvgRating, "count", summary.Count)
	return nil
}
