package storage

import (
	"context"
	"strconv"
	"time"

	"campus-cafeteria/internal/domain"

	"github.com/redis/go-redis/v9"
)

const popularMenusKey = "menus:popular"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) RatingKey(menuID string) string {
	return "menu:rating:" + menuID
}

func (c *RedisCache) IncrementMenu(ctx context.Context, menuID string, quantity int) error {
	return c.Client.ZIncrBy(ctx, popularMenusKey, float64(quantity), menuID).Err()
}

func (c *RedisCache) TopMenus(ctx context.Context, limit int) ([]domain.PopularMenu, error) {
	entries, err := c.Client.ZRevRangeWithScores(ctx, popularMenusKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	popular := make([]domain.PopularMenu, 0, len(entries))
	for _, z := range entries {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		popular = append(popular, domain.PopularMenu{MenuID: member, Score: z.Score})
	}
	return popular, nil
}

// GetRating reports false when the menu has no cached summary.
func (c *RedisCache) GetRating(ctx context.Context, menuID string) (domain.RatingSummary, bool, error) {
	fields, err := c.Client.HGetAll(ctx, c.RatingKey(menuID)).Result()
	if err != nil {
		return domain.RatingSummary{}, false, err
	}
	raw, ok := fields["avg_rating"]
	if !ok {
		return domain.RatingSummary{}, false, nil
	}

	summary := domain.RatingSummary{MenuID: menuID}
	if summary.AvgRating, err = strconv.ParseFloat(raw, 64); err != nil {
		return domain.RatingSummary{}, false, err
	}
	if count, ok := fields["count"]; ok {
		if summary.Count, err = strconv.Atoi(count); err != nil {
			return domain.RatingSummary{}, false, err
		}
	}
	return summary, true, nil
}

func (c *RedisCache) SetRating(ctx context.Context, summary domain.RatingSummary) error {
	key := c.RatingKey(summary.MenuID)
	pipe := c.Client.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		"avg_rating":   summary.AvgRating,
		"count":        summary.Count,
		"last_updated": time.Now().Unix(),
	})
	pipe.Expire(ctx, key, c.TTL)
	_, err := pipe.Exec(ctx)
	return err
}
