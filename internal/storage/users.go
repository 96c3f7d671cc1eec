package storage

import (
	"context"

	"campus-cafeteria/internal/domain"
)

// Allergies and nutrition goals are nullable JSONB: NULL means the user never
// recorded one, which differs from a recorded empty list.
func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var (
		u         domain.User
		allergies []byte
		goal      []byte
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, allergies, nutrition_goal, created_at, updated_at
		FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &allergies, &goal, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "user %s not found", id)
	}
	if err := decodeJSON(allergies, &u.Allergies); err != nil {
		return nil, err
	}
	if err := decodeJSON(goal, &u.NutritionGoal); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) SaveUser(ctx context.Context, user *domain.User) error {
	allergies, err := optionalColumn(user.Allergies)
	if err != nil {
		return err
	}
	goal, err := optionalColumn(user.NutritionGoal)
	if err != nil {
		return err
	}
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO users (id, name, allergies, nutrition_goal)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, allergies = EXCLUDED.allergies,
			nutrition_goal = EXCLUDED.nutrition_goal, updated_at = NOW()
		RETURNING created_at, updated_at`,
		user.ID, user.Name, allergies, goal).
		Scan(&user.CreatedAt, &user.UpdatedAt)
}

// optionalColumn yields an untyped nil for an absent value so the driver
// writes SQL NULL.
func optionalColumn[T any](o domain.Optional[T]) (any, error) {
	v, ok := o.Get()
	if !ok {
		return nil, nil
	}
	return jsonColumn(v)
}
