package storage

import (
	"context"

	"campus-cafeteria/internal/domain"
)

const tableColumns = "id, table_number, capacity, restaurant_name, is_available, qr_code, created_at, updated_at"

func scanTable(row rowScanner) (*domain.Table, error) {
	var t domain.Table
	if err := row.Scan(&t.ID, &t.TableNumber, &t.Capacity, &t.RestaurantName, &t.IsAvailable, &t.QRCode, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) CreateTable(ctx context.Context, table *domain.Table) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO cafeteria_tables (id, table_number, capacity, restaurant_name, is_available, qr_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		table.ID, table.TableNumber, table.Capacity, table.RestaurantName, table.IsAvailable, table.QRCode).
		Scan(&table.CreatedAt, &table.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.InvalidStatef("qr code %s is already assigned", table.QRCode)
	}
	return err
}

func (r *PostgresRepository) ListTables(ctx context.Context) ([]domain.Table, error) {
	return r.listTables(ctx, "SELECT "+tableColumns+" FROM cafeteria_tables ORDER BY table_number")
}

func (r *PostgresRepository) ListAvailableTables(ctx context.Context) ([]domain.Table, error) {
	return r.listTables(ctx, "SELECT "+tableColumns+" FROM cafeteria_tables WHERE is_available = TRUE ORDER BY table_number")
}

func (r *PostgresRepository) listTables(ctx context.Context, query string) ([]domain.Table, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		tables = append(tables, *t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) GetTable(ctx context.Context, id string) (*domain.Table, error) {
	t, err := scanTable(r.DB.QueryRowContext(ctx, "SELECT "+tableColumns+" FROM cafeteria_tables WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "table %s not found", id)
	}
	return t, nil
}

func (r *PostgresRepository) GetTableByQRCode(ctx context.Context, qrCode string) (*domain.Table, error) {
	t, err := scanTable(r.DB.QueryRowContext(ctx, "SELECT "+tableColumns+" FROM cafeteria_tables WHERE qr_code = $1", qrCode))
	if err != nil {
		return nil, notFound(err, "table with qr code %s not found", qrCode)
	}
	return t, nil
}

func (r *PostgresRepository) SetTableAvailability(ctx context.Context, id string, available bool) (*domain.Table, error) {
	return setTableAvailability(ctx, r.DB, id, available)
}

func setTableAvailability(ctx context.Context, q queryer, id string, available bool) (*domain.Table, error) {
	t, err := scanTable(q.QueryRowContext(ctx, `
		UPDATE cafeteria_tables SET is_available = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+tableColumns, available, id))
	if err != nil {
		return nil, notFound(err, "table %s not found", id)
	}
	return t, nil
}
