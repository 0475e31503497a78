package images

import (
	"context"
	"fmt"

	"testly/internal/dbx"
)

// PostgresRepository implements image metadata storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts one processed image record.
func (r *PostgresRepository) Create(ctx context.Context, img *Image) error {
	query := `
		INSERT INTO processed_images (id, original_key, processed_key, width, height, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	res, err := r.db.ExecContext(ctx, query,
		img.ID, img.OriginalKey, img.ProcessedKey, img.Width, img.Height, img.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

// SelectRecent returns up to limit records, newest first.
func (r *PostgresRepository) SelectRecent(ctx context.Context, limit int) ([]*Image, error) {
	query := `
		SELECT id, original_key, processed_key, width, height, created_at
		FROM processed_images
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*Image
	for rows.Next() {
		img := &Image{}
		if err := rows.Scan(&img.ID, &img.OriginalKey, &img.ProcessedKey, &img.Width, &img.Height, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}
