package repositories

import (
	"context"
	"database/sql"
)

type DeviceTokenRepository struct {
	DB *sql.DB
}

func (r *DeviceTokenRepository) SaveToken(ctx context.Context, userID, token string) error {
	query := `
		INSERT INTO device_tokens (user_id, token, created_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE created_at = NOW()
	`
	_, err := r.DB.ExecContext(ctx, query, userID, token)
	return err
}

func (r *DeviceTokenRepository) GetTokensByUserID(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT token FROM device_tokens WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := []string{}
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

func (r *DeviceTokenRepository) DeleteToken(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM device_tokens WHERE token = ?`, token)
	return err
}
