package repositories

import (
	"context"
	"database/sql"

	"lostfound/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) error {
	query := `
		INSERT INTO users (id, email, full_name, password_hash, email_verified, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID, user.Email, user.FullName, user.Password, user.EmailVerified,
	)
	return err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, email_verified, created_at
		FROM users
		WHERE id = ?
	`
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.FullName, &user.Password, &user.EmailVerified, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, email_verified, created_at
		FROM users
		WHERE email = ?
	`
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.FullName, &user.Password, &user.EmailVerified, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET email_verified = TRUE WHERE id = ?`, userID)
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET password_hash = ? WHERE id = ?`, passwordHash, userID)
	return err
}

func (r *UserRepository) SetSession(ctx context.Context, session models.Session) error {
	query := `
		INSERT INTO sessions (user_id, refresh_token, expires_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)
	`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `
		SELECT user_id, refresh_token, expires_at
		FROM sessions
		WHERE refresh_token = ?
	`
	var session models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.RefreshToken, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.Session{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) DeleteSession(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}
