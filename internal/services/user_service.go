package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"lostfound/internal/models"
	"lostfound/utils"
)

const (
	verificationCodeTTL = 15 * time.Minute
	sessionTTL          = 24 * 30 * 2 * time.Hour
)

// UserStore is the repository surface the user service depends on.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	MarkEmailVerified(ctx context.Context, userID string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	SetSession(ctx context.Context, session models.Session) error
	GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error)
	DeleteSession(ctx context.Context, userID string) error
}

// CodeStore is the slice of the redis client used for short-lived
// verification and reset codes.
type CodeStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type UserService struct {
	UserRepo     UserStore
	Redis        CodeStore
	TokenManager *utils.TokenManager

	MailEndpoint string
	MailAPIKey   string
	MailFrom     string
}

func (s *UserService) SignUp(ctx context.Context, email, fullName, password string) (models.User, error) {
	_, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return models.User{}, models.ErrDuplicateEmail
	}
	if err != models.ErrUserNotFound {
		return models.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:       uuid.New().String(),
		Email:    email,
		FullName: fullName,
		Password: string(hashedPassword),
	}
	if err := s.UserRepo.CreateUser(ctx, user); err != nil {
		return models.User{}, err
	}

	// The account is created either way; resend-verification covers a
	// failed first delivery.
	if err := s.sendVerificationCode(ctx, "verify", user.Email); err != nil {
		log.Printf("failed to send verification code to %s: %v", user.Email, err)
	}

	user.Password = ""
	return user, nil
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (models.Tokens, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.Tokens{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.Tokens{}, models.ErrInvalidCredentials
	}
	return s.createSession(ctx, user)
}

func (s *UserService) createSession(ctx context.Context, user models.User) (models.Tokens, error) {
	var tokens models.Tokens
	var err error

	tokens.AccessToken, err = s.TokenManager.NewJWT(user)
	if err != nil {
		return models.Tokens{}, err
	}
	tokens.RefreshToken, err = s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}

	session := models.Session{
		UserID:       user.ID,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    time.Now().Add(sessionTTL),
	}
	if err := s.UserRepo.SetSession(ctx, session); err != nil {
		return models.Tokens{}, err
	}
	return tokens, nil
}

// Refresh rotates the access token from a stored refresh token.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (models.Tokens, error) {
	session, err := s.UserRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return models.Tokens{}, models.ErrInvalidCredentials
	}
	if session.ExpiresAt.Before(time.Now()) {
		return models.Tokens{}, models.ErrSessionExpired
	}
	user, err := s.UserRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return models.Tokens{}, err
	}
	return s.createSession(ctx, user)
}

func (s *UserService) VerifyEmail(ctx context.Context, email, code string) error {
	if err := s.checkCode(ctx, "verify", email, code); err != nil {
		return err
	}
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.UserRepo.MarkEmailVerified(ctx, user.ID)
}

func (s *UserService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return nil
	}
	return s.sendVerificationCode(ctx, "verify", email)
}

func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := s.UserRepo.GetUserByEmail(ctx, email); err != nil {
		return err
	}
	return s.sendVerificationCode(ctx, "reset", email)
}

func (s *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := s.checkCode(ctx, "reset", email, code); err != nil {
		return err
	}
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		return err
	}
	// Old sessions stop refreshing after a password reset.
	return s.UserRepo.DeleteSession(ctx, user.ID)
}

func (s *UserService) sendVerificationCode(ctx context.Context, kind, email string) error {
	code := utils.GenerateVerificationCode()
	key := fmt.Sprintf("%s:%s", kind, email)
	if err := s.Redis.Set(ctx, key, code, verificationCodeTTL).Err(); err != nil {
		return err
	}
	return s.sendEmail(email, fmt.Sprintf("Your confirmation code: %s", code))
}

func (s *UserService) checkCode(ctx context.Context, kind, email, code string) error {
	key := fmt.Sprintf("%s:%s", kind, email)
	stored, err := s.Redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return models.ErrInvalidCode
	}
	if err != nil {
		return err
	}
	if stored != code {
		return models.ErrInvalidCode
	}
	return s.Redis.Del(ctx, key).Err()
}

func (s *UserService) sendEmail(to, text string) error {
	if s.MailEndpoint == "" {
		// No mail provider configured; useful for local development.
		log.Printf("mail disabled, message for %s: %s", to, text)
		return nil
	}

	data := url.Values{}
	data.Set("apiKey", s.MailAPIKey)
	data.Set("from", s.MailFrom)
	data.Set("recipient", to)
	data.Set("text", text)

	resp, err := http.PostForm(s.MailEndpoint, data)
	if err != nil {
		return fmt.Errorf("mail request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read mail provider response: %v", err)
	}

	var result struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse mail provider response: %v", err)
	}
	if result.Code != 0 {
		return fmt.Errorf("mail provider error: %s (code %d)", result.Message, result.Code)
	}
	return nil
}
