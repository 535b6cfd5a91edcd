package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/exp/rand"

	"lostfound/internal/models"
)

func init() {
	rand.Seed(uint64(time.Now().UnixNano()))
}

type TokenManager struct {
	signingKey string
	accessTTL  time.Duration
}

func NewTokenManager(signingKey string, accessTTL time.Duration) (*TokenManager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}
	return &TokenManager{signingKey: signingKey, accessTTL: accessTTL}, nil
}

// NewJWT issues an access token carrying the user id and email.
func (m *TokenManager) NewJWT(user models.User) (string, error) {
	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(m.accessTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.signingKey))
}

// Parse verifies the token signature and expiry and returns its claims.
func (m *TokenManager) Parse(accessToken string) (models.Claims, error) {
	claims := models.Claims{}
	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.signingKey), nil
	})
	if err != nil {
		return models.Claims{}, err
	}
	if !token.Valid {
		return models.Claims{}, errors.New("invalid token")
	}
	return claims, nil
}

func (m *TokenManager) NewRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b), nil
}

// GenerateVerificationCode returns a 6-digit code for email verification
// and password reset flows.
func GenerateVerificationCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
