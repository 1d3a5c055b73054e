package token

import (
	"arena_backend/internal/model"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// GenerateAccessToken выпускает токен на адрес игрока
func GenerateAccessToken(address string, secretKey []byte, ttl time.Duration) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", model.ErrInvalidAddress
	}

	now := time.Now()
	claims := model.GamblerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   address,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.GamblerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.GamblerClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	claims, ok := token.Claims.(*model.GamblerClaims)
	if !ok || claims.Subject == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
