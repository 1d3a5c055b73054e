package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// GamblerClaims subject токена это адрес кошелька игрока
type GamblerClaims struct {
	jwt.RegisteredClaims
}
