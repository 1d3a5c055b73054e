package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type LogConfig interface {
	Level() string
	// File путь для ротируемого лога, пусто значит только stdout
	File() string
	MaxSizeMB() int
	MaxBackups() int
	MaxAgeDays() int
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type ArenaConfig interface {
	MinPlayers() int
}

// GameConfig поправки к стандартным таблицам раунда
type GameConfig interface {
	MinWagers() map[string]decimal.Decimal
	ChainConfirmations() map[string]int
}
