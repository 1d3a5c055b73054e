package env

import (
	"arena_backend/internal/config"
	"time"

	"github.com/pkg/errors"
)

type jwtConfig struct {
	SecretKey string        `env:"ACCESS_TOKEN,required,notEmpty"`
	Duration  time.Duration `env:"ACCESS_TOKEN_DURATION" envDefault:"15m"`
}

func NewJWTConfig() (config.JWTConfig, error) {
	cfg, err := parse[jwtConfig]()
	if err != nil {
		return nil, err
	}
	if cfg.Duration <= 0 {
		return nil, errors.Errorf("invalid access token duration: %s", cfg.Duration)
	}
	return cfg, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.SecretKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.Duration
}
