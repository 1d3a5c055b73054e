package env

import (
	"arena_backend/internal/config"

	"github.com/pkg/errors"
)

type arenaConfig struct {
	Players int `env:"ARENA_MIN_PLAYERS" envDefault:"3"`
}

func NewArenaConfig() (config.ArenaConfig, error) {
	cfg, err := parse[arenaConfig]()
	if err != nil {
		return nil, err
	}
	if cfg.Players < 2 {
		return nil, errors.Errorf("arena needs at least 2 players, got %d", cfg.Players)
	}
	return cfg, nil
}

func (c *arenaConfig) MinPlayers() int {
	return c.Players
}
