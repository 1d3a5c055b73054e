package env

import (
	"arena_backend/internal/config"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const gameConfigPathEnvName = "GAME_CONFIG_PATH"

// DefaultGameConfigPath используется, если GAME_CONFIG_PATH не задан
const DefaultGameConfigPath = "config.yaml"

type gameYAML struct {
	MinWagers          map[string]string `yaml:"min_wagers"`
	ChainConfirmations map[string]int    `yaml:"chain_confirmations"`
}

type gameConfig struct {
	minWagers     map[string]decimal.Decimal
	confirmations map[string]int
}

// NewGameConfig читает yaml по пути из GAME_CONFIG_PATH.
// Отсутствующий файл по умолчанию не ошибка: остаются стандартные таблицы.
func NewGameConfig() (config.GameConfig, error) {
	path, explicit := os.LookupEnv(gameConfigPathEnvName)
	if !explicit || path == "" {
		path = DefaultGameConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &gameConfig{}, nil
		}
		return nil, errors.Wrapf(err, "read game config %s", path)
	}
	return NewGameConfigFromYAML(data)
}

// NewGameConfigFromYAML разбирает поправки таблицы ставок и подтверждений сетей
func NewGameConfigFromYAML(data []byte) (config.GameConfig, error) {
	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse game config")
	}

	cfg := &gameConfig{
		minWagers:     make(map[string]decimal.Decimal, len(raw.MinWagers)),
		confirmations: make(map[string]int, len(raw.ChainConfirmations)),
	}
	for token, v := range raw.MinWagers {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return nil, errors.Wrapf(err, "min wager for %s", token)
		}
		if !amount.IsPositive() {
			return nil, errors.Errorf("min wager for %s must be positive, got %s", token, v)
		}
		cfg.minWagers[token] = amount
	}
	for chain, n := range raw.ChainConfirmations {
		if n < 0 {
			return nil, errors.Errorf("confirmations for %s must not be negative, got %d", chain, n)
		}
		cfg.confirmations[chain] = n
	}
	return cfg, nil
}

func (c *gameConfig) MinWagers() map[string]decimal.Decimal {
	return c.minWagers
}

func (c *gameConfig) ChainConfirmations() map[string]int {
	return c.confirmations
}
