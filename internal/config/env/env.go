package env

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// parse заполняет структуру из переменных окружения по тегам env
func parse[T any]() (*T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	return &cfg, nil
}
