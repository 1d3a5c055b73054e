package env

import "arena_backend/internal/config"

type httpConfig struct {
	Addr string `env:"HTTP_ADDRESS" envDefault:":8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	cfg, err := parse[httpConfig]()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *httpConfig) Address() string {
	return c.Addr
}
