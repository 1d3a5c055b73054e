package env

import "arena_backend/internal/config"

type logConfig struct {
	Lvl     string `env:"LOG_LEVEL" envDefault:"info"`
	Path    string `env:"LOG_FILE"`
	MaxSize int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	Backups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
	MaxAge  int    `env:"LOG_MAX_AGE_DAYS" envDefault:"30"`
}

func NewLogConfig() (config.LogConfig, error) {
	cfg, err := parse[logConfig]()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *logConfig) Level() string   { return c.Lvl }
func (c *logConfig) File() string    { return c.Path }
func (c *logConfig) MaxSizeMB() int  { return c.MaxSize }
func (c *logConfig) MaxBackups() int { return c.Backups }
func (c *logConfig) MaxAgeDays() int { return c.MaxAge }
