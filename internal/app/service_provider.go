package app

import (
	roundAPI "arena_backend/internal/api/round"
	"arena_backend/internal/config"
	"arena_backend/internal/config/env"
	"arena_backend/internal/logger"
	"arena_backend/internal/middleware"
	"arena_backend/internal/repository"
	"arena_backend/internal/repository/round_repo"
	"arena_backend/internal/repository/stats_repo"
	"arena_backend/internal/service"
	"arena_backend/internal/service/round"
	"context"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	logger *zap.Logger

	// Auth bits
	jwtCfg config.JWTConfig

	// Round bits
	gameCfg   config.GameConfig
	arenaCfg  config.ArenaConfig
	roundRepo repository.RoundRepository
	statsRepo repository.StatsRepository
	roundServ service.RoundService
	roundHand *roundAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LogCfg())
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) ArenaCfg() config.ArenaConfig {
	if sp.arenaCfg == nil {
		cfg, err := env.NewArenaConfig()
		if err != nil {
			panic("failed to get arena config: " + err.Error())
		}
		sp.arenaCfg = cfg
	}
	return sp.arenaCfg
}

func (sp *ServiceProvider) RoundRepository() repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository()
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(stats_repo.DefaultWindowSize)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) RoundService() service.RoundService {
	if sp.roundServ == nil {
		sp.roundServ = round.NewRoundService(sp.RoundRepository(), sp.StatsRepository(), sp.GameCfg(), sp.ArenaCfg(), sp.Logger())
	}
	return sp.roundServ
}

func (sp *ServiceProvider) RoundHandler() *roundAPI.Handler {
	if sp.roundHand == nil {
		sp.roundHand = roundAPI.NewHandler(roundAPI.HandlerDeps{
			Serv:   sp.RoundService(),
			Logger: sp.Logger(),
		})
	}
	return sp.roundHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		sp.router = NewRouter(sp.RoundHandler(), middleware.Auth(sp.JWTCfg().AccessTokenSecretKey(), sp.Logger()))
	}

	return sp.router
}
