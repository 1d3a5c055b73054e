package round

import (
	"arena_backend/internal/config"
	"arena_backend/internal/model"
	"arena_backend/internal/repository"
	repoModel "arena_backend/internal/repository/round_repo/model"
	"arena_backend/internal/service"
	"arena_backend/internal/service/gambler"
	"arena_backend/internal/service/gateway"
	"arena_backend/internal/service/hub"
	"context"

	"go.uber.org/zap"
)

type serv struct {
	repo          repository.RoundRepository
	statsRepo     repository.StatsRepository
	minWagers     gambler.MinWagerTable
	confirmations map[string]int
	arenaCfg      config.ArenaConfig
	logger        *zap.Logger
}

// NewRoundService собирает сервис раундов. nil logger означает nop.
func NewRoundService(
	repo repository.RoundRepository,
	statsRepo repository.StatsRepository,
	gameCfg config.GameConfig,
	arenaCfg config.ArenaConfig,
	logger *zap.Logger,
) service.RoundService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &serv{
		repo:          repo,
		statsRepo:     statsRepo,
		minWagers:     gambler.DefaultMinWagers().Override(gameCfg.MinWagers()),
		confirmations: gameCfg.ChainConfirmations(),
		arenaCfg:      arenaCfg,
		logger:        logger,
	}
}

func (s *serv) OpenRound(ctx context.Context) (*model.RoundSnapshot, error) {
	h := hub.NewHub(
		hub.WithLogger(s.logger),
		hub.WithMinArenaPlayers(s.arenaCfg.MinPlayers()),
	)
	if err := s.repo.Create(ctx, repoModel.NewRound(h)); err != nil {
		return nil, err
	}
	s.logger.Info("round opened", zap.String("round_id", h.RoundID()))
	return s.Snapshot(ctx, h.RoundID())
}

func (s *serv) Rounds(ctx context.Context) []string {
	return s.repo.List(ctx)
}

func (s *serv) SetArenaSize(ctx context.Context, roundID string, n int) error {
	round, err := s.repo.Get(ctx, roundID)
	if err != nil {
		return err
	}
	return round.Hub.SetMinArenaPlayers(n)
}

// gateway достаёт раунд и гейтвей игрока одним вызовом
func (s *serv) gateway(ctx context.Context, roundID, address string) (*repoModel.Round, *gateway.Gateway, error) {
	round, err := s.repo.Get(ctx, roundID)
	if err != nil {
		return nil, nil, err
	}
	gw, err := s.repo.Gateway(ctx, roundID, address)
	if err != nil {
		return nil, nil, err
	}
	return round, gw, nil
}

func (s *serv) state(h *hub.Hub, gw *gateway.Gateway) *model.GamblerState {
	g := gw.Gambler()
	move, _ := g.Move()
	return &model.GamblerState{
		Address:               g.Address(),
		Chain:                 g.Chain(),
		Token:                 g.Token(),
		WagerAmount:           g.WagerAmount(),
		Move:                  move,
		MoveReady:             h.MoveReady(g.Address()),
		LockedWager:           gw.LockedWager(),
		LockedEscrowFee:       gw.LockedEscrowFee(),
		PayoutReceived:        gw.PayoutReceived(),
		RequiredConfirmations: gw.RequiredConfirmations(),
		GamesPlayed:           g.GamesPlayed(),
		GamesWon:              g.GamesWon(),
	}
}
