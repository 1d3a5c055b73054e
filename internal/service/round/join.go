package round

import (
	"arena_backend/internal/model"
	"arena_backend/internal/service/gambler"
	"arena_backend/internal/service/gateway"
	"context"

	"go.uber.org/zap"
)

// Join собирает игрока из данных сети, создаёт ему гейтвей и регистрирует в хабе
func (s *serv) Join(ctx context.Context, roundID string, req model.JoinRequest) (*model.GamblerState, error) {
	round, err := s.repo.Get(ctx, roundID)
	if err != nil {
		return nil, err
	}

	b := gambler.NewBuilder(s.minWagers).
		WithAddress(req.Address).
		WithChain(req.Chain).
		WithToken(req.Token).
		WithWagerAmount(req.WagerAmount).
		WithGamesPlayed(req.GamesPlayed).
		WithGamesWon(req.GamesWon)
	if req.Move != "" {
		move, err := model.ParseMove(req.Move)
		if err != nil {
			return nil, err
		}
		b.WithMove(move)
	}
	if !req.WagerTime.IsZero() {
		b.AtTime(req.WagerTime)
	}

	g, err := b.Build()
	if err != nil {
		return nil, err
	}

	gw := gateway.NewGateway(g, round.Hub,
		gateway.WithRequiredConfirmations(s.confirmations[g.Chain()]),
		gateway.WithLogger(s.logger.With(zap.String("round_id", roundID))),
	)
	if err = round.Hub.Join(gw); err != nil {
		return nil, err
	}
	if err = s.repo.AddGateway(ctx, roundID, gw); err != nil {
		return nil, err
	}
	return s.state(round.Hub, gw), nil
}
