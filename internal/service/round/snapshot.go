package round

import (
	"arena_backend/internal/model"
	statsModel "arena_backend/internal/repository/stats_repo/model"
	"context"
)

// Snapshot состояние раунда для слоя живых обновлений
func (s *serv) Snapshot(ctx context.Context, roundID string) (*model.RoundSnapshot, error) {
	round, err := s.repo.Get(ctx, roundID)
	if err != nil {
		return nil, err
	}
	gateways, err := s.repo.Gateways(ctx, roundID)
	if err != nil {
		return nil, err
	}

	snap := &model.RoundSnapshot{
		ID:              roundID,
		Settled:         round.Hub.Settled(),
		MinArenaPlayers: round.Hub.MinArenaPlayers(),
		Escrow:          round.Hub.GetEscrow(),
		Gamblers:        make([]model.GamblerState, 0, len(gateways)),
		TokenVotes:      round.Hub.TokenVotes(),
	}
	for _, gw := range gateways {
		snap.Gamblers = append(snap.Gamblers, *s.state(round.Hub, gw))
	}
	return snap, nil
}

func (s *serv) Escrow(ctx context.Context, roundID string) (model.Escrow, error) {
	round, err := s.repo.Get(ctx, roundID)
	if err != nil {
		return model.Escrow{}, err
	}
	return round.Hub.GetEscrow(), nil
}

func (s *serv) Gambler(ctx context.Context, roundID, address string) (*model.GamblerState, error) {
	round, gw, err := s.gateway(ctx, roundID, address)
	if err != nil {
		return nil, err
	}
	return s.state(round.Hub, gw), nil
}

// Stats статистика дома по закрытым раундам
func (s *serv) Stats(_ context.Context) statsModel.HouseStats {
	return s.statsRepo.HouseStats()
}
