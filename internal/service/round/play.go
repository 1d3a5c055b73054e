package round

import (
	"arena_backend/internal/model"
	"context"
)

// SubmitMove передаёт заранее выбранный ход игрока в хаб
func (s *serv) SubmitMove(ctx context.Context, roundID, address string) (*model.GamblerState, error) {
	round, gw, err := s.gateway(ctx, roundID, address)
	if err != nil {
		return nil, err
	}
	if err = gw.ForwardMove(ctx); err != nil {
		return nil, err
	}
	return s.state(round.Hub, gw), nil
}

func (s *serv) Vote(ctx context.Context, roundID, address, token string) error {
	_, gw, err := s.gateway(ctx, roundID, address)
	if err != nil {
		return err
	}
	return gw.ForwardVote(ctx, token)
}
