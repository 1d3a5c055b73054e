package round

import (
	"arena_backend/internal/model"
	"arena_backend/internal/service/gateway"
	"context"
	"time"

	"github.com/shopspring/decimal"
)

func (s *serv) LockWager(ctx context.Context, roundID, address string, amount decimal.Decimal) (*model.GamblerState, error) {
	round, gw, err := s.gateway(ctx, roundID, address)
	if err != nil {
		return nil, err
	}
	err = round.Hub.GuardLock(func() error {
		return gw.LockWager(amount, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.state(round.Hub, gw), nil
}

func (s *serv) LockWagerWithDelay(ctx context.Context, roundID, address string, amount decimal.Decimal, delay time.Duration) (*model.PendingLockInfo, error) {
	round, gw, err := s.gateway(ctx, roundID, address)
	if err != nil {
		return nil, err
	}
	var p *gateway.PendingLock
	err = round.Hub.GuardLock(func() (err error) {
		p, err = gw.LockWagerWithDelay(amount, delay)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &model.PendingLockInfo{
		ID:      p.ID(),
		Address: address,
		Amount:  p.Amount(),
		ReadyAt: p.ReadyAt(),
	}, nil
}

func (s *serv) ConfirmDelayedLock(ctx context.Context, roundID, address string) (*model.GamblerState, error) {
	round, gw, err := s.gateway(ctx, roundID, address)
	if err != nil {
		return nil, err
	}
	err = round.Hub.GuardLock(func() error {
		gw.ConfirmDelayedLock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.state(round.Hub, gw), nil
}

// SendEscrowFee отправляет 10% ставки игрока в реестр хаба
func (s *serv) SendEscrowFee(ctx context.Context, roundID, address string) (*model.GamblerState, error) {
	round, gw, err := s.gateway(ctx, roundID, address)
	if err != nil {
		return nil, err
	}
	if err = gw.SendEscrowFee(ctx); err != nil {
		return nil, err
	}
	return s.state(round.Hub, gw), nil
}
