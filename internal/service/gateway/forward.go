package gateway

import (
	"arena_backend/internal/model"
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SendEscrowFee отправляет 10% ставки в хаб.
// Если хаб не принял взнос, он считается недоставленным и lockedEscrowFee остаётся 0.
func (g *Gateway) SendEscrowFee(ctx context.Context) error {
	if g.bridge == nil {
		return model.ErrNoBridge
	}

	g.mtx.Lock()
	if g.feeInFlight || g.lockedEscrowFee.IsPositive() {
		g.mtx.Unlock()
		return model.ErrEscrowFeeSent
	}
	g.feeInFlight = true
	g.mtx.Unlock()

	fee := g.EscrowFee()
	err := g.bridge.ReceiveEscrowFee(ctx, g, fee)

	g.mtx.Lock()
	g.feeInFlight = false
	if err == nil {
		g.lockedEscrowFee = fee
	}
	g.mtx.Unlock()

	if err != nil {
		g.logger.Warn("escrow fee not delivered", zap.Error(err))
		return errors.Wrap(err, "send escrow fee")
	}
	g.logger.Info("escrow fee delivered", zap.Stringer("fee", fee))
	return nil
}

// ForwardMove передаёт ход игрока в хаб
func (g *Gateway) ForwardMove(ctx context.Context) error {
	move, ok := g.gambler.Move()
	if !ok {
		return model.ErrNoMoveSet
	}
	if g.bridge == nil {
		return model.ErrNoBridge
	}
	if err := g.bridge.ReceiveMove(ctx, g, move); err != nil {
		return errors.Wrap(err, "forward move")
	}
	return nil
}

// ForwardVote передаёт голос игрока за токен раунда
func (g *Gateway) ForwardVote(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.ErrInvalidVote
	}
	if g.bridge == nil {
		return model.ErrNoBridge
	}
	if err := g.bridge.ReceiveVote(ctx, g, token); err != nil {
		return errors.Wrap(err, "forward vote")
	}
	return nil
}
