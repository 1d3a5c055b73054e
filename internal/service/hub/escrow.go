package hub

import (
	"arena_backend/internal/model"
	"arena_backend/internal/service"
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReceiveEscrowFee зачисляет взнос игрока в реестр. Взносы только растут.
func (h *Hub) ReceiveEscrowFee(ctx context.Context, gw service.Gateway, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errors.Wrapf(model.ErrInvalidAmount, "escrow fee %s", amount)
	}

	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.settled {
		return model.ErrRoundSettled
	}
	address := gw.Address()
	h.contributions[address] = h.contributions[address].Add(amount)

	h.logger.Info("escrow fee received",
		zap.String("address", address),
		zap.Stringer("amount", amount),
		zap.Stringer("contribution", h.contributions[address]),
	)
	return nil
}

// ReceiveMove отмечает, что ход игрока готов к розыгрышу.
// Сам ход хранится у игрока, хаб его не дублирует.
func (h *Hub) ReceiveMove(ctx context.Context, gw service.Gateway, move model.Move) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !move.Valid() {
		return errors.Wrapf(model.ErrInvalidMove, "got %q", string(move))
	}
	own, ok := gw.Gambler().Move()
	if !ok {
		return model.ErrNoMoveSet
	}
	if own != move {
		return errors.Wrapf(model.ErrInvalidMove, "forwarded %s but gambler chose %s", move, own)
	}

	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.resolved {
		return model.ErrRoundResolved
	}
	h.ready[gw.Address()] = struct{}{}

	h.logger.Info("move received", zap.String("address", gw.Address()))
	return nil
}

// ReceiveVote голос игрока за токен. Последний голос перезаписывает предыдущий.
func (h *Hub) ReceiveVote(ctx context.Context, gw service.Gateway, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.settled {
		return model.ErrRoundSettled
	}
	h.votes[gw.Address()] = token

	h.logger.Info("vote received", zap.String("address", gw.Address()), zap.String("token", token))
	return nil
}

// GetEscrow копия реестра для аудита
func (h *Hub) GetEscrow() model.Escrow {
	h.mtx.RLock()
	defer h.mtx.RUnlock()

	res := model.Escrow{UserContributions: make(map[string]decimal.Decimal, len(h.contributions))}
	for k, v := range h.contributions {
		res.UserContributions[k] = v
	}
	return res
}

// TokenVotes число голосов по токенам
func (h *Hub) TokenVotes() map[string]int {
	h.mtx.RLock()
	defer h.mtx.RUnlock()

	res := make(map[string]int)
	for _, token := range h.votes {
		res[token]++
	}
	return res
}

// MoveReady получил ли хаб ход игрока
func (h *Hub) MoveReady(address string) bool {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	_, ok := h.ready[address]
	return ok
}
