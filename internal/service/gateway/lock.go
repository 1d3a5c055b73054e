package gateway

import (
	"arena_backend/internal/model"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LockHook имитирует транзакцию блокировки в сети.
// Ошибка означает, что сеть отказала и средства не двигались.
type LockHook func() error

// LockWager блокирует 90% ставки. При отказе hook ставка не меняется,
// частичной блокировки не бывает. Повторный вызов просто пересчитывает сумму.
func (g *Gateway) LockWager(amount decimal.Decimal, hook LockHook) error {
	if !amount.IsPositive() {
		return errors.Wrapf(model.ErrInvalidWager, "lock amount %s", amount)
	}

	// Хук вызывается без мьютекса: это чужой код
	if hook != nil {
		if err := hook(); err != nil {
			g.logger.Warn("wager lock rejected by chain", zap.Error(err))
			return &model.WagerLockError{Reason: err}
		}
	}

	locked := amount.Mul(model.StakeShare)

	g.mtx.Lock()
	g.lockedWager = locked
	g.mtx.Unlock()

	g.logger.Info("wager locked", zap.Stringer("locked", locked))
	return nil
}

// LockWagerWithDelay регистрирует отложенную блокировку.
// Ставка остаётся 0 до ConfirmDelayedLock. Предыдущий хэндл отменяется.
func (g *Gateway) LockWagerWithDelay(amount decimal.Decimal, delay time.Duration) (*PendingLock, error) {
	if !amount.IsPositive() {
		return nil, errors.Wrapf(model.ErrInvalidWager, "lock amount %s", amount)
	}
	if delay < 0 {
		delay = 0
	}

	p := newPendingLock(amount, delay)

	g.mtx.Lock()
	prev := g.pending
	g.pending = p
	g.mtx.Unlock()

	if prev != nil {
		prev.Cancel()
	}

	g.logger.Info("delayed wager lock registered",
		zap.String("pending_id", p.ID()),
		zap.Duration("delay", delay),
		zap.Int("required_confirmations", g.requiredConfirmations),
	)
	return p, nil
}

// ConfirmDelayedLock фиксирует отложенную блокировку, если ставка ещё не
// заблокирована. Отмена таймера подтверждению не мешает.
func (g *Gateway) ConfirmDelayedLock() decimal.Decimal {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	p := g.pending
	g.pending = nil
	if p != nil {
		p.Cancel()
	}

	if g.lockedWager.IsZero() {
		amount := g.gambler.WagerAmount()
		if p != nil {
			amount = p.Amount()
		}
		g.lockedWager = amount.Mul(model.StakeShare)
		g.logger.Info("delayed wager lock confirmed", zap.Stringer("locked", g.lockedWager))
	}
	return g.lockedWager
}

// RefundWager переносит всю заблокированную сумму в выплату
func (g *Gateway) RefundWager() decimal.Decimal {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	refunded := g.lockedWager
	g.payoutReceived = g.payoutReceived.Add(refunded)
	g.lockedWager = decimal.Zero

	if refunded.IsPositive() {
		g.logger.Info("wager refunded", zap.Stringer("amount", refunded))
	}
	return refunded
}

// ReleaseWager обнуляет блокировку после того, как раунд разыгран
// и ставка ушла в общий пул
func (g *Gateway) ReleaseWager() decimal.Decimal {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	released := g.lockedWager
	g.lockedWager = decimal.Zero
	return released
}

// CancelPending отменяет отложенную блокировку, если она есть.
// Сама ставка не меняется.
func (g *Gateway) CancelPending() bool {
	g.mtx.Lock()
	p := g.pending
	g.pending = nil
	g.mtx.Unlock()

	if p == nil {
		return false
	}
	p.Cancel()
	g.logger.Info("delayed wager lock cancelled", zap.String("pending_id", p.ID()))
	return true
}
