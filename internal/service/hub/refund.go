package hub

import (
	"arena_backend/internal/model"
	"arena_backend/internal/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RefundLockedWagers возвращает каждому гейтвею его заблокированную ставку.
// Используется после любой ничьей. После решительного раунда возвращает
// ставки только тем, кто не участвовал в розыгрыше. Второй вызов отклоняется.
func (h *Hub) RefundLockedWagers() (map[string]decimal.Decimal, error) {
	h.mtx.Lock()
	if h.refunded {
		h.mtx.Unlock()
		return nil, model.ErrRoundSettled
	}
	h.refunded = true
	h.settled = true
	h.resolved = true
	gws := make([]service.Gateway, len(h.gateways))
	copy(gws, h.gateways)
	h.mtx.Unlock()

	refunds := make(map[string]decimal.Decimal, len(gws))
	total := decimal.Zero
	for _, gw := range gws {
		amount := gw.RefundWager()
		refunds[gw.Address()] = amount
		total = total.Add(amount)
	}

	h.logger.Info("locked wagers refunded", zap.Int("gateways", len(gws)), zap.Stringer("total", total))
	return refunds, nil
}

// GuardLock выполняет блокировку ставки под мьютексом хаба.
// После розыгрыша блокировки отклоняются с ErrRoundResolved.
func (h *Hub) GuardLock(lock func() error) error {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.resolved {
		return model.ErrRoundResolved
	}
	return lock()
}
