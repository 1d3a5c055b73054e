package round

import (
	"arena_backend/internal/model"
	statsModel "arena_backend/internal/repository/stats_repo/model"
	"arena_backend/internal/service/hub"
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ResolveTwoPlayer разыгрывает дуэль. Ничья сразу возвращает ставки.
func (s *serv) ResolveTwoPlayer(ctx context.Context, roundID string) (*model.Settlement, error) {
	round, err := s.repo.Get(ctx, roundID)
	if err != nil {
		return nil, err
	}
	h := round.Hub

	out, err := h.ResolveTwoPlayerGame()
	if err != nil {
		return nil, err
	}

	res := &model.Settlement{RoundID: roundID, Mode: model.ModeTwoParty}
	if out.Tie() {
		res.Tie = true
		refunds, err := h.RefundLockedWagers()
		if err != nil {
			return nil, err
		}
		res.Refunds = nonZero(refunds)
	} else {
		payouts, err := h.DistributePayouts(out, h.BroadcastExecutor())
		if err != nil {
			return nil, err
		}
		res.Payouts = payouts
		res.Winners = []string{out.Winner.Address()}
		res.WinningMove, _ = out.Winner.Move()
	}

	s.cancelPending(ctx, roundID)
	s.record(h, res)
	return res, nil
}

// ResolveArena разыгрывает арену. Ставки тех, кто не раскрыл ход,
// возвращаются после выплаты победителям.
func (s *serv) ResolveArena(ctx context.Context, roundID string) (*model.Settlement, error) {
	round, err := s.repo.Get(ctx, roundID)
	if err != nil {
		return nil, err
	}
	h := round.Hub

	out, err := h.ResolveArenaGame()
	if err != nil {
		return nil, err
	}

	res := &model.Settlement{RoundID: roundID, Mode: model.ModeArena}
	if out.Tie() {
		res.Tie = true
	} else {
		payouts, err := h.DistributeArenaPayouts(out, h.BroadcastExecutor())
		if err != nil {
			return nil, err
		}
		res.Payouts = payouts
		res.WinningMove = *out.WinningMove
		for _, e := range out.Winners() {
			res.Winners = append(res.Winners, e.Gateway.Address())
		}
	}
	refunds, err := h.RefundLockedWagers()
	if err != nil {
		return nil, err
	}
	res.Refunds = nonZero(refunds)

	s.cancelPending(ctx, roundID)
	s.record(h, res)
	return res, nil
}

// Refund закрывает раунд без розыгрыша и возвращает все ставки
func (s *serv) Refund(ctx context.Context, roundID string) (*model.Settlement, error) {
	round, err := s.repo.Get(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if round.Hub.Settled() {
		return nil, model.ErrRoundSettled
	}
	refunds, err := round.Hub.RefundLockedWagers()
	if err != nil {
		return nil, err
	}

	res := &model.Settlement{
		RoundID: roundID,
		Mode:    model.ModeRefund,
		Refunds: nonZero(refunds),
	}
	s.cancelPending(ctx, roundID)
	s.record(round.Hub, res)
	return res, nil
}

// cancelPending отменяет отложенные блокировки: раунд закрыт, подтверждать нечего
func (s *serv) cancelPending(ctx context.Context, roundID string) {
	gateways, err := s.repo.Gateways(ctx, roundID)
	if err != nil {
		s.logger.Warn("cancel pending locks", zap.String("round_id", roundID), zap.Error(err))
		return
	}
	for _, gw := range gateways {
		gw.CancelPending()
	}
}

func nonZero(refunds map[string]decimal.Decimal) map[string]decimal.Decimal {
	res := make(map[string]decimal.Decimal, len(refunds))
	for addr, amount := range refunds {
		if amount.IsPositive() {
			res[addr] = amount
		}
	}
	return res
}

// record заносит закрытый раунд в статистику дома
func (s *serv) record(h *hub.Hub, res *model.Settlement) {
	summary := statsModel.SettlementSummary{
		RoundID:   res.RoundID,
		Mode:      res.Mode,
		Tie:       res.Tie,
		PaidOut:   decimal.Zero,
		Refunded:  decimal.Zero,
		EscrowFee: h.GetEscrow().Total(),
		SettledAt: time.Now(),
	}
	for _, p := range res.Payouts {
		summary.PaidOut = summary.PaidOut.Add(p.Amount)
	}
	for _, amount := range res.Refunds {
		summary.Refunded = summary.Refunded.Add(amount)
	}
	s.statsRepo.Record(summary)

	s.logger.Info("round settled",
		zap.String("round_id", res.RoundID),
		zap.String("mode", res.Mode),
		zap.Bool("tie", res.Tie),
		zap.Stringer("paid_out", summary.PaidOut),
		zap.Stringer("refunded", summary.Refunded),
	)
}
