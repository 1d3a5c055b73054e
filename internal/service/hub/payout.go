package hub

import (
	"arena_backend/internal/model"
	"arena_backend/internal/service"
	"arena_backend/internal/service/resolver"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// payoutPlaces точность долей на арене, остаток округления уходит последнему победителю
const payoutPlaces = 16

// BroadcastExecutor рассылает инструкцию всем гейтвеям раунда.
// Каждый гейтвей сам отфильтрует чужую инструкцию.
func (h *Hub) BroadcastExecutor() service.PayoutExecutor {
	return func(instr model.PayoutInstruction) []model.PayoutResult {
		gws := h.Gateways()
		res := make([]model.PayoutResult, 0, len(gws))
		for _, gw := range gws {
			res = append(res, gw.ExecutePayout(instr))
		}
		return res
	}
}

// DistributePayouts выплата дуэли: победитель получает обе ставки.
// При ничьей возвращает нулевые выплаты, вызывающий делает RefundLockedWagers.
func (h *Hub) DistributePayouts(out resolver.TwoPartyOutcome, exec service.PayoutExecutor) ([]model.PayoutResult, error) {
	if out.Tie() {
		res := make([]model.PayoutResult, 0, len(out.Participants))
		for _, gw := range out.Participants {
			res = append(res, model.PayoutResult{Winner: gw.Gambler(), Amount: decimal.Zero})
		}
		return res, nil
	}

	if err := h.beginSettlement(); err != nil {
		return nil, err
	}
	if exec == nil {
		exec = h.BroadcastExecutor()
	}

	instr := model.PayoutInstruction{
		Winner: out.Winner,
		Amount: out.StakeAmount.Mul(decimal.NewFromInt(2)),
	}
	results := exec(instr)
	h.release(out.Participants)

	h.logger.Info("two-player payout distributed",
		zap.String("winner", out.Winner.Address()),
		zap.Stringer("amount", instr.Amount),
	)
	return results, nil
}

// DistributeArenaPayouts делит весь пул между победителями пропорционально
// их ставкам. При общей ничьей инструкций нет, вызывающий делает RefundLockedWagers.
func (h *Hub) DistributeArenaPayouts(out resolver.ArenaOutcome, exec service.PayoutExecutor) ([]model.PayoutResult, error) {
	if out.Tie() {
		return nil, nil
	}

	winners := out.Winners()
	winningStake := out.WinningStake()
	if len(winners) == 0 || !winningStake.IsPositive() {
		return nil, errors.New("arena outcome has no winning stake")
	}

	if err := h.beginSettlement(); err != nil {
		return nil, err
	}
	if exec == nil {
		exec = h.BroadcastExecutor()
	}

	pool := out.Pool()
	distributed := decimal.Zero
	results := make([]model.PayoutResult, 0, len(winners))

	for i, e := range winners {
		var share decimal.Decimal
		if i == len(winners)-1 {
			share = pool.Sub(distributed)
		} else {
			share, _ = pool.Mul(e.Stake).QuoRem(winningStake, payoutPlaces)
		}
		distributed = distributed.Add(share)

		winner := e.Gateway.Gambler()
		for _, r := range exec(model.PayoutInstruction{Winner: winner, Amount: share}) {
			if r.Winner != nil && r.Winner.Address() == winner.Address() {
				results = append(results, r)
			}
		}
	}

	h.release(out.Participants())

	h.logger.Info("arena payout distributed",
		zap.Stringer("pool", pool),
		zap.Strings("winners", addresses(gatewaysOf(winners))),
	)
	return results, nil
}

// beginSettlement помечает раунд расчитанным до вызова исполнителя,
// чтобы параллельный вызов не выплатил пул второй раз
func (h *Hub) beginSettlement() error {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.settled {
		return model.ErrRoundSettled
	}
	h.settled = true
	h.resolved = true
	return nil
}

// release снимает блокировки участников: их ставки уже в пуле
func (h *Hub) release(gws []service.Gateway) {
	for _, gw := range gws {
		gw.ReleaseWager()
	}
}

func gatewaysOf(entries []resolver.ArenaEntry) []service.Gateway {
	res := make([]service.Gateway, len(entries))
	for i, e := range entries {
		res[i] = e.Gateway
	}
	return res
}
