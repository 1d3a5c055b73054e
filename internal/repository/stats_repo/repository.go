package stats_repo

import (
	"arena_backend/internal/model"
	repoModel "arena_backend/internal/repository/stats_repo/model"
	"sync"

	"github.com/shopspring/decimal"
)

// DefaultWindowSize сколько последних раундов держим в окне
const DefaultWindowSize = 500

// StatsRepo статистика дома в памяти процесса
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.HouseStats
}

// NewStatsRepository Конструктор с пустой статистикой
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.HouseStats{
			TotalPaidOut:    decimal.Zero,
			TotalRefunded:   decimal.Zero,
			TotalEscrowFees: decimal.Zero,
			Window:          make([]repoModel.SettlementSummary, 0),
			WindowSize:      windowSize,
		},
	}
}

// HouseStats копия текущей статистики
func (r *StatsRepo) HouseStats() repoModel.HouseStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := r.state
	res.Window = make([]repoModel.SettlementSummary, len(r.state.Window))
	copy(res.Window, r.state.Window)
	return res
}

// Record учитывает закрытый раунд
func (r *StatsRepo) Record(s repoModel.SettlementSummary) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.RoundsSettled++
	switch s.Mode {
	case model.ModeTwoParty:
		r.state.TwoPartyRounds++
	case model.ModeArena:
		r.state.ArenaRounds++
	case model.ModeRefund:
		r.state.RefundRounds++
	}
	if s.Tie {
		r.state.Ties++
	}
	r.state.TotalPaidOut = r.state.TotalPaidOut.Add(s.PaidOut)
	r.state.TotalRefunded = r.state.TotalRefunded.Add(s.Refunded)
	r.state.TotalEscrowFees = r.state.TotalEscrowFees.Add(s.EscrowFee)

	r.state.Window = append(r.state.Window, s)
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[1:]
	}

	ties := 0
	for _, w := range r.state.Window {
		if w.Tie {
			ties++
		}
	}
	r.state.WindowTieRate = float64(ties) / float64(len(r.state.Window)) * 100
}
