package gateway

import (
	"arena_backend/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ExecutePayout исполняет инструкцию только если она адресована этому игроку.
// Поэтому хаб может разослать одну и ту же инструкцию всем гейтвеям.
func (g *Gateway) ExecutePayout(instr model.PayoutInstruction) model.PayoutResult {
	if instr.Winner == nil || instr.Winner.Address() != g.gambler.Address() {
		return model.PayoutResult{Winner: g.gambler, Amount: decimal.Zero}
	}

	g.mtx.Lock()
	g.payoutReceived = g.payoutReceived.Add(instr.Amount)
	g.mtx.Unlock()

	g.logger.Info("payout executed", zap.Stringer("amount", instr.Amount))
	return model.PayoutResult{Winner: g.gambler, Amount: instr.Amount}
}
