package model

import "github.com/shopspring/decimal"

var (
	// StakeShare доля ставки, которая блокируется на гейтвее
	StakeShare = decimal.RequireFromString("0.9")
	// EscrowFeeShare доля ставки, уходящая в эскроу хаба
	EscrowFeeShare = decimal.RequireFromString("0.1")
)

// PayoutInstruction рассылается всем гейтвеям, каждый сам решает,
// адресована ли она ему
type PayoutInstruction struct {
	Winner *Gambler
	Amount decimal.Decimal
}

// PayoutResult результат исполнения инструкции на одном гейтвее.
// Winner всегда игрок этого гейтвея.
type PayoutResult struct {
	Winner *Gambler
	Amount decimal.Decimal
}

// Escrow снимок реестра эскроу: адрес -> суммарный взнос
type Escrow struct {
	UserContributions map[string]decimal.Decimal
}

func (e Escrow) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range e.UserContributions {
		total = total.Add(v)
	}
	return total
}
