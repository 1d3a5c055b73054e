package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// HouseStats сводка по закрытым раундам
type HouseStats struct {
	RoundsSettled  int // Сколько раундов закрыто
	TwoPartyRounds int
	ArenaRounds    int
	RefundRounds   int // Закрыты без розыгрыша
	Ties           int

	TotalPaidOut    decimal.Decimal // Сумма выплат победителям
	TotalRefunded   decimal.Decimal // Сумма возвратов
	TotalEscrowFees decimal.Decimal // Взносы в реестр хабов на момент закрытия

	Window        []SettlementSummary // Окно последних раундов
	WindowTieRate float64             // Доля ничьих в окне, проценты
	WindowSize    int
}

// SettlementSummary итог одного раунда для окна
type SettlementSummary struct {
	RoundID   string
	Mode      string
	Tie       bool
	PaidOut   decimal.Decimal
	Refunded  decimal.Decimal
	EscrowFee decimal.Decimal
	SettledAt time.Time
}
