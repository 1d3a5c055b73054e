package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ModeTwoParty = "two_party"
	ModeArena    = "arena"
	ModeRefund   = "refund"
)

// JoinRequest данные игрока из событий сети
type JoinRequest struct {
	Address     string
	Chain       string
	Token       string
	WagerAmount decimal.Decimal
	Move        string
	GamesPlayed uint64
	GamesWon    uint64
	WagerTime   time.Time
}

// GamblerState состояние игрока и его гейтвея для опроса
type GamblerState struct {
	Address               string
	Chain                 string
	Token                 string
	WagerAmount           decimal.Decimal
	Move                  Move
	MoveReady             bool
	LockedWager           decimal.Decimal
	LockedEscrowFee       decimal.Decimal
	PayoutReceived        decimal.Decimal
	RequiredConfirmations int
	GamesPlayed           uint64
	GamesWon              uint64
}

// RoundSnapshot состояние раунда целиком
type RoundSnapshot struct {
	ID              string
	Settled         bool
	MinArenaPlayers int
	Escrow          Escrow
	Gamblers        []GamblerState
	TokenVotes      map[string]int
}

// PendingLockInfo описание отложенной блокировки
type PendingLockInfo struct {
	ID      string
	Address string
	Amount  decimal.Decimal
	ReadyAt time.Time
}

// Settlement итог раунда
type Settlement struct {
	RoundID     string
	Mode        string
	Tie         bool
	WinningMove Move
	Winners     []string
	Payouts     []PayoutResult
	Refunds     map[string]decimal.Decimal
}
