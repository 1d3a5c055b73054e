package round

import (
	"time"

	"github.com/shopspring/decimal"
)

type JoinRequest struct {
	Address     string          `json:"address"`
	Chain       string          `json:"chain"`
	Token       string          `json:"token"`
	WagerAmount decimal.Decimal `json:"wager_amount"`
	Move        string          `json:"move,omitempty"`         // rock / paper / scissors
	GamesPlayed uint64          `json:"games_played,omitempty"` // Счётчики из прошлых раундов
	GamesWon    uint64          `json:"games_won,omitempty"`
	WagerTime   *time.Time      `json:"wager_time,omitempty"`
}

type LockRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type DelayedLockRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	DelayMS int64           `json:"delay_ms"` // Имитация времени подтверждения сети
}

type VoteRequest struct {
	Token string `json:"token"`
}

type ResolveRequest struct {
	Mode string `json:"mode"` // two_party / arena
}

type ArenaSizeRequest struct {
	MinPlayers int `json:"min_players"`
}

type GamblerResponse struct {
	Address               string          `json:"address"`
	Chain                 string          `json:"chain"`
	Token                 string          `json:"token"`
	WagerAmount           decimal.Decimal `json:"wager_amount"`
	Move                  string          `json:"move,omitempty"`
	MoveReady             bool            `json:"move_ready"`
	LockedWager           decimal.Decimal `json:"locked_wager"`
	LockedEscrowFee       decimal.Decimal `json:"locked_escrow_fee"`
	PayoutReceived        decimal.Decimal `json:"payout_received"`
	RequiredConfirmations int             `json:"required_confirmations,omitempty"`
	GamesPlayed           uint64          `json:"games_played"`
	GamesWon              uint64          `json:"games_won"`
}

type EscrowResponse struct {
	Contributions map[string]decimal.Decimal `json:"contributions"`
	Total         decimal.Decimal            `json:"total"`
}

type RoundResponse struct {
	ID              string            `json:"id"`
	Settled         bool              `json:"settled"`
	MinArenaPlayers int               `json:"min_arena_players"`
	Escrow          EscrowResponse    `json:"escrow"`
	Gamblers        []GamblerResponse `json:"gamblers"`
	TokenVotes      map[string]int    `json:"token_votes"`
}

type RoundsResponse struct {
	Rounds []string `json:"rounds"`
}

type PendingLockResponse struct {
	ID      string          `json:"id"`
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
	ReadyAt time.Time       `json:"ready_at"`
}

type PayoutResponse struct {
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
}

type SettlementResponse struct {
	RoundID     string                     `json:"round_id"`
	Mode        string                     `json:"mode"`
	Tie         bool                       `json:"tie"`
	WinningMove string                     `json:"winning_move,omitempty"`
	Winners     []string                   `json:"winners"`
	Payouts     []PayoutResponse           `json:"payouts"`
	Refunds     map[string]decimal.Decimal `json:"refunds"`
}

type SettlementSummaryResponse struct {
	RoundID   string          `json:"round_id"`
	Mode      string          `json:"mode"`
	Tie       bool            `json:"tie"`
	PaidOut   decimal.Decimal `json:"paid_out"`
	Refunded  decimal.Decimal `json:"refunded"`
	EscrowFee decimal.Decimal `json:"escrow_fee"`
	SettledAt time.Time       `json:"settled_at"`
}

type StatsResponse struct {
	RoundsSettled   int                         `json:"rounds_settled"`
	TwoPartyRounds  int                         `json:"two_party_rounds"`
	ArenaRounds     int                         `json:"arena_rounds"`
	RefundRounds    int                         `json:"refund_rounds"`
	Ties            int                         `json:"ties"`
	TotalPaidOut    decimal.Decimal             `json:"total_paid_out"`
	TotalRefunded   decimal.Decimal             `json:"total_refunded"`
	TotalEscrowFees decimal.Decimal             `json:"total_escrow_fees"`
	WindowTieRate   float64                     `json:"window_tie_rate"`
	Recent          []SettlementSummaryResponse `json:"recent"`
}
