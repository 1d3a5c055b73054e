package service

import (
	"arena_backend/internal/model"
	statsModel "arena_backend/internal/repository/stats_repo/model"
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Gateway то, что хаб и резолвер видят у гейтвея игрока
type Gateway interface {
	Gambler() *model.Gambler
	Address() string
	LockedWager() decimal.Decimal
	RefundWager() decimal.Decimal
	ReleaseWager() decimal.Decimal
	ExecutePayout(instr model.PayoutInstruction) model.PayoutResult
}

// Bridge порт между гейтвеем и хабом. Сейчас вызовы синхронные,
// реальный межсетевой транспорт подставляется сюда же.
type Bridge interface {
	ReceiveEscrowFee(ctx context.Context, gw Gateway, amount decimal.Decimal) error
	ReceiveMove(ctx context.Context, gw Gateway, move model.Move) error
	ReceiveVote(ctx context.Context, gw Gateway, token string) error
}

// PayoutExecutor исполняет инструкцию на гейтвеях и возвращает результаты
type PayoutExecutor func(instr model.PayoutInstruction) []model.PayoutResult

// RoundService оркестрация раундов для HTTP слоя
type RoundService interface {
	OpenRound(ctx context.Context) (*model.RoundSnapshot, error)
	Rounds(ctx context.Context) []string
	Snapshot(ctx context.Context, roundID string) (*model.RoundSnapshot, error)
	Escrow(ctx context.Context, roundID string) (model.Escrow, error)
	SetArenaSize(ctx context.Context, roundID string, n int) error

	Join(ctx context.Context, roundID string, req model.JoinRequest) (*model.GamblerState, error)
	Gambler(ctx context.Context, roundID, address string) (*model.GamblerState, error)

	LockWager(ctx context.Context, roundID, address string, amount decimal.Decimal) (*model.GamblerState, error)
	LockWagerWithDelay(ctx context.Context, roundID, address string, amount decimal.Decimal, delay time.Duration) (*model.PendingLockInfo, error)
	ConfirmDelayedLock(ctx context.Context, roundID, address string) (*model.GamblerState, error)
	SendEscrowFee(ctx context.Context, roundID, address string) (*model.GamblerState, error)
	SubmitMove(ctx context.Context, roundID, address string) (*model.GamblerState, error)
	Vote(ctx context.Context, roundID, address, token string) error

	ResolveTwoPlayer(ctx context.Context, roundID string) (*model.Settlement, error)
	ResolveArena(ctx context.Context, roundID string) (*model.Settlement, error)
	Refund(ctx context.Context, roundID string) (*model.Settlement, error)

	Stats(ctx context.Context) statsModel.HouseStats
}
