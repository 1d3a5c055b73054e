package model

import "github.com/pkg/errors"

// Ошибки движка расчётов. Сравнивать через errors.Is:
// вызывающие стороны получают их обёрнутыми через errors.Wrap.
var (
	ErrInvalidWager        = errors.New("invalid wager")
	ErrInvalidMove         = errors.New("invalid move: must be rock, paper, or scissors")
	ErrInvalidAddress      = errors.New("gambler address must not be empty")
	ErrWagerLockFailed     = errors.New("failed to lock wager")
	ErrNoMoveSet           = errors.New("gambler has no move set")
	ErrMissingMoves        = errors.New("missing moves for one or both players")
	ErrInsufficientPlayers = errors.New("insufficient players")
	ErrStakeMismatch       = errors.New("head-to-head stakes differ")
	ErrWagerNotLocked      = errors.New("wager is not locked in escrow")
	ErrInvalidGameRecord   = errors.New("games won exceeds games played")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidArenaSize    = errors.New("arena needs at least 2 players")
	ErrDuplicateGambler    = errors.New("gambler already joined the round")
	ErrRoundSettled        = errors.New("round already settled")
	ErrRoundResolved       = errors.New("round already resolved")
	ErrInvalidVote         = errors.New("vote token must not be empty")
	ErrRoundNotFound       = errors.New("round not found")
	ErrGamblerNotFound     = errors.New("gambler not found in round")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrEscrowFeeSent       = errors.New("escrow fee already sent")
	ErrNoBridge            = errors.New("gateway is not connected to a hub")
)

// WagerLockError отказ сети при блокировке ставки.
// errors.Is(err, ErrWagerLockFailed) истинно, Unwrap отдаёт исходную причину.
type WagerLockError struct {
	Reason error
}

func (e *WagerLockError) Error() string {
	return ErrWagerLockFailed.Error() + ": " + e.Reason.Error()
}

func (e *WagerLockError) Is(target error) bool {
	return target == ErrWagerLockFailed
}

func (e *WagerLockError) Unwrap() error {
	return e.Reason
}
