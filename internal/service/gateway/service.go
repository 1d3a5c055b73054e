package gateway

import (
	"arena_backend/internal/model"
	"arena_backend/internal/service"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Gateway локальный эскроу одного игрока на его сети.
// Держит 90% ставки, отправляет 10% в хаб и исполняет выплаты.
type Gateway struct {
	gambler *model.Gambler
	bridge  service.Bridge
	logger  *zap.Logger

	mtx                   sync.RWMutex
	lockedWager           decimal.Decimal
	lockedEscrowFee       decimal.Decimal
	payoutReceived        decimal.Decimal
	requiredConfirmations int
	feeInFlight           bool
	pending               *PendingLock
}

type Option func(*Gateway)

// WithRequiredConfirmations число подтверждений сети для отложенной блокировки
func WithRequiredConfirmations(n int) Option {
	return func(g *Gateway) {
		if n > 0 {
			g.requiredConfirmations = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGateway создаёт гейтвей для игрока. bridge обычно хаб раунда.
func NewGateway(gambler *model.Gambler, bridge service.Bridge, opts ...Option) *Gateway {
	g := &Gateway{
		gambler: gambler,
		bridge:  bridge,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(
		zap.String("address", gambler.Address()),
		zap.String("chain", gambler.Chain()),
		zap.String("token", gambler.Token()),
	)
	return g
}

func (g *Gateway) Gambler() *model.Gambler {
	return g.gambler
}

func (g *Gateway) Address() string {
	return g.gambler.Address()
}

func (g *Gateway) LockedWager() decimal.Decimal {
	g.mtx.RLock()
	defer g.mtx.RUnlock()
	return g.lockedWager
}

func (g *Gateway) PayoutReceived() decimal.Decimal {
	g.mtx.RLock()
	defer g.mtx.RUnlock()
	return g.payoutReceived
}

func (g *Gateway) LockedEscrowFee() decimal.Decimal {
	g.mtx.RLock()
	defer g.mtx.RUnlock()
	return g.lockedEscrowFee
}

func (g *Gateway) RequiredConfirmations() int {
	return g.requiredConfirmations
}

// EscrowFee 10% от ставки игрока, независимо от того, отправлены ли они
func (g *Gateway) EscrowFee() decimal.Decimal {
	return g.gambler.WagerAmount().Mul(model.EscrowFeeShare)
}

// Pending текущая отложенная блокировка, nil если её нет
func (g *Gateway) Pending() *PendingLock {
	g.mtx.RLock()
	defer g.mtx.RUnlock()
	return g.pending
}
