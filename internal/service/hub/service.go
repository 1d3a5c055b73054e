package hub

import (
	"arena_backend/internal/model"
	"arena_backend/internal/service"
	"arena_backend/internal/service/resolver"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Hub координатор раунда. Только он меняет реестр эскроу
// и рассылает инструкции выплат.
type Hub struct {
	id     string
	logger *zap.Logger

	mtx             sync.RWMutex
	contributions   map[string]decimal.Decimal
	gateways        []service.Gateway
	byAddress       map[string]service.Gateway
	ready           map[string]struct{}
	votes           map[string]string
	minArenaPlayers int
	resolved        bool
	settled         bool
	refunded        bool
}

type Option func(*Hub)

func WithLogger(l *zap.Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithID задаёт идентификатор раунда вместо случайного
func WithID(id string) Option {
	return func(h *Hub) {
		if id != "" {
			h.id = id
		}
	}
}

// WithMinArenaPlayers значения меньше 2 игнорируются
func WithMinArenaPlayers(n int) Option {
	return func(h *Hub) {
		if n >= 2 {
			h.minArenaPlayers = n
		}
	}
}

// NewHub создаёт хаб нового раунда
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		id:              uuid.NewString(),
		logger:          zap.NewNop(),
		contributions:   make(map[string]decimal.Decimal),
		byAddress:       make(map[string]service.Gateway),
		ready:           make(map[string]struct{}),
		votes:           make(map[string]string),
		minArenaPlayers: resolver.DefaultMinArenaPlayers,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(zap.String("round_id", h.id))
	return h
}

var _ service.Bridge = (*Hub)(nil)

func (h *Hub) RoundID() string {
	return h.id
}

// Join регистрирует гейтвеи участников. Повторная регистрация того же
// гейтвея ничего не делает, другой гейтвей с тем же адресом запрещён.
func (h *Hub) Join(gateways ...service.Gateway) error {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.resolved {
		return model.ErrRoundResolved
	}
	for _, gw := range gateways {
		if existing, ok := h.byAddress[gw.Address()]; ok {
			if existing == gw {
				continue
			}
			return errors.Wrapf(model.ErrDuplicateGambler, "address %s", gw.Address())
		}
		h.byAddress[gw.Address()] = gw
		h.gateways = append(h.gateways, gw)
		h.logger.Info("gambler joined", zap.String("address", gw.Address()))
	}
	return nil
}

// Gateways копия списка участников в порядке регистрации
func (h *Hub) Gateways() []service.Gateway {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	res := make([]service.Gateway, len(h.gateways))
	copy(res, h.gateways)
	return res
}

func (h *Hub) Gateway(address string) (service.Gateway, bool) {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	gw, ok := h.byAddress[address]
	return gw, ok
}

// SetMinArenaPlayers влияет только на последующие розыгрыши арены
func (h *Hub) SetMinArenaPlayers(n int) error {
	if n < 2 {
		return errors.Wrapf(model.ErrInvalidArenaSize, "got %d", n)
	}
	h.mtx.Lock()
	h.minArenaPlayers = n
	h.mtx.Unlock()
	return nil
}

func (h *Hub) MinArenaPlayers() int {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	return h.minArenaPlayers
}

func (h *Hub) Resolved() bool {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	return h.resolved
}

func (h *Hub) Settled() bool {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	return h.settled
}
