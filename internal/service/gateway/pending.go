package gateway

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PendingLock хэндл отложенной межсетевой блокировки.
// Ready закрывается по истечении задержки. Сам по себе он ничего не
// блокирует: ставка считается заблокированной только после ConfirmDelayedLock.
type PendingLock struct {
	id      string
	amount  decimal.Decimal
	readyAt time.Time
	ready   chan struct{}

	mtx       sync.Mutex
	timer     *time.Timer
	cancelled bool
	once      sync.Once
}

func newPendingLock(amount decimal.Decimal, delay time.Duration) *PendingLock {
	p := &PendingLock{
		id:      uuid.NewString(),
		amount:  amount,
		readyAt: time.Now().Add(delay),
		ready:   make(chan struct{}),
	}
	p.timer = time.AfterFunc(delay, p.fire)
	return p
}

func (p *PendingLock) fire() {
	p.once.Do(func() { close(p.ready) })
}

func (p *PendingLock) ID() string              { return p.id }
func (p *PendingLock) Amount() decimal.Decimal { return p.amount }
func (p *PendingLock) ReadyAt() time.Time      { return p.readyAt }

// Ready закрывается, когда имитируемая задержка подтверждения прошла
func (p *PendingLock) Ready() <-chan struct{} {
	return p.ready
}

// Cancel останавливает таймер. true если таймер ещё не сработал.
func (p *PendingLock) Cancel() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.cancelled {
		return false
	}
	p.cancelled = true
	return p.timer.Stop()
}

func (p *PendingLock) Cancelled() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.cancelled
}
