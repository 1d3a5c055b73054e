package model

import (
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// Gambler участник одного раунда.
// Поля задаются только билдером (service/gambler) и дальше не меняются,
// кроме счётчиков игр.
type Gambler struct {
	address     string
	chain       string
	token       string
	wagerAmount decimal.Decimal
	move        Move
	wagerTime   time.Time

	gamesPlayed atomic.Uint64
	gamesWon    atomic.Uint64
}

// GamblerProps сырые поля для сборки. Валидацию делает билдер.
type GamblerProps struct {
	Address     string
	Chain       string
	Token       string
	WagerAmount decimal.Decimal
	Move        Move
	WagerTime   time.Time
	GamesPlayed uint64
	GamesWon    uint64
}

// NewGambler собирает запись из уже проверенных полей
func NewGambler(p GamblerProps) *Gambler {
	g := &Gambler{
		address:     p.Address,
		chain:       p.Chain,
		token:       p.Token,
		wagerAmount: p.WagerAmount,
		move:        p.Move,
		wagerTime:   p.WagerTime,
	}
	g.gamesPlayed.Store(p.GamesPlayed)
	g.gamesWon.Store(p.GamesWon)
	return g
}

func (g *Gambler) Address() string              { return g.address }
func (g *Gambler) Chain() string                { return g.chain }
func (g *Gambler) Token() string                { return g.token }
func (g *Gambler) WagerAmount() decimal.Decimal { return g.wagerAmount }
func (g *Gambler) WagerTime() time.Time         { return g.wagerTime }
func (g *Gambler) GamesPlayed() uint64          { return g.gamesPlayed.Load() }
func (g *Gambler) GamesWon() uint64             { return g.gamesWon.Load() }

// Move возвращает ход и признак того, что он задан
func (g *Gambler) Move() (Move, bool) {
	return g.move, g.move != ""
}

// RecordPlayed засчитывает сыгранный раунд
func (g *Gambler) RecordPlayed() {
	g.gamesPlayed.Add(1)
}

// RecordWon засчитывает победу
func (g *Gambler) RecordWon() {
	g.gamesWon.Add(1)
}

// Props копия полей, удобна для переноса счётчиков в следующий раунд
func (g *Gambler) Props() GamblerProps {
	return GamblerProps{
		Address:     g.address,
		Chain:       g.chain,
		Token:       g.token,
		WagerAmount: g.wagerAmount,
		Move:        g.move,
		WagerTime:   g.wagerTime,
		GamesPlayed: g.GamesPlayed(),
		GamesWon:    g.GamesWon(),
	}
}
