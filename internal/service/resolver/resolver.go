package resolver

import (
	"arena_backend/internal/model"
	"arena_backend/internal/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultMinArenaPlayers минимум игроков на арене
const DefaultMinArenaPlayers = 3

// Stake доля ставки, которая участвует в розыгрыше
func Stake(g *model.Gambler) decimal.Decimal {
	return g.WagerAmount().Mul(model.StakeShare)
}

// lockedStake ставка участника, которая реально лежит в эскроу.
// Без полной блокировки 90% ставки участник в розыгрыш не попадает.
func lockedStake(gw service.Gateway) (decimal.Decimal, error) {
	locked := gw.LockedWager()
	want := Stake(gw.Gambler())
	if !locked.IsPositive() || !locked.Equal(want) {
		return decimal.Zero, errors.Wrapf(model.ErrWagerNotLocked, "%s locked %s, want %s", gw.Address(), locked, want)
	}
	return locked, nil
}

// TwoParty разыгрывает дуэль. moves это раскрытые ходы по адресу.
// Счётчики игроков меняются только при успешном разрешении.
func TwoParty(gateways []service.Gateway, moves map[string]model.Move) (TwoPartyOutcome, error) {
	if len(gateways) != 2 {
		return TwoPartyOutcome{}, errors.Wrapf(model.ErrMissingMoves, "two-player game requires exactly 2 players, have %d", len(gateways))
	}

	p1, p2 := gateways[0].Gambler(), gateways[1].Gambler()
	move1, ok1 := moves[p1.Address()]
	move2, ok2 := moves[p2.Address()]
	if !ok1 || !ok2 {
		return TwoPartyOutcome{}, model.ErrMissingMoves
	}

	stake1, err := lockedStake(gateways[0])
	if err != nil {
		return TwoPartyOutcome{}, err
	}
	stake2, err := lockedStake(gateways[1])
	if err != nil {
		return TwoPartyOutcome{}, err
	}
	if !stake1.Equal(stake2) {
		return TwoPartyOutcome{}, errors.Wrapf(model.ErrStakeMismatch, "%s vs %s", stake1, stake2)
	}

	out := TwoPartyOutcome{
		StakeAmount:  stake1,
		Participants: []service.Gateway{gateways[0], gateways[1]},
	}

	switch {
	case move1.Beats(move2):
		out.Winner, out.WinnerGateway = p1, gateways[0]
	case move2.Beats(move1):
		out.Winner, out.WinnerGateway = p2, gateways[1]
	}

	if out.Winner != nil {
		out.Winner.RecordWon()
	}
	p1.RecordPlayed()
	p2.RecordPlayed()

	return out, nil
}

// Arena разыгрывает раунд на N игроков.
// Побеждает самая многочисленная группа хода; при равенстве размеров
// выигрывает ход, который раньше в порядке rock, paper, scissors.
// Если все выбрали одно и то же, это общая ничья.
func Arena(gateways []service.Gateway, moves map[string]model.Move, minPlayers int) (ArenaOutcome, error) {
	if minPlayers < 2 {
		minPlayers = DefaultMinArenaPlayers
	}

	groups := make(map[model.Move][]ArenaEntry, 3)
	revealed := 0
	for _, gw := range gateways {
		move, ok := moves[gw.Address()]
		if !ok {
			continue
		}
		stake, err := lockedStake(gw)
		if err != nil {
			return ArenaOutcome{}, err
		}
		groups[move] = append(groups[move], ArenaEntry{
			Gateway: gw,
			Stake:   stake,
		})
		revealed++
	}

	if revealed < minPlayers {
		return ArenaOutcome{}, errors.Wrapf(model.ErrInsufficientPlayers, "at least %d required, have %d", minPlayers, revealed)
	}

	// Счётчики трогаем только после проверки предусловий
	for _, group := range groups {
		for _, e := range group {
			e.Gateway.Gambler().RecordPlayed()
		}
	}

	out := ArenaOutcome{MoveGroups: groups}

	for _, m := range model.Moves() {
		if len(groups[m]) == revealed {
			return out, nil
		}
	}

	var (
		winning model.Move
		maxSize int
	)
	for _, m := range model.Moves() {
		if len(groups[m]) > maxSize {
			winning, maxSize = m, len(groups[m])
		}
	}

	out.WinningMove = &winning
	for _, e := range groups[winning] {
		e.Gateway.Gambler().RecordWon()
	}
	return out, nil
}
