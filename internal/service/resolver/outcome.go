package resolver

import (
	"arena_backend/internal/model"
	"arena_backend/internal/service"

	"github.com/shopspring/decimal"
)

// TwoPartyOutcome итог дуэли. Winner nil означает ничью.
type TwoPartyOutcome struct {
	Winner        *model.Gambler
	WinnerGateway service.Gateway
	StakeAmount   decimal.Decimal
	Participants  []service.Gateway
}

func (o TwoPartyOutcome) Tie() bool {
	return o.Winner == nil
}

// ArenaEntry участник в группе хода со своей долей в пуле
type ArenaEntry struct {
	Gateway service.Gateway
	Stake   decimal.Decimal
}

// ArenaOutcome итог арены. WinningMove nil означает общую ничью.
type ArenaOutcome struct {
	WinningMove *model.Move
	MoveGroups  map[model.Move][]ArenaEntry
}

func (o ArenaOutcome) Tie() bool {
	return o.WinningMove == nil
}

// Pool сумма ставок всех участников
func (o ArenaOutcome) Pool() decimal.Decimal {
	total := decimal.Zero
	for _, group := range o.MoveGroups {
		for _, e := range group {
			total = total.Add(e.Stake)
		}
	}
	return total
}

// Winners записи победившей группы, nil при ничьей
func (o ArenaOutcome) Winners() []ArenaEntry {
	if o.WinningMove == nil {
		return nil
	}
	return o.MoveGroups[*o.WinningMove]
}

// WinningStake сумма ставок победившей группы
func (o ArenaOutcome) WinningStake() decimal.Decimal {
	total := decimal.Zero
	for _, e := range o.Winners() {
		total = total.Add(e.Stake)
	}
	return total
}

// Participants все гейтвеи, попавшие в группы, в порядке перечисления ходов
func (o ArenaOutcome) Participants() []service.Gateway {
	var res []service.Gateway
	for _, m := range model.Moves() {
		for _, e := range o.MoveGroups[m] {
			res = append(res, e.Gateway)
		}
	}
	return res
}
