package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Move ход игрока
type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
)

// Moves перечисляет ходы в фиксированном порядке. На этом порядке
// держится разбиение ничьей между группами одинакового размера на арене.
func Moves() []Move {
	return []Move{Rock, Paper, Scissors}
}

// ParseMove разбирает ход без учёта регистра
func ParseMove(s string) (Move, error) {
	m := Move(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", errors.Wrapf(ErrInvalidMove, "got %q", s)
	}
	return m, nil
}

func (m Move) Valid() bool {
	switch m {
	case Rock, Paper, Scissors:
		return true
	}
	return false
}

// Beats камень бьёт ножницы, бумага бьёт камень, ножницы бьют бумагу
func (m Move) Beats(other Move) bool {
	return (m == Rock && other == Scissors) ||
		(m == Paper && other == Rock) ||
		(m == Scissors && other == Paper)
}

func (m Move) String() string {
	return string(m)
}
