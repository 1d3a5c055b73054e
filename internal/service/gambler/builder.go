package gambler

import (
	"arena_backend/internal/model"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Builder поэтапная сборка игрока.
// Первая ошибка валидации запоминается, следующие сеттеры ничего не делают,
// Build её возвращает. Частично собранный игрок наружу не выходит.
type Builder struct {
	table MinWagerTable
	props model.GamblerProps
	err   error
}

// NewBuilder создаёт билдер. nil таблица означает стандартные минимумы.
func NewBuilder(table MinWagerTable) *Builder {
	if table == nil {
		table = DefaultMinWagers()
	}
	return &Builder{table: table}
}

func (b *Builder) WithAddress(address string) *Builder {
	if b.err != nil {
		return b
	}
	b.props.Address = strings.TrimSpace(address)
	return b
}

func (b *Builder) WithChain(chain string) *Builder {
	if b.err != nil {
		return b
	}
	b.props.Chain = chain
	return b
}

func (b *Builder) WithToken(token string) *Builder {
	if b.err != nil {
		return b
	}
	b.props.Token = token
	return b
}

// WithWagerAmount проверяет ставку по минимуму для уже заданного токена
func (b *Builder) WithWagerAmount(amount decimal.Decimal) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.checkWager(amount); err != nil {
		b.err = err
		return b
	}
	b.props.WagerAmount = amount
	return b
}

func (b *Builder) WithMove(move model.Move) *Builder {
	if b.err != nil {
		return b
	}
	if !move.Valid() {
		b.err = errors.Wrapf(model.ErrInvalidMove, "got %q", string(move))
		return b
	}
	b.props.Move = move
	return b
}

// WithGamesPlayed переносит счётчик из прошлых раундов
func (b *Builder) WithGamesPlayed(n uint64) *Builder {
	if b.err != nil {
		return b
	}
	b.props.GamesPlayed = n
	return b
}

func (b *Builder) WithGamesWon(n uint64) *Builder {
	if b.err != nil {
		return b
	}
	b.props.GamesWon = n
	return b
}

// AtTime время подачи ставки
func (b *Builder) AtTime(t time.Time) *Builder {
	if b.err != nil {
		return b
	}
	b.props.WagerTime = t
	return b
}

// Err первая ошибка валидации, если была
func (b *Builder) Err() error {
	return b.err
}

// Build повторно проверяет все поля: порядок сеттеров не должен
// позволять обойти минимум (например токен задан после суммы)
func (b *Builder) Build() (*model.Gambler, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.props.Address == "" {
		return nil, model.ErrInvalidAddress
	}
	if err := b.checkWager(b.props.WagerAmount); err != nil {
		return nil, err
	}
	if b.props.Move != "" && !b.props.Move.Valid() {
		return nil, errors.Wrapf(model.ErrInvalidMove, "got %q", string(b.props.Move))
	}
	if b.props.GamesWon > b.props.GamesPlayed {
		return nil, errors.Wrapf(model.ErrInvalidGameRecord, "won %d, played %d", b.props.GamesWon, b.props.GamesPlayed)
	}
	return model.NewGambler(b.props), nil
}

func (b *Builder) checkWager(amount decimal.Decimal) error {
	token := b.props.Token
	minWager := b.table.MinimumWager(token)
	if !amount.IsPositive() || amount.LessThan(minWager) {
		if token == "" {
			token = "unknown"
		}
		return errors.Wrapf(model.ErrInvalidWager, "wager must be at least %s %s", minWager, token)
	}
	return nil
}
