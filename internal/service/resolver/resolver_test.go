package resolver

import (
	"arena_backend/internal/model"
	"arena_backend/internal/service"
	"arena_backend/internal/service/gateway"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type player struct {
	address string
	wager   string
	move    model.Move
}

// setup собирает гейтвеи с заблокированными ставками и карту раскрытых ходов. Пустой ход означает,
// что игрок ход не раскрыл.
func setup(players ...player) ([]service.Gateway, map[string]model.Move) {
	gws := make([]service.Gateway, 0, len(players))
	moves := make(map[string]model.Move)
	for _, p := range players {
		g := model.NewGambler(model.GamblerProps{
			Address:     p.address,
			Token:       "ETH",
			WagerAmount: decimal.RequireFromString(p.wager),
			Move:        p.move,
		})
		gw := gateway.NewGateway(g, nil)
		if err := gw.LockWager(g.WagerAmount(), nil); err != nil {
			panic(err)
		}
		gws = append(gws, gw)
		if p.move != "" {
			moves[p.address] = p.move
		}
	}
	return gws, moves
}

func TestTwoPartyDeterminism(t *testing.T) {
	tests := []struct {
		m1, m2 model.Move
		winner string
	}{
		{model.Rock, model.Scissors, "p1"},
		{model.Scissors, model.Rock, "p2"},
		{model.Paper, model.Rock, "p1"},
		{model.Rock, model.Paper, "p2"},
		{model.Scissors, model.Paper, "p1"},
		{model.Paper, model.Scissors, "p2"},
		{model.Rock, model.Rock, ""},
		{model.Paper, model.Paper, ""},
		{model.Scissors, model.Scissors, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.m1)+"_vs_"+string(tt.m2), func(t *testing.T) {
			gws, moves := setup(player{"p1", "100", tt.m1}, player{"p2", "100", tt.m2})

			out, err := TwoParty(gws, moves)
			require.NoError(t, err)
			assert.True(t, out.StakeAmount.Equal(decimal.NewFromInt(90)))
			assert.Len(t, out.Participants, 2)

			if tt.winner == "" {
				assert.True(t, out.Tie())
				assert.Nil(t, out.WinnerGateway)
				assert.Zero(t, gws[0].Gambler().GamesWon())
				assert.Zero(t, gws[1].Gambler().GamesWon())
			} else {
				require.False(t, out.Tie())
				assert.Equal(t, tt.winner, out.Winner.Address())
				assert.Equal(t, tt.winner, out.WinnerGateway.Address())
				assert.Equal(t, uint64(1), out.Winner.GamesWon())
			}
			assert.Equal(t, uint64(1), gws[0].Gambler().GamesPlayed())
			assert.Equal(t, uint64(1), gws[1].Gambler().GamesPlayed())
		})
	}
}

func TestTwoPartyMissingMove(t *testing.T) {
	gws, moves := setup(player{"p1", "100", model.Rock}, player{"p2", "100", ""})

	_, err := TwoParty(gws, moves)
	assert.True(t, errors.Is(err, model.ErrMissingMoves))
	assert.Zero(t, gws[0].Gambler().GamesPlayed(), "failed resolution must not touch counters")
}

func TestTwoPartyWrongPlayerCount(t *testing.T) {
	gws, moves := setup(player{"p1", "100", model.Rock})
	_, err := TwoParty(gws, moves)
	assert.True(t, errors.Is(err, model.ErrMissingMoves))

	gws, moves = setup(player{"a", "1", model.Rock}, player{"b", "1", model.Paper}, player{"c", "1", model.Rock})
	_, err = TwoParty(gws, moves)
	assert.True(t, errors.Is(err, model.ErrMissingMoves))
}

func TestTwoPartyStakeMismatch(t *testing.T) {
	gws, moves := setup(player{"p1", "100", model.Rock}, player{"p2", "50", model.Scissors})
	_, err := TwoParty(gws, moves)
	assert.True(t, errors.Is(err, model.ErrStakeMismatch))
}

func TestArenaMajorityWins(t *testing.T) {
	gws, moves := setup(
		player{"a", "10", model.Rock},
		player{"b", "10", model.Rock},
		player{"c", "10", model.Paper},
		player{"d", "10", model.Scissors},
	)

	out, err := Arena(gws, moves, DefaultMinArenaPlayers)
	require.NoError(t, err)
	require.False(t, out.Tie())
	assert.Equal(t, model.Rock, *out.WinningMove)
	assert.True(t, out.Pool().Equal(decimal.NewFromInt(36)))
	assert.True(t, out.WinningStake().Equal(decimal.NewFromInt(18)))

	winners := out.Winners()
	require.Len(t, winners, 2)
	assert.Equal(t, "a", winners[0].Gateway.Address())
	assert.Equal(t, "b", winners[1].Gateway.Address())

	for _, gw := range gws {
		assert.Equal(t, uint64(1), gw.Gambler().GamesPlayed())
	}
	assert.Equal(t, uint64(1), gws[0].Gambler().GamesWon())
	assert.Zero(t, gws[2].Gambler().GamesWon())
}

func TestArenaTieBreakByMoveOrder(t *testing.T) {
	tests := []struct {
		name    string
		players []player
		want    model.Move
	}{
		{
			name: "rock over paper",
			players: []player{
				{"a", "1", model.Paper}, {"b", "1", model.Paper},
				{"c", "1", model.Rock}, {"d", "1", model.Rock},
			},
			want: model.Rock,
		},
		{
			name: "paper over scissors",
			players: []player{
				{"a", "1", model.Scissors}, {"b", "1", model.Paper},
				{"c", "1", model.Scissors}, {"d", "1", model.Paper},
			},
			want: model.Paper,
		},
		{
			name:    "one of each",
			players: []player{{"a", "1", model.Scissors}, {"b", "1", model.Paper}, {"c", "1", model.Rock}},
			want:    model.Rock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gws, moves := setup(tt.players...)
			out, err := Arena(gws, moves, 3)
			require.NoError(t, err)
			require.NotNil(t, out.WinningMove)
			assert.Equal(t, tt.want, *out.WinningMove)
		})
	}
}

func TestArenaUnanimousIsTie(t *testing.T) {
	gws, moves := setup(
		player{"a", "10", model.Paper},
		player{"b", "20", model.Paper},
		player{"c", "30", model.Paper},
	)

	out, err := Arena(gws, moves, 3)
	require.NoError(t, err)
	assert.True(t, out.Tie())
	assert.Nil(t, out.Winners())
	for _, gw := range gws {
		assert.Equal(t, uint64(1), gw.Gambler().GamesPlayed())
		assert.Zero(t, gw.Gambler().GamesWon())
	}
}

func TestArenaInsufficientPlayers(t *testing.T) {
	gws, moves := setup(
		player{"a", "10", model.Rock},
		player{"b", "10", model.Paper},
		player{"c", "10", ""},
	)

	_, err := Arena(gws, moves, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInsufficientPlayers))
	assert.Contains(t, err.Error(), "at least 3 required, have 2")
	assert.Zero(t, gws[0].Gambler().GamesPlayed())

	out, err := Arena(gws, moves, 2)
	require.NoError(t, err)
	assert.Equal(t, model.Rock, *out.WinningMove)
	assert.Len(t, out.Participants(), 2, "unrevealed players are not in the pool")
}

func TestTwoPartyRequiresLockedWagers(t *testing.T) {
	g := model.NewGambler(model.GamblerProps{Address: "p1", Token: "ETH", WagerAmount: decimal.NewFromInt(100), Move: model.Rock})
	unlocked := gateway.NewGateway(g, nil)
	locked, moves := setup(player{"p2", "100", model.Scissors})
	moves["p1"] = model.Rock
	gws := []service.Gateway{unlocked, locked[0]}

	_, err := TwoParty(gws, moves)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrWagerNotLocked))
	assert.Zero(t, g.GamesPlayed())
	assert.Zero(t, locked[0].Gambler().GamesPlayed())

	// Блокировка с другой суммой тоже не годится
	require.NoError(t, unlocked.LockWager(decimal.NewFromInt(1), nil))
	_, err = TwoParty(gws, moves)
	assert.True(t, errors.Is(err, model.ErrWagerNotLocked))

	require.NoError(t, unlocked.LockWager(decimal.NewFromInt(100), nil))
	out, err := TwoParty(gws, moves)
	require.NoError(t, err)
	assert.Equal(t, "p1", out.Winner.Address())
}

func TestArenaRequiresLockedWagers(t *testing.T) {
	gws, moves := setup(
		player{"a", "100", model.Rock},
		player{"b", "100", model.Rock},
		player{"c", "100", model.Paper},
	)
	require.NoError(t, gws[1].(*gateway.Gateway).LockWager(decimal.NewFromInt(1), nil))

	_, err := Arena(gws, moves, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrWagerNotLocked))
	assert.Contains(t, err.Error(), "b locked 0.9, want 90")
	for _, gw := range gws {
		assert.Zero(t, gw.Gambler().GamesPlayed())
	}
}

func TestArenaStakesComeFromLocks(t *testing.T) {
	gws, moves := setup(
		player{"a", "10", model.Rock},
		player{"b", "30", model.Rock},
		player{"c", "10", model.Paper},
		player{"d", "10", ""},
	)

	out, err := Arena(gws, moves, 3)
	require.NoError(t, err)
	locked := decimal.Zero
	for _, gw := range out.Participants() {
		locked = locked.Add(gw.LockedWager())
	}
	assert.True(t, out.Pool().Equal(locked), out.Pool().String())
	assert.True(t, out.Pool().Equal(decimal.NewFromInt(45)))
}
