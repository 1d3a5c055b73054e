package hub

import (
	"arena_backend/internal/model"
	"arena_backend/internal/service"
	"arena_backend/internal/service/resolver"

	"go.uber.org/zap"
)

// ResolveTwoPlayerGame разыгрывает дуэль по зарегистрированным гейтвеям
func (h *Hub) ResolveTwoPlayerGame() (resolver.TwoPartyOutcome, error) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.resolved {
		return resolver.TwoPartyOutcome{}, model.ErrRoundResolved
	}

	out, err := resolver.TwoParty(h.gateways, h.revealedMoves())
	if err != nil {
		h.logger.Warn("two-player resolution failed", zap.Error(err))
		return resolver.TwoPartyOutcome{}, err
	}
	h.resolved = true

	if out.Tie() {
		h.logger.Info("two-player round tied")
	} else {
		h.logger.Info("two-player round resolved", zap.String("winner", out.Winner.Address()))
	}
	return out, nil
}

// ResolveArenaGame разыгрывает арену по зарегистрированным гейтвеям
func (h *Hub) ResolveArenaGame() (resolver.ArenaOutcome, error) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.resolved {
		return resolver.ArenaOutcome{}, model.ErrRoundResolved
	}

	out, err := resolver.Arena(h.gateways, h.revealedMoves(), h.minArenaPlayers)
	if err != nil {
		h.logger.Warn("arena resolution failed", zap.Error(err), zap.Int("min_players", h.minArenaPlayers))
		return resolver.ArenaOutcome{}, err
	}
	h.resolved = true

	if out.Tie() {
		h.logger.Info("arena round tied: every player chose the same move")
	} else {
		h.logger.Info("arena round resolved",
			zap.Stringer("winning_move", *out.WinningMove),
			zap.Int("winners", len(out.Winners())),
		)
	}
	return out, nil
}

// revealedMoves ходы игроков, которые хаб уже получил. Вызывать под мьютексом.
func (h *Hub) revealedMoves() map[string]model.Move {
	moves := make(map[string]model.Move, len(h.ready))
	for _, gw := range h.gateways {
		if _, ok := h.ready[gw.Address()]; !ok {
			continue
		}
		if m, ok := gw.Gambler().Move(); ok {
			moves[gw.Address()] = m
		}
	}
	return moves
}

func addresses(gws []service.Gateway) []string {
	res := make([]string, len(gws))
	for i, gw := range gws {
		res[i] = gw.Address()
	}
	return res
}
