package app

import (
	dto "arena_backend/internal/api/dto/round"
	roundAPI "arena_backend/internal/api/round"
	"arena_backend/internal/middleware"
	"arena_backend/internal/repository/round_repo"
	"arena_backend/internal/repository/stats_repo"
	"arena_backend/internal/service/round"
	"arena_backend/pkg/token"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var secret = []byte("test-secret")

type gameCfg struct{}

func (gameCfg) MinWagers() map[string]decimal.Decimal { return nil }
func (gameCfg) ChainConfirmations() map[string]int    { return nil }

type arenaCfg struct{}

func (arenaCfg) MinPlayers() int { return 3 }

func newTestRouter() chi.Router {
	serv := round.NewRoundService(
		round_repo.NewRoundRepository(),
		stats_repo.NewStatsRepository(10),
		gameCfg{},
		arenaCfg{},
		zap.NewNop(),
	)
	h := roundAPI.NewHandler(roundAPI.HandlerDeps{Serv: serv})
	return NewRouter(h, middleware.Auth(secret, zap.NewNop()))
}

type client struct {
	t      *testing.T
	router http.Handler
}

func (c client) do(method, path, address string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if address != "" {
		tok, err := token.GenerateAccessToken(address, secret, time.Minute)
		require.NoError(c.t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestRoundOverHTTP(t *testing.T) {
	c := client{t: t, router: newTestRouter()}

	rec := c.do(http.MethodPost, "/rounds", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	roundID := decode[dto.RoundResponse](t, rec).ID
	base := "/rounds/" + roundID

	for _, p := range []struct{ address, move string }{{"alice", "scissors"}, {"bob", "paper"}} {
		rec = c.do(http.MethodPost, base+"/gamblers", p.address, dto.JoinRequest{
			Address:     p.address,
			Chain:       "Ethereum",
			Token:       "ETH",
			WagerAmount: decimal.NewFromInt(1),
			Move:        p.move,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = c.do(http.MethodPost, base+"/gamblers/"+p.address+"/lock", p.address, dto.LockRequest{Amount: decimal.NewFromInt(1)})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = c.do(http.MethodPost, base+"/gamblers/"+p.address+"/escrow-fee", p.address, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = c.do(http.MethodPost, base+"/gamblers/"+p.address+"/move", p.address, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = c.do(http.MethodGet, base+"/escrow", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	escrow := decode[dto.EscrowResponse](t, rec)
	assert.True(t, escrow.Total.Equal(decimal.RequireFromString("0.2")))

	rec = c.do(http.MethodPost, base+"/resolve", "", dto.ResolveRequest{Mode: "two_party"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	settlement := decode[dto.SettlementResponse](t, rec)
	assert.Equal(t, []string{"alice"}, settlement.Winners)
	assert.Equal(t, "scissors", settlement.WinningMove)

	rec = c.do(http.MethodGet, base+"/gamblers/alice", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	alice := decode[dto.GamblerResponse](t, rec)
	assert.True(t, alice.PayoutReceived.Equal(decimal.RequireFromString("1.8")))
	assert.Equal(t, uint64(1), alice.GamesWon)

	rec = c.do(http.MethodPost, base+"/resolve", "", dto.ResolveRequest{Mode: "two_party"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = c.do(http.MethodGet, "/stats", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[dto.StatsResponse](t, rec)
	assert.Equal(t, 1, stats.RoundsSettled)
}

func TestGamblerEndpointsRequireMatchingToken(t *testing.T) {
	c := client{t: t, router: newTestRouter()}
	rec := c.do(http.MethodPost, "/rounds", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	base := "/rounds/" + decode[dto.RoundResponse](t, rec).ID

	join := dto.JoinRequest{Address: "alice", Token: "ETH", WagerAmount: decimal.NewFromInt(1)}

	rec = c.do(http.MethodPost, base+"/gamblers", "", join)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = c.do(http.MethodPost, base+"/gamblers", "mallory", join)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = c.do(http.MethodPost, base+"/gamblers", "alice", join)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = c.do(http.MethodPost, base+"/gamblers/alice/lock", "mallory", dto.LockRequest{Amount: decimal.NewFromInt(1)})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestErrorStatuses(t *testing.T) {
	c := client{t: t, router: newTestRouter()}

	rec := c.do(http.MethodGet, "/rounds/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodPost, "/rounds", "", nil)
	base := "/rounds/" + decode[dto.RoundResponse](t, rec).ID

	rec = c.do(http.MethodPost, base+"/gamblers", "r1", dto.JoinRequest{Address: "r1", Token: "XRP", WagerAmount: decimal.NewFromInt(5)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "wager must be at least 10 XRP")

	rec = c.do(http.MethodPost, base+"/resolve", "", dto.ResolveRequest{Mode: "arena"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = c.do(http.MethodPost, base+"/resolve", "", dto.ResolveRequest{Mode: "poker"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodPut, base+"/arena-size", "", dto.ArenaSizeRequest{MinPlayers: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodPut, base+"/arena-size", "", dto.ArenaSizeRequest{MinPlayers: 4})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = c.do(http.MethodGet, "/rounds", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[dto.RoundsResponse](t, rec).Rounds, 1)
}

func TestDelayedLockOverHTTP(t *testing.T) {
	c := client{t: t, router: newTestRouter()}
	rec := c.do(http.MethodPost, "/rounds", "", nil)
	base := "/rounds/" + decode[dto.RoundResponse](t, rec).ID

	rec = c.do(http.MethodPost, base+"/gamblers", "alice", dto.JoinRequest{Address: "alice", Token: "ETH", WagerAmount: decimal.NewFromInt(2)})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = c.do(http.MethodPost, base+"/gamblers/alice/lock-delayed", "alice", dto.DelayedLockRequest{Amount: decimal.NewFromInt(2), DelayMS: 60000})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	pending := decode[dto.PendingLockResponse](t, rec)
	assert.NotEmpty(t, pending.ID)

	rec = c.do(http.MethodPost, base+"/gamblers/alice/confirm-lock", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[dto.GamblerResponse](t, rec).LockedWager.Equal(decimal.RequireFromString("1.8")))

	rec = c.do(http.MethodPost, base+"/gamblers/alice/vote", "alice", dto.VoteRequest{Token: "XRP"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestResolveWithoutLockIsRejected(t *testing.T) {
	c := client{t: t, router: newTestRouter()}
	rec := c.do(http.MethodPost, "/rounds", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	base := "/rounds/" + decode[dto.RoundResponse](t, rec).ID

	for _, p := range []struct{ address, move string }{{"alice", "rock"}, {"bob", "scissors"}} {
		rec = c.do(http.MethodPost, base+"/gamblers", p.address, dto.JoinRequest{
			Address:     p.address,
			Token:       "ETH",
			WagerAmount: decimal.NewFromInt(1),
			Move:        p.move,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = c.do(http.MethodPost, base+"/gamblers/"+p.address+"/move", p.address, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = c.do(http.MethodPost, base+"/resolve", "", dto.ResolveRequest{Mode: "two_party"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "wager is not locked in escrow")

	rec = c.do(http.MethodGet, base+"/gamblers/alice", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	alice := decode[dto.GamblerResponse](t, rec)
	assert.True(t, alice.PayoutReceived.IsZero())
	assert.Zero(t, alice.GamesPlayed)
}
