package repository

import (
	repoModel "arena_backend/internal/repository/round_repo/model"
	statsModel "arena_backend/internal/repository/stats_repo/model"
	"arena_backend/internal/service/gateway"
	"context"
)

type RoundRepository interface {
	Create(ctx context.Context, round *repoModel.Round) error
	Get(ctx context.Context, id string) (*repoModel.Round, error)
	List(ctx context.Context) []string
	Delete(ctx context.Context, id string) error

	AddGateway(ctx context.Context, id string, gw *gateway.Gateway) error
	Gateway(ctx context.Context, id, address string) (*gateway.Gateway, error)
	Gateways(ctx context.Context, id string) ([]*gateway.Gateway, error)
}

type StatsRepository interface {
	HouseStats() statsModel.HouseStats
	Record(s statsModel.SettlementSummary)
}
