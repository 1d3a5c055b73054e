package round_repo

import (
	"arena_backend/internal/model"
	repoModel "arena_backend/internal/repository/round_repo/model"
	"arena_backend/internal/service/gateway"
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// RoundRepo хранит раунды в памяти процесса
type RoundRepo struct {
	mtx    sync.RWMutex
	rounds map[string]*repoModel.Round
}

// NewRoundRepository Конструктор пустого хранилища
func NewRoundRepository() *RoundRepo {
	return &RoundRepo{
		rounds: make(map[string]*repoModel.Round),
	}
}

func (r *RoundRepo) Create(_ context.Context, round *repoModel.Round) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.rounds[round.ID()]; ok {
		return errors.Errorf("round %s already exists", round.ID())
	}
	r.rounds[round.ID()] = round
	return nil
}

func (r *RoundRepo) Get(_ context.Context, id string) (*repoModel.Round, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	round, ok := r.rounds[id]
	if !ok {
		return nil, errors.Wrapf(model.ErrRoundNotFound, "id %s", id)
	}
	return round, nil
}

// List идентификаторы раундов по времени создания
func (r *RoundRepo) List(_ context.Context) []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	rounds := make([]*repoModel.Round, 0, len(r.rounds))
	for _, round := range r.rounds {
		rounds = append(rounds, round)
	}
	sort.Slice(rounds, func(i, j int) bool {
		return rounds[i].CreatedAt.Before(rounds[j].CreatedAt)
	})

	ids := make([]string, len(rounds))
	for i, round := range rounds {
		ids[i] = round.ID()
	}
	return ids
}

func (r *RoundRepo) Delete(_ context.Context, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.rounds[id]; !ok {
		return errors.Wrapf(model.ErrRoundNotFound, "id %s", id)
	}
	delete(r.rounds, id)
	return nil
}

// AddGateway запоминает гейтвей игрока. Хаб к этому моменту уже принял его.
func (r *RoundRepo) AddGateway(_ context.Context, id string, gw *gateway.Gateway) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	round, ok := r.rounds[id]
	if !ok {
		return errors.Wrapf(model.ErrRoundNotFound, "id %s", id)
	}
	round.Gateways[gw.Address()] = gw
	return nil
}

func (r *RoundRepo) Gateway(_ context.Context, id, address string) (*gateway.Gateway, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	round, ok := r.rounds[id]
	if !ok {
		return nil, errors.Wrapf(model.ErrRoundNotFound, "id %s", id)
	}
	gw, ok := round.Gateways[address]
	if !ok {
		return nil, errors.Wrapf(model.ErrGamblerNotFound, "address %s", address)
	}
	return gw, nil
}

// Gateways гейтвеи раунда в порядке регистрации в хабе
func (r *RoundRepo) Gateways(_ context.Context, id string) ([]*gateway.Gateway, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	round, ok := r.rounds[id]
	if !ok {
		return nil, errors.Wrapf(model.ErrRoundNotFound, "id %s", id)
	}
	res := make([]*gateway.Gateway, 0, len(round.Gateways))
	for _, gw := range round.Hub.Gateways() {
		if own, ok := round.Gateways[gw.Address()]; ok {
			res = append(res, own)
		}
	}
	return res, nil
}
