package model

import (
	"arena_backend/internal/service/gateway"
	"arena_backend/internal/service/hub"
	"time"
)

// Round запись раунда в хранилище
type Round struct {
	Hub       *hub.Hub
	CreatedAt time.Time

	// Гейтвеи по адресу игрока, порядок регистрации держит хаб
	Gateways map[string]*gateway.Gateway
}

// NewRound оборачивает хаб в запись хранилища
func NewRound(h *hub.Hub) *Round {
	return &Round{
		Hub:       h,
		CreatedAt: time.Now(),
		Gateways:  make(map[string]*gateway.Gateway),
	}
}

func (r *Round) ID() string {
	return r.Hub.RoundID()
}
