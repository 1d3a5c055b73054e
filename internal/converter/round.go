package converter

import (
	dto "arena_backend/internal/api/dto/round"
	"arena_backend/internal/model"

	"github.com/shopspring/decimal"
)

func ToJoinRequest(in dto.JoinRequest) model.JoinRequest {
	res := model.JoinRequest{
		Address:     in.Address,
		Chain:       in.Chain,
		Token:       in.Token,
		WagerAmount: in.WagerAmount,
		Move:        in.Move,
		GamesPlayed: in.GamesPlayed,
		GamesWon:    in.GamesWon,
	}
	if in.WagerTime != nil {
		res.WagerTime = *in.WagerTime
	}
	return res
}

func ToGamblerResponse(in model.GamblerState) dto.GamblerResponse {
	return dto.GamblerResponse{
		Address:               in.Address,
		Chain:                 in.Chain,
		Token:                 in.Token,
		WagerAmount:           in.WagerAmount,
		Move:                  in.Move.String(),
		MoveReady:             in.MoveReady,
		LockedWager:           in.LockedWager,
		LockedEscrowFee:       in.LockedEscrowFee,
		PayoutReceived:        in.PayoutReceived,
		RequiredConfirmations: in.RequiredConfirmations,
		GamesPlayed:           in.GamesPlayed,
		GamesWon:              in.GamesWon,
	}
}

func ToEscrowResponse(in model.Escrow) dto.EscrowResponse {
	res := dto.EscrowResponse{
		Contributions: in.UserContributions,
		Total:         in.Total(),
	}
	if res.Contributions == nil {
		res.Contributions = map[string]decimal.Decimal{}
	}
	return res
}

func ToRoundResponse(in model.RoundSnapshot) dto.RoundResponse {
	res := dto.RoundResponse{
		ID:              in.ID,
		Settled:         in.Settled,
		MinArenaPlayers: in.MinArenaPlayers,
		Escrow:          ToEscrowResponse(in.Escrow),
		Gamblers:        make([]dto.GamblerResponse, 0, len(in.Gamblers)),
		TokenVotes:      in.TokenVotes,
	}
	for _, g := range in.Gamblers {
		res.Gamblers = append(res.Gamblers, ToGamblerResponse(g))
	}
	return res
}

func ToPendingLockResponse(in model.PendingLockInfo) dto.PendingLockResponse {
	return dto.PendingLockResponse{
		ID:      in.ID,
		Address: in.Address,
		Amount:  in.Amount,
		ReadyAt: in.ReadyAt,
	}
}

func ToSettlementResponse(in model.Settlement) dto.SettlementResponse {
	res := dto.SettlementResponse{
		RoundID:     in.RoundID,
		Mode:        in.Mode,
		Tie:         in.Tie,
		WinningMove: in.WinningMove.String(),
		Winners:     in.Winners,
		Payouts:     make([]dto.PayoutResponse, 0, len(in.Payouts)),
		Refunds:     in.Refunds,
	}
	if res.Winners == nil {
		res.Winners = []string{}
	}
	if res.Refunds == nil {
		res.Refunds = map[string]decimal.Decimal{}
	}
	for _, p := range in.Payouts {
		if p.Winner == nil {
			continue
		}
		res.Payouts = append(res.Payouts, dto.PayoutResponse{Address: p.Winner.Address(), Amount: p.Amount})
	}
	return res
}
