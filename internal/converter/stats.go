package converter

import (
	dto "arena_backend/internal/api/dto/round"
	statsModel "arena_backend/internal/repository/stats_repo/model"
)

func ToStatsResponse(in statsModel.HouseStats) dto.StatsResponse {
	res := dto.StatsResponse{
		RoundsSettled:   in.RoundsSettled,
		TwoPartyRounds:  in.TwoPartyRounds,
		ArenaRounds:     in.ArenaRounds,
		RefundRounds:    in.RefundRounds,
		Ties:            in.Ties,
		TotalPaidOut:    in.TotalPaidOut,
		TotalRefunded:   in.TotalRefunded,
		TotalEscrowFees: in.TotalEscrowFees,
		WindowTieRate:   in.WindowTieRate,
		Recent:          make([]dto.SettlementSummaryResponse, 0, len(in.Window)),
	}
	for _, s := range in.Window {
		res.Recent = append(res.Recent, dto.SettlementSummaryResponse{
			RoundID:   s.RoundID,
			Mode:      s.Mode,
			Tie:       s.Tie,
			PaidOut:   s.PaidOut,
			Refunded:  s.Refunded,
			EscrowFee: s.EscrowFee,
			SettledAt: s.SettledAt,
		})
	}
	return res
}
