package round

import (
	dto "arena_backend/internal/api/dto/round"
	"arena_backend/internal/converter"
	"arena_backend/internal/middleware"
	"arena_backend/internal/model"
	"arena_backend/internal/service"
	"arena_backend/pkg/req"
	"arena_backend/pkg/resp"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.RoundService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.RoundService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, logger: logger}
}

// Open открывает новый раунд
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	snap, err := h.serv.OpenRound(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToRoundResponse(*snap))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.RoundsResponse{Rounds: h.serv.Rounds(r.Context())})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.serv.Snapshot(r.Context(), chi.URLParam(r, "roundID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*snap))
}

// Escrow реестр взносов для живых обновлений
func (h *Handler) Escrow(w http.ResponseWriter, r *http.Request) {
	escrow, err := h.serv.Escrow(r.Context(), chi.URLParam(r, "roundID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEscrowResponse(escrow))
}

func (h *Handler) SetArenaSize(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ArenaSizeRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err = h.serv.SetArenaSize(r.Context(), chi.URLParam(r, "roundID"), payload.MinPlayers); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Join регистрирует игрока. Адрес в теле должен совпадать с адресом токена.
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.JoinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if subject, ok := middleware.AddressFromContext(r.Context()); !ok || subject != payload.Address {
		h.writeError(w, model.ErrUnauthorized)
		return
	}

	state, err := h.serv.Join(r.Context(), chi.URLParam(r, "roundID"), converter.ToJoinRequest(payload))
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGamblerResponse(*state))
}

func (h *Handler) Gambler(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.Gambler(r.Context(), chi.URLParam(r, "roundID"), chi.URLParam(r, "address"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGamblerResponse(*state))
}

func (h *Handler) Lock(w http.ResponseWriter, r *http.Request) {
	address, ok := h.authorize(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.LockRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.serv.LockWager(r.Context(), chi.URLParam(r, "roundID"), address, payload.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGamblerResponse(*state))
}

func (h *Handler) LockDelayed(w http.ResponseWriter, r *http.Request) {
	address, ok := h.authorize(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.DelayedLockRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	delay := time.Duration(payload.DelayMS) * time.Millisecond
	pending, err := h.serv.LockWagerWithDelay(r.Context(), chi.URLParam(r, "roundID"), address, payload.Amount, delay)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusAccepted, converter.ToPendingLockResponse(*pending))
}

func (h *Handler) ConfirmLock(w http.ResponseWriter, r *http.Request) {
	address, ok := h.authorize(w, r)
	if !ok {
		return
	}
	state, err := h.serv.ConfirmDelayedLock(r.Context(), chi.URLParam(r, "roundID"), address)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGamblerResponse(*state))
}

func (h *Handler) EscrowFee(w http.ResponseWriter, r *http.Request) {
	address, ok := h.authorize(w, r)
	if !ok {
		return
	}
	state, err := h.serv.SendEscrowFee(r.Context(), chi.URLParam(r, "roundID"), address)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGamblerResponse(*state))
}

func (h *Handler) Move(w http.ResponseWriter, r *http.Request) {
	address, ok := h.authorize(w, r)
	if !ok {
		return
	}
	state, err := h.serv.SubmitMove(r.Context(), chi.URLParam(r, "roundID"), address)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGamblerResponse(*state))
}

func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	address, ok := h.authorize(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.VoteRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err = h.serv.Vote(r.Context(), chi.URLParam(r, "roundID"), address, payload.Token); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Resolve разыгрывает раунд в режиме дуэли или арены
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ResolveRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	roundID := chi.URLParam(r, "roundID")
	var settlement *model.Settlement
	switch payload.Mode {
	case model.ModeTwoParty:
		settlement, err = h.serv.ResolveTwoPlayer(r.Context(), roundID)
	case model.ModeArena:
		settlement, err = h.serv.ResolveArena(r.Context(), roundID)
	default:
		resp.WriteError(w, http.StatusBadRequest, "unknown mode: "+payload.Mode)
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettlementResponse(*settlement))
}

func (h *Handler) Refund(w http.ResponseWriter, r *http.Request) {
	settlement, err := h.serv.Refund(r.Context(), chi.URLParam(r, "roundID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettlementResponse(*settlement))
}

// Stats статистика дома по закрытым раундам
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats(r.Context())))
}

// authorize сверяет адрес из пути с адресом токена
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	address := chi.URLParam(r, "address")
	subject, ok := middleware.AddressFromContext(r.Context())
	if !ok || subject != address {
		h.writeError(w, model.ErrUnauthorized)
		return "", false
	}
	return address, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	resp.WriteError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrRoundNotFound), errors.Is(err, model.ErrGamblerNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, model.ErrDuplicateGambler),
		errors.Is(err, model.ErrRoundSettled),
		errors.Is(err, model.ErrRoundResolved),
		errors.Is(err, model.ErrEscrowFeeSent):
		return http.StatusConflict
	case errors.Is(err, model.ErrMissingMoves),
		errors.Is(err, model.ErrInsufficientPlayers),
		errors.Is(err, model.ErrWagerNotLocked):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrWagerLockFailed):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrInvalidWager),
		errors.Is(err, model.ErrInvalidMove),
		errors.Is(err, model.ErrInvalidAddress),
		errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInvalidArenaSize),
		errors.Is(err, model.ErrStakeMismatch),
		errors.Is(err, model.ErrNoMoveSet),
		errors.Is(err, model.ErrInvalidVote),
		errors.Is(err, model.ErrInvalidGameRecord):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
