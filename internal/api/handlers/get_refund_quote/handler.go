package get_refund_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	cancelReserve "github.com/m04kA/SMC-HotelService/internal/usecase/cancel_reserve"
)

const (
	msgInvalidReserveID = "некорректный ID брони"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронь не найдена"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	useCase CancelReserveUseCase
	logger  Logger
}

func NewHandler(useCase CancelReserveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reserves/{reserveId}/refund
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reserveID, err := strconv.ParseInt(vars["reserveId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reserves/{id}/refund - Invalid reserve ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReserveID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reserves/{id}/refund - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	quote, err := h.useCase.Quote(r.Context(), reserveID, userID)
	if err != nil {
		switch {
		case errors.Is(err, cancelReserve.ErrReserveNotFound):
			h.logger.Warn("GET /reserves/{id}/refund - Reserve not found: reserve_id=%d", reserveID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelReserve.ErrForbidden):
			h.logger.Warn("GET /reserves/{id}/refund - Access denied: reserve_id=%d, user_id=%d", reserveID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /reserves/{id}/refund - Failed to quote refund: reserve_id=%d, error=%v", reserveID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reserves/{id}/refund - Refund quoted: reserve_id=%d, user_id=%d, amount=%d",
		reserveID, userID, quote.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(quote))
}
