package cancel_reserve

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

// Handle DELETE /api/v1/reserves/{reserveId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reserveID, err := strconv.ParseInt(vars["reserveId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reserves/{id} - Invalid reserve ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReserveID)
		return
	}

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("DELETE /reserves/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.useCase.Execute(r.Context(), reserveID, user.ID, user.Email); err != nil {
		switch {
		case errors.Is(err, cancelReserve.ErrReserveNotFound):
			h.logger.Warn("DELETE /reserves/{id} - Reserve not found: reserve_id=%d", reserveID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelReserve.ErrForbidden):
			h.logger.Warn("DELETE /reserves/{id} - Access denied: reserve_id=%d, user_id=%d", reserveID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /reserves/{id} - Failed to cancel reserve: reserve_id=%d, error=%v", reserveID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reserves/{id} - Reserve cancelled successfully: reserve_id=%d, user_id=%d",
		reserveID, user.ID)
	w.WriteHeader(http.StatusNoContent)
}
