package get_reserve

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/reserves"
)

const (
	msgInvalidReserveID = "некорректный ID брони"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронь не найдена"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service ReserveService
	logger  Logger
}

func NewHandler(service ReserveService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reserves/{reserveId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reserveID, err := strconv.ParseInt(vars["reserveId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reserves/{id} - Invalid reserve ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReserveID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reserves/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	reserve, err := h.service.GetByID(r.Context(), reserveID, userID)
	if err != nil {
		switch {
		case errors.Is(err, reserves.ErrReserveNotFound):
			h.logger.Warn("GET /reserves/{id} - Reserve not found: reserve_id=%d", reserveID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reserves.ErrAccessDenied):
			h.logger.Warn("GET /reserves/{id} - Access denied: reserve_id=%d, user_id=%d", reserveID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /reserves/{id} - Failed to get reserve: reserve_id=%d, error=%v", reserveID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reserves/{id} - Reserve retrieved successfully: reserve_id=%d, user_id=%d",
		reserveID, userID)
	handlers.RespondJSON(w, http.StatusOK, reserve)
}
