package get_user_reserves

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/reserves
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/reserves - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/reserves - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Пользователь может смотреть только собственную историю броней
	if userID != authUserID {
		h.logger.Warn("GET /users/{id}/reserves - Access denied: requested=%d, authenticated=%d", userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	reserves, err := h.service.GetUserReserves(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/reserves - Failed to get reserves: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/reserves - Reserves retrieved successfully: user_id=%d, count=%d",
		userID, len(reserves.Reserves))
	handlers.RespondJSON(w, http.StatusOK, reserves)
}
