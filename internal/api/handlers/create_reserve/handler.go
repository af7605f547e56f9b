package create_reserve

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	createReserve "github.com/m04kA/SMC-HotelService/internal/usecase/create_reserve"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRoomNotFound       = "номер не найден"
	msgInvalidRange       = "некорректный диапазон дат"
	msgInvalidGuestCount  = "некорректное количество гостей"
	msgCapacityExceeded   = "количество гостей превышает вместимость номера"
	msgRoomUnavailable    = "номер занят на выбранные даты"
	msgUserConflict       = "у вас уже есть бронь на пересекающиеся даты"
)

type Handler struct {
	useCase CreateReserveUseCase
	logger  Logger
}

func NewHandler(useCase CreateReserveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reserves
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("POST /reserves - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReserveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reserves - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(user)
	if err != nil {
		h.logger.Warn("POST /reserves - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReserve.ErrRoomNotFound):
			h.logger.Warn("POST /reserves - Room not found: room_number=%d", req.RoomNumber)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReserve.ErrInvalidRange):
			h.logger.Warn("POST /reserves - Invalid date range: user_id=%d, check_in=%s, check_out=%s",
				user.ID, req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createReserve.ErrInvalidGuestCount):
			h.logger.Warn("POST /reserves - Invalid guest count: user_id=%d, guests=%d", user.ID, req.GuestCount)
			handlers.RespondBadRequest(w, msgInvalidGuestCount)

		case errors.Is(err, createReserve.ErrCapacityExceeded):
			h.logger.Warn("POST /reserves - Capacity exceeded: room_number=%d, guests=%d", req.RoomNumber, req.GuestCount)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createReserve.ErrRoomUnavailable):
			h.logger.Warn("POST /reserves - Room unavailable: room_number=%d, user_id=%d", req.RoomNumber, user.ID)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, createReserve.ErrUserConflict):
			h.logger.Warn("POST /reserves - User dates conflict: user_id=%d", user.ID)
			handlers.RespondConflict(w, msgUserConflict)

		default:
			h.logger.Error("POST /reserves - Failed to create reserve: user_id=%d, room_number=%d, error=%v",
				user.ID, req.RoomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reserves - Reserve created successfully: reserve_id=%d, user_id=%d, room_number=%d",
		result.ID, user.ID, req.RoomNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
