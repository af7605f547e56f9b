package search_rooms

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	searchRooms "github.com/m04kA/SMC-HotelService/internal/usecase/search_rooms"
)

const (
	msgMissingUserID     = "отсутствует ID пользователя"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange      = "некорректный диапазон дат"
	msgInvalidGuestCount = "некорректное количество гостей"
	msgUserConflict      = "у вас уже есть бронь на пересекающиеся даты"
)

type Handler struct {
	useCase SearchRoomsUseCase
	logger  Logger
}

func NewHandler(useCase SearchRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD&guests=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /rooms/available - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	checkIn, err := time.Parse(domain.DateFormat, query.Get("checkIn"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid checkIn: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	checkOut, err := time.Parse(domain.DateFormat, query.Get("checkOut"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid checkOut: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	guests, err := strconv.Atoi(query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid guests: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestCount)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &searchRooms.Request{
		UserID:     userID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: guests,
	})
	if err != nil {
		switch {
		case errors.Is(err, searchRooms.ErrInvalidRange):
			h.logger.Warn("GET /rooms/available - Invalid date range: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, searchRooms.ErrInvalidGuestCount):
			h.logger.Warn("GET /rooms/available - Invalid guest count: user_id=%d, guests=%d", userID, guests)
			handlers.RespondBadRequest(w, msgInvalidGuestCount)

		case errors.Is(err, searchRooms.ErrUserConflict):
			h.logger.Warn("GET /rooms/available - User dates conflict: user_id=%d", userID)
			handlers.RespondConflict(w, msgUserConflict)

		default:
			h.logger.Error("GET /rooms/available - Failed to search rooms: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/available - Found %d rooms: user_id=%d", len(result.Rooms), userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
