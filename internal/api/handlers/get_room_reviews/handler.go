package get_room_reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/reviews"
)

const (
	msgInvalidRoomNumber = "некорректный номер комнаты"
	msgRoomNotFound      = "номер не найден"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomNumber}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomNumber, err := strconv.Atoi(vars["roomNumber"])
	if err != nil {
		h.logger.Warn("GET /rooms/{number}/reviews - Invalid room number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomNumber)
		return
	}

	result, err := h.service.ListByRoom(r.Context(), roomNumber)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{number}/reviews - Room not found: room_number=%d", roomNumber)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{number}/reviews - Failed to list reviews: room_number=%d, error=%v",
				roomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{number}/reviews - Listed %d reviews: room_number=%d",
		len(result.Reviews), roomNumber)
	handlers.RespondJSON(w, http.StatusOK, result)
}
