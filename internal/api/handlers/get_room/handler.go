package get_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
)

const (
	msgInvalidRoomNumber = "некорректный номер комнаты"
	msgNotFound          = "номер не найден"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomNumber, err := strconv.Atoi(vars["roomNumber"])
	if err != nil {
		h.logger.Warn("GET /rooms/{number} - Invalid room number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomNumber)
		return
	}

	room, err := h.service.GetByNumber(r.Context(), roomNumber)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{number} - Room not found: room_number=%d", roomNumber)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /rooms/{number} - Failed to get room: room_number=%d, error=%v", roomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{number} - Room retrieved successfully: room_number=%d", roomNumber)
	handlers.RespondJSON(w, http.StatusOK, room)
}
