package list_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
)

const msgInvalidPage = "некорректный номер страницы"

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

// Handle GET /api/v1/rooms?page=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page := int64(1)
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /rooms - Invalid page: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		page = parsed
	}

	result, err := h.service.List(r.Context(), page)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidPage):
			h.logger.Warn("GET /rooms - Invalid page: page=%d", page)
			handlers.RespondBadRequest(w, msgInvalidPage)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: page=%d, error=%v", page, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms - Listed %d rooms: page=%d", len(result.Rooms), page)
	handlers.RespondJSON(w, http.StatusOK, result)
}
