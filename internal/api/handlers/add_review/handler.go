package add_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/reviews"
	"github.com/m04kA/SMC-HotelService/internal/service/reviews/models"
)

const (
	msgInvalidReserveID   = "некорректный ID брони"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgReserveNotFound    = "бронь не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgEmptyBody          = "текст отзыва не может быть пустым"
	msgAlreadyReviewed    = "отзыв по этой брони уже оставлен"
)

// addReviewRequest HTTP request model
type addReviewRequest struct {
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}

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

// Handle POST /api/v1/reserves/{reserveId}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reserveID, err := strconv.ParseInt(vars["reserveId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reserves/{id}/review - Invalid reserve ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReserveID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reserves/{id}/review - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req addReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reserves/{id}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.Add(r.Context(), &models.AddReviewRequest{
		UserID:    userID,
		ReserveID: reserveID,
		Rating:    req.Rating,
		Body:      req.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrReserveNotFound):
			h.logger.Warn("POST /reserves/{id}/review - Reserve not found: reserve_id=%d", reserveID)
			handlers.RespondNotFound(w, msgReserveNotFound)

		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("POST /reserves/{id}/review - Access denied: reserve_id=%d, user_id=%d", reserveID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reviews.ErrInvalidRating):
			h.logger.Warn("POST /reserves/{id}/review - Invalid rating: reserve_id=%d, rating=%d", reserveID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reserves/{id}/review - Empty review body: reserve_id=%d", reserveID)
			handlers.RespondBadRequest(w, msgEmptyBody)

		case errors.Is(err, reviews.ErrAlreadyReviewed):
			h.logger.Warn("POST /reserves/{id}/review - Already reviewed: reserve_id=%d", reserveID)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		default:
			h.logger.Error("POST /reserves/{id}/review - Failed to add review: reserve_id=%d, error=%v", reserveID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reserves/{id}/review - Review added successfully: review_id=%d, reserve_id=%d, user_id=%d",
		review.ID, reserveID, userID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
