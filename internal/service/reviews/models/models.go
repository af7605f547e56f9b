package models

import "github.com/m04kA/SMC-HotelService/internal/domain"

// Request модели

// AddReviewRequest запрос на добавление отзыва по брони
type AddReviewRequest struct {
	UserID    int64  `json:"userId"`
	ReserveID int64  `json:"reserveId"`
	Rating    int    `json:"rating"`
	Body      string `json:"body"`
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID       int64  `json:"id"`
	AuthorID int64  `json:"authorId"`
	Rating   int    `json:"rating"`
	Body     string `json:"body"`
	PubDate  string `json:"pubDate"` // "2025-10-15"
}

// ReviewListResponse ответ со списком отзывов номера
type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:       r.ID,
		AuthorID: r.AuthorID,
		Rating:   r.Rating,
		Body:     r.Body,
		PubDate:  r.PubDate.Format(domain.DateFormat),
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review, averageRating float64) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews:       make([]ReviewResponse, 0, len(reviews)),
		AverageRating: averageRating,
	}

	for _, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			resp.Reviews = append(resp.Reviews, *reviewResp)
		}
	}

	return resp
}
