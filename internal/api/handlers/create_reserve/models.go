package create_reserve

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	createReserve "github.com/m04kA/SMC-HotelService/internal/usecase/create_reserve"
)

// CreateReserveRequest HTTP request model
type CreateReserveRequest struct {
	RoomNumber int    `json:"roomNumber"`
	CheckIn    string `json:"checkIn"`  // "2025-10-15"
	CheckOut   string `json:"checkOut"` // "2025-10-18"
	GuestCount int    `json:"guestCount"`
}

// ReserveResponse HTTP response model
type ReserveResponse struct {
	ID         int64  `json:"id"`
	RoomNumber int    `json:"roomNumber"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	GuestCount int    `json:"guestCount"`
	Nights     int    `json:"nights"`
	FullPrice  int64  `json:"fullPrice"`
	CreatedAt  string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReserveRequest) ToUseCaseRequest(user middleware.Principal) (*createReserve.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createReserve.Request{
		UserID:     user.ID,
		UserEmail:  user.Email,
		UserName:   user.Name,
		RoomNumber: r.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: r.GuestCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReserve.Response) *ReserveResponse {
	return &ReserveResponse{
		ID:         resp.ID,
		RoomNumber: resp.RoomNumber,
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		GuestCount: resp.GuestCount,
		Nights:     resp.Nights,
		FullPrice:  resp.FullPrice,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
