package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Response модели

// ReserveResponse ответ с данными брони
type ReserveResponse struct {
	ID         int64     `json:"id"`
	RoomNumber int       `json:"roomNumber"`
	CheckIn    string    `json:"checkIn"`  // "2025-10-15"
	CheckOut   string    `json:"checkOut"` // "2025-10-18"
	GuestCount int       `json:"guestCount"`
	Nights     int       `json:"nights"`
	FullPrice  int64     `json:"fullPrice"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ReserveListResponse ответ со списком броней
type ReserveListResponse struct {
	Reserves []ReserveResponse `json:"reserves"`
}

// Методы конвертации

// FromDomainReserve конвертирует domain модель в DTO
// Номер и стоимость берутся из привязанной комнаты
func FromDomainReserve(r *domain.Reserve, room *domain.Room) *ReserveResponse {
	if r == nil {
		return nil
	}

	nights := r.Range().Nights()

	return &ReserveResponse{
		ID:         r.ID,
		RoomNumber: room.Number,
		CheckIn:    r.CheckIn.Format(domain.DateFormat),
		CheckOut:   r.CheckOut.Format(domain.DateFormat),
		GuestCount: r.GuestCount,
		Nights:     nights,
		FullPrice:  room.FullPrice(nights),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
