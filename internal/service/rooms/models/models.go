package models

import "github.com/m04kA/SMC-HotelService/internal/domain"

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	Number        int     `json:"number"`
	TypeCode      string  `json:"typeCode"`
	NightlyPrice  int64   `json:"nightlyPrice"`
	Capacity      int     `json:"capacity"`
	AverageRating float64 `json:"averageRating"`
}

// RoomListResponse ответ со списком номеров (постранично)
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Page  int64          `json:"page"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room, averageRating float64) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		Number:        r.Number,
		TypeCode:      r.TypeCode,
		NightlyPrice:  r.NightlyPrice,
		Capacity:      r.Capacity,
		AverageRating: averageRating,
	}
}
