package search_rooms

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	searchRooms "github.com/m04kA/SMC-HotelService/internal/usecase/search_rooms"
)

// RoomOffer HTTP модель свободной комнаты
type RoomOffer struct {
	RoomNumber    int     `json:"roomNumber"`
	NightlyPrice  int64   `json:"nightlyPrice"`
	Capacity      int     `json:"capacity"`
	Nights        int     `json:"nights"`
	FullPrice     int64   `json:"fullPrice"`
	AverageRating float64 `json:"averageRating"`
}

// SearchRoomsResponse HTTP response model
type SearchRoomsResponse struct {
	CheckIn    string      `json:"checkIn"`
	CheckOut   string      `json:"checkOut"`
	GuestCount int         `json:"guestCount"`
	Rooms      []RoomOffer `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchRooms.Response) *SearchRoomsResponse {
	rooms := make([]RoomOffer, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, RoomOffer{
			RoomNumber:    room.RoomNumber,
			NightlyPrice:  room.NightlyPrice,
			Capacity:      room.Capacity,
			Nights:        room.Nights,
			FullPrice:     room.FullPrice,
			AverageRating: room.AverageRating,
		})
	}

	return &SearchRoomsResponse{
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		GuestCount: resp.GuestCount,
		Rooms:      rooms,
	}
}
