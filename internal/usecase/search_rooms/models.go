package search_rooms

import "time"

// Request модель запроса на подбор свободных комнат
type Request struct {
	UserID     int64     // ID клиента
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	GuestCount int       // Количество гостей
}

// RoomOffer свободная комната с расчетом стоимости на запрошенные даты
type RoomOffer struct {
	RoomNumber    int     // Номер комнаты
	NightlyPrice  int64   // Цена за ночь
	Capacity      int     // Вместимость
	Nights        int     // Количество ночей
	FullPrice     int64   // Полная стоимость проживания
	AverageRating float64 // Средний рейтинг по отзывам
}

// Response модель ответа со списком свободных комнат
type Response struct {
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	Rooms      []RoomOffer
}
