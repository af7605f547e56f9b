package create_reserve

import "time"

// Request модель запроса на создание резерва
type Request struct {
	UserID     int64     // ID клиента (от identity-провайдера)
	UserEmail  string    // Email клиента для письма-подтверждения
	UserName   string    // Имя клиента для письма-подтверждения
	RoomNumber int       // Номер комнаты
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	GuestCount int       // Количество гостей
}

// Response модель ответа с созданным резервом
type Response struct {
	ID         int64     // ID созданного резерва
	RoomNumber int       // Номер комнаты
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	GuestCount int       // Количество гостей
	Nights     int       // Количество ночей
	FullPrice  int64     // Полная стоимость проживания
	CreatedAt  time.Time // Время создания
}
