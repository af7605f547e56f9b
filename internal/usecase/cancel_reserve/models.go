package cancel_reserve

import "time"

// QuoteResponse модель ответа с расчетом возврата при отмене
type QuoteResponse struct {
	ReserveID        int64     // ID резерва
	RoomNumber       int       // Номер комнаты
	CheckIn          time.Time // Дата заезда
	CheckOut         time.Time // Дата выезда
	RefundableNights int       // Количество возвращаемых ночей
	Delayed          bool      // true - проживание уже закончилось, возврата нет
	Amount           int64     // Сумма возврата (0 при Delayed)
}
