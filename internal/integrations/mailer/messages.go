package mailer

import (
	"fmt"
	"time"
)

const dateFormat = "2006-01-02"

// ConfirmationMail собирает тему и текст письма о подтверждении брони
func ConfirmationMail(name string, roomNumber int, checkIn, checkOut time.Time, guests int) (subject, body string) {
	subject = "Подтверждение бронирования"
	body = fmt.Sprintf(`Здравствуйте, %s, ваша заявка на бронирование одобрена.
 ------ Детали бронирования ------
Комната: %d
Прибытие: %s
Выезд: %s
Количество гостей: %d
Желаем вам хорошего отдыха
--
С уважением, Администрация отеля.`,
		name, roomNumber, checkIn.Format(dateFormat), checkOut.Format(dateFormat), guests)
	return subject, body
}

// CancellationMail собирает тему и текст письма об отмене брони
func CancellationMail() (subject, body string) {
	subject = "Отмена бронирования"
	body = `Здравствуйте. Ваша заявка на отмену брони одобрена.
--
С уважением, Администрация отеля.`
	return subject, body
}
