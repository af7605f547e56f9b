package mailer

import "errors"

var (
	// ErrRejected возвращается, когда релей отклонил письмо (некорректный адрес и т.п.)
	ErrRejected = errors.New("mailer: message rejected by relay")

	// ErrInvalidResponse возвращается при неожиданном ответе релея
	ErrInvalidResponse = errors.New("mailer: invalid relay response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer: internal error")
)
