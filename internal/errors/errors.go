// Package errors описывает виды сбоев цикла опроса.
package errors

import (
	"errors"
	"fmt"
)

// Kind задаёт вид ошибки, по нему цикл решает, как её залогировать.
type Kind string

const (
	KindUnknown            Kind = "Unknown"
	KindAPIUnavailable     Kind = "ApiUnavailable"
	KindUnexpectedStatus   Kind = "UnexpectedStatusCode"
	KindMalformedResponse  Kind = "MalformedResponse"
	KindMissingField       Kind = "MissingField"
	KindUnknownStatus      Kind = "UnknownStatus"
	KindNotificationFailed Kind = "NotificationFailed"
)

// Error возвращают клиент, проверка ответа, разбор статуса и отправка.
type Error struct {
	kind    Kind
	message string
	err     error

	// Только для KindUnexpectedStatus
	StatusCode int
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}

	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf возвращает вид первой *Error в цепочке или KindUnknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}

	return KindUnknown
}

func NewAPIUnavailable(cause error) error {
	return &Error{
		kind:    KindAPIUnavailable,
		message: "эндпоинт недоступен",
		err:     cause,
	}
}

func NewUnexpectedStatus(code int) error {
	return &Error{
		kind:       KindUnexpectedStatus,
		message:    fmt.Sprintf("получен неправильный код ответа API: %d", code),
		StatusCode: code,
	}
}

func NewMalformedResponse(message string, cause error) error {
	return &Error{
		kind:    KindMalformedResponse,
		message: message,
		err:     cause,
	}
}

func NewMissingField(field string) error {
	return &Error{
		kind:    KindMissingField,
		message: fmt.Sprintf("нет ключа %q в данных о работе", field),
	}
}

func NewUnknownStatus(status string) error {
	return &Error{
		kind:    KindUnknownStatus,
		message: fmt.Sprintf("неизвестный статус %q", status),
	}
}

func NewNotificationFailed(cause error) error {
	return &Error{
		kind:    KindNotificationFailed,
		message: "сообщение не отправлено",
		err:     cause,
	}
}
