// Package apperr описывает классифицированные ошибки приложения и их HTTP-статусы.
package apperr

import "net/http"

// Kind - класс ошибки.
type Kind int

// Классы ошибок.
const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Сообщения для клиента.
const (
	MsgInternal       = "На сервере произошла ошибка"
	MsgBadRequest     = "Переданы некорректные данные"
	MsgInvalidID      = "Невалидный идентификатор"
	MsgUnauthorized   = "Отсутствует авторизация"
	MsgBadCredentials = "Неправильные почта или пароль"
	MsgForbiddenCard  = "Можно удалять только свои карточки"
	MsgUserNotFound   = "Пользователь по указанному _id не найден"
	MsgCardNotFound   = "Карточка с указанным _id не найдена"
	MsgRouteNotFound  = "Запрашиваемый ресурс не найден"
	MsgEmailConflict  = "Пользователь с таким email уже существует"
)

var statuses = map[Kind]int{
	KindInternal:     http.StatusInternalServerError,
	KindBadRequest:   http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
}

var names = map[Kind]string{
	KindInternal:     "internal",
	KindBadRequest:   "bad_request",
	KindUnauthorized: "unauthorized",
	KindForbidden:    "forbidden",
	KindNotFound:     "not_found",
	KindConflict:     "conflict",
}

// String возвращает имя класса для логов.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return names[KindInternal]
}

// Status возвращает HTTP-статус класса.
func (k Kind) Status() int {
	if status, ok := statuses[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error - ошибка с классом и сообщением для клиента. Причина Err уходит только в логи.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status возвращает HTTP-статус ошибки.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// New создает ошибку заданного класса.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap создает ошибку заданного класса с причиной.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Unauthorized - отсутствующая или неверная авторизация.
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }

// NotFound - сущность не найдена.
func NotFound(message string) *Error { return New(KindNotFound, message) }

// Internal - непредвиденная ошибка, причина скрывается от клиента.
func Internal(err error) *Error { return Wrap(KindInternal, MsgInternal, err) }
