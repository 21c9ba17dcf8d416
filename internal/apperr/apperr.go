// Package apperr define la taxonomía de errores de dominio que los handlers
// traducen a códigos HTTP. Los adapters de storage convierten sus errores
// (sql.ErrNoRows, violaciones de constraint) a estos tipos para no filtrar
// detalles internos de la base de datos al cliente.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindBadRequest:
		return "bad_request"
	default:
		return "unknown"
	}
}

// Error es un error de dominio con un mensaje apto para el cliente.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is permite errors.Is(err, apperr.ErrNotFound) comparando solo por Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Kind == e.Kind
}

// Sentinels para comparar con errors.Is sin importar el mensaje.
var (
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrConflict   = &Error{Kind: KindConflict}
	ErrBadRequest = &Error{Kind: KindBadRequest}
)

func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Msg: msg} }
func BadRequest(msg string) error { return &Error{Kind: KindBadRequest, Msg: msg} }

// HTTPStatus devuelve el status y el mensaje visible para err.
// Cualquier error fuera de la taxonomía es 500 con un mensaje genérico.
func HTTPStatus(err error) (int, string) {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, "internal error"
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound, e.Msg
	case KindConflict:
		return http.StatusConflict, e.Msg
	case KindBadRequest:
		return http.StatusBadRequest, e.Msg
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
