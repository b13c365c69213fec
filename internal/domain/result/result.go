// Package result define el sobre de salida uniforme del núcleo de negocio.
// Cada operación devuelve Ok(payload) o Fail(clase, título, mensaje); la capa
// de entrega lo mapea 1:1 a códigos HTTP sin que el núcleo construya objetos
// de transporte.
package result

// StatusClass clase de fallo de una operación de negocio.
type StatusClass int

const (
	StatusServerError StatusClass = iota
	StatusNotFound
	StatusBadRequest
	StatusConflict
)

// Result sobre de resultado de una operación del núcleo.
type Result[T any] struct {
	OK      bool
	Status  StatusClass
	Title   string
	Message string
	Data    T
}

// Ok construye un resultado exitoso con su payload.
func Ok[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

// Fail construye un resultado fallido con clase de estado, título y mensaje.
func Fail[T any](status StatusClass, title, message string) Result[T] {
	return Result[T]{OK: false, Status: status, Title: title, Message: message}
}
