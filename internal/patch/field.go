// Package patch modela campos opcionales para PATCH real: distingue
// "no enviado", "enviado como null" y "enviado con valor".
package patch

import (
	"bytes"
	"encoding/json"
)

// Field es un miembro opcional de un patch.
//   - Set == false: el campo no vino en el body, no se toca.
//   - Set == true && Null: el cliente mandó null explícito (limpiar columna).
//   - Set == true && !Null: Value trae el nuevo valor.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Value construye un Field presente con valor (útil en tests y servicios).
func Value[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null construye un Field presente con null explícito.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// UnmarshalJSON se invoca solo si la clave existe en el objeto JSON,
// incluso cuando el valor es null.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(b, &f.Value)
}

// Ptr devuelve nil para null y un puntero al valor en otro caso.
// Pensado para bindear columnas nullables.
func (f Field[T]) Ptr() *T {
	if !f.Set || f.Null {
		return nil
	}
	v := f.Value
	return &v
}
