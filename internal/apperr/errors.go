// Package apperr define los errores tipados del dominio. Los handlers los
// mapean a códigos HTTP con errors.Is / errors.As; los servicios nunca
// devuelven strings centinela mezclados con datos.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: lookup por id que no existe en un store.
	ErrNotFound = errors.New("not found")

	// ErrConflict: nombre de usuario ya registrado.
	ErrConflict = errors.New("username already exists")

	// ErrSessionRequired: estrategia que exige sesión invocada sin usuario.
	ErrSessionRequired = errors.New("login required")

	// ErrNoRecommendations: el usuario no tiene ratings válidos para la
	// estrategia por matriz de similitud (señal explícita, no lista vacía).
	ErrNoRecommendations = errors.New("no valid ratings available for recommendations")
)

// ValidationError: input de registro mal formado.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
