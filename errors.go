package png

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-png/internal/spec"
)

var (
	// ErrInvalidLength is matched (via [errors.Is]) by any [ValidationError] of kind [ValidationErrorLength]
	ErrInvalidLength = errors.New("chunk type has the wrong number of bytes")

	// ErrInvalidCharacter is matched (via [errors.Is]) by any [ValidationError] of kind [ValidationErrorCharacter]
	ErrInvalidCharacter = errors.New("chunk type contains invalid characters")

	// ErrChunkTooLarge indicates that a chunk header declares a length over [spec.MaxChunkLength]
	ErrChunkTooLarge = errors.New("chunk length exceeds maximum of 2^31-1 bytes")
)

// ValidationErrorKind distinguishes the ways in which a chunk type can fail validation. The set of kinds is closed.
type ValidationErrorKind int

const (
	// ValidationErrorLength means the input did not contain exactly four bytes
	ValidationErrorLength ValidationErrorKind = iota

	// ValidationErrorCharacter means the input contained a byte that is not an ASCII letter
	ValidationErrorCharacter
)

// ValidationError is returned when text or bytes cannot be used as a chunk type. Length is only meaningful when Kind
// is [ValidationErrorLength], in which case it holds the number of bytes actually received.
type ValidationError struct {
	Kind   ValidationErrorKind
	Length int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ValidationErrorLength:
		return fmt.Sprintf("expected %d bytes but received %d when creating chunk type", spec.ChunkTypeSize, e.Length)
	case ValidationErrorCharacter:
		return "input contains one or more invalid characters"
	default:
		return fmt.Sprintf("unknown chunk type validation error (kind %d)", int(e.Kind))
	}
}

// Is allows [errors.Is] to match a ValidationError against [ErrInvalidLength] or [ErrInvalidCharacter]
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrInvalidLength:
		return e.Kind == ValidationErrorLength
	case ErrInvalidCharacter:
		return e.Kind == ValidationErrorCharacter
	}

	return false
}

func lengthError(actual int) *ValidationError {
	return &ValidationError{Kind: ValidationErrorLength, Length: actual}
}

func characterError() *ValidationError {
	return &ValidationError{Kind: ValidationErrorCharacter}
}
