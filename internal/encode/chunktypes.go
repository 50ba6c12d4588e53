package encode

import (
	"errors"
	"github.com/davejbax/go-png/internal/spec"
	"regexp"
)

var (
	// ErrInvalidLength indicates that the input string does not encode to exactly [spec.ChunkTypeSize] bytes
	ErrInvalidLength = errors.New("input string has the wrong number of bytes for a chunk type code")

	// ErrInvalidCharacters indicates that the input contains bytes that are not permitted in a chunk type code
	ErrInvalidCharacters = errors.New("input string contains characters that violate encoding")
)

var chunkTypeCodeRegex = regexp.MustCompile(`^[A-Za-z]+$`)

// AsChunkTypeCode converts an input string to a [spec.ChunkTypeCode]. The length of the input is measured in bytes,
// not characters. [ErrInvalidLength] is returned if the input is not exactly four bytes, and [ErrInvalidCharacters] if
// any byte is not an ASCII letter. Case is significant and is never converted.
func AsChunkTypeCode(input string) (spec.ChunkTypeCode, error) {
	var code spec.ChunkTypeCode

	if len(input) != spec.ChunkTypeSize {
		return code, ErrInvalidLength
	}

	if !chunkTypeCodeRegex.MatchString(input) {
		return code, ErrInvalidCharacters
	}

	copy(code[:], input)

	return code, nil
}

// ValidateChunkTypeCode returns [ErrInvalidCharacters] if any byte of code is not an ASCII letter
func ValidateChunkTypeCode(code spec.ChunkTypeCode) error {
	for _, b := range code {
		if !spec.IsASCIILetter(b) {
			return ErrInvalidCharacters
		}
	}

	return nil
}
