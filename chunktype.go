// Package png provides the building blocks of the chunk layout used by PNG datastreams.
//
// The central type is [ChunkType], the 4-byte code that names the kind of each chunk. The PNG standard encodes four
// properties of a chunk in the case of the letters making up its type, e.g. 'IHDR' is critical whereas 'tEXt' is
// ancillary, private to no one, and safe to copy.
package png

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/davejbax/go-png/internal/encode"
	"github.com/davejbax/go-png/internal/spec"
	"strconv"
)

// ChunkType is a PNG chunk type code. It is an immutable value: two chunk types are equal (==) iff their bytes are
// equal, regardless of how they were constructed.
//
// A ChunkType obtained from [ParseChunkType] always consists of ASCII letters. One obtained from [ChunkTypeFromBytes]
// may not; use [ChunkType.Validate] to check.
type ChunkType struct {
	code spec.ChunkTypeCode
}

// ChunkTypeFromBytes wraps raw bytes as a ChunkType without any validation. This is intended for decoders that have
// just read four bytes from a chunk header.
func ChunkTypeFromBytes(b [4]byte) ChunkType {
	return ChunkType{code: spec.ChunkTypeCode(b)}
}

// ParseChunkType creates a ChunkType from its textual form. A [*ValidationError] is returned if s is not exactly four
// bytes long, or if any of those bytes is not an ASCII letter.
func ParseChunkType(s string) (ChunkType, error) {
	code, err := encode.AsChunkTypeCode(s)
	switch {
	case errors.Is(err, encode.ErrInvalidLength):
		return ChunkType{}, lengthError(len(s))
	case errors.Is(err, encode.ErrInvalidCharacters):
		return ChunkType{}, characterError()
	case err != nil:
		return ChunkType{}, fmt.Errorf("could not encode chunk type: %w", err)
	}

	return ChunkTypeFromBytes(code), nil
}

// MustParseChunkType is like [ParseChunkType] but panics if s is not a valid chunk type
func MustParseChunkType(s string) ChunkType {
	c, err := ParseChunkType(s)
	if err != nil {
		panic(fmt.Sprintf("invalid chunk type %q: %v", s, err))
	}

	return c
}

// IsCritical reports whether the ancillary bit is clear (first letter uppercase). Decoders must understand every
// critical chunk in order to process a datastream.
func (c ChunkType) IsCritical() bool {
	return !spec.CaseBitSet(c.code[spec.AncillaryBitByte])
}

// IsPublic reports whether the private bit is clear (second letter uppercase)
func (c ChunkType) IsPublic() bool {
	return !spec.CaseBitSet(c.code[spec.PrivateBitByte])
}

// IsReservedBitValid reports whether the reserved bit is clear (third letter uppercase), as the standard requires
func (c ChunkType) IsReservedBitValid() bool {
	return !spec.CaseBitSet(c.code[spec.ReservedBitByte])
}

// IsValid is equivalent to [ChunkType.IsReservedBitValid]. It does not check that the bytes are letters; see
// [ChunkType.Validate] for that.
func (c ChunkType) IsValid() bool {
	return c.IsReservedBitValid()
}

// IsSafeToCopy reports whether the safe-to-copy bit is set (fourth letter lowercase). Editors that do not recognise a
// chunk may copy it unmodified only if this is true.
func (c ChunkType) IsSafeToCopy() bool {
	return spec.CaseBitSet(c.code[spec.SafeToCopyBitByte])
}

// Bytes returns a copy of the raw bytes, for writing into a chunk header
func (c ChunkType) Bytes() [4]byte {
	return c.code
}

// Validate returns a [*ValidationError] if any byte is not an ASCII letter
func (c ChunkType) Validate() error {
	if err := encode.ValidateChunkTypeCode(c.code); err != nil {
		return characterError()
	}

	return nil
}

// Text returns the chunk type as a four-character string. If the chunk type was created from bytes that are not ASCII
// letters, a [*ValidationError] is returned instead.
func (c ChunkType) Text() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	return string(c.code[:]), nil
}

// String implements [fmt.Stringer]. Chunk types that are not made of ASCII letters are rendered as a quoted Go string
// literal, so this never fails.
func (c ChunkType) String() string {
	text, err := c.Text()
	if err != nil {
		return strconv.QuoteToASCII(string(c.code[:]))
	}

	return text
}

// Compare returns -1, 0 or +1 depending on whether c sorts before, equal to, or after other. Chunk types are ordered
// by comparing their bytes as unsigned values.
func (c ChunkType) Compare(other ChunkType) int {
	return bytes.Compare(c.code[:], other.code[:])
}

// MarshalText implements [encoding.TextMarshaler]
func (c ChunkType) MarshalText() ([]byte, error) {
	text, err := c.Text()
	if err != nil {
		return nil, err
	}

	return []byte(text), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]
func (c *ChunkType) UnmarshalText(text []byte) error {
	parsed, err := ParseChunkType(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// Chunk types defined by the PNG standard
var (
	ChunkTypeIHDR = ChunkTypeFromBytes(spec.ChunkTypeCodeIHDR)
	ChunkTypePLTE = ChunkTypeFromBytes(spec.ChunkTypeCodePLTE)
	ChunkTypeIDAT = ChunkTypeFromBytes(spec.ChunkTypeCodeIDAT)
	ChunkTypeIEND = ChunkTypeFromBytes(spec.ChunkTypeCodeIEND)

	ChunkTypeTRNS = ChunkTypeFromBytes(spec.ChunkTypeCodeTRNS)
	ChunkTypeCHRM = ChunkTypeFromBytes(spec.ChunkTypeCodeCHRM)
	ChunkTypeGAMA = ChunkTypeFromBytes(spec.ChunkTypeCodeGAMA)
	ChunkTypeICCP = ChunkTypeFromBytes(spec.ChunkTypeCodeICCP)
	ChunkTypeSBIT = ChunkTypeFromBytes(spec.ChunkTypeCodeSBIT)
	ChunkTypeSRGB = ChunkTypeFromBytes(spec.ChunkTypeCodeSRGB)
	ChunkTypeTEXT = ChunkTypeFromBytes(spec.ChunkTypeCodeTEXT)
	ChunkTypeZTXT = ChunkTypeFromBytes(spec.ChunkTypeCodeZTXT)
	ChunkTypeITXT = ChunkTypeFromBytes(spec.ChunkTypeCodeITXT)
	ChunkTypeBKGD = ChunkTypeFromBytes(spec.ChunkTypeCodeBKGD)
	ChunkTypeHIST = ChunkTypeFromBytes(spec.ChunkTypeCodeHIST)
	ChunkTypePHYS = ChunkTypeFromBytes(spec.ChunkTypeCodePHYS)
	ChunkTypeSPLT = ChunkTypeFromBytes(spec.ChunkTypeCodeSPLT)
	ChunkTypeTIME = ChunkTypeFromBytes(spec.ChunkTypeCodeTIME)
)

// StandardChunkTypes lists the chunk types defined by the PNG standard, critical chunks first
func StandardChunkTypes() []ChunkType {
	return []ChunkType{
		ChunkTypeIHDR, ChunkTypePLTE, ChunkTypeIDAT, ChunkTypeIEND,
		ChunkTypeTRNS, ChunkTypeCHRM, ChunkTypeGAMA, ChunkTypeICCP, ChunkTypeSBIT, ChunkTypeSRGB,
		ChunkTypeTEXT, ChunkTypeZTXT, ChunkTypeITXT, ChunkTypeBKGD, ChunkTypeHIST, ChunkTypePHYS,
		ChunkTypeSPLT, ChunkTypeTIME,
	}
}
