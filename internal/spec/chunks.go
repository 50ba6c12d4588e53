package spec

// Signature is the 8-byte sequence that begins every PNG datastream.
//
// PNG (3rd ed.) §5.2
var Signature = [8]uint8{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// MaxChunkLength is the largest value permitted in the length field of a chunk. The length is stored as a 4-byte
// unsigned integer, but is restricted to 2^31-1 so that it can be handled as a signed integer.
//
// PNG (3rd ed.) §5.3
const MaxChunkLength = 1<<31 - 1

// ChunkTypeSize is the number of bytes in a chunk type code.
const ChunkTypeSize = 4

// ChunkTypeCode is the raw 4-byte chunk type code as it appears in a chunk header, immediately after the length
// field. Each byte is restricted to the ASCII letters A-Z and a-z.
//
// PNG (3rd ed.) §5.4
type ChunkTypeCode [ChunkTypeSize]uint8

// CaseBit is bit 5 of a chunk type byte. In ASCII it distinguishes uppercase (clear) from lowercase (set) letters, and
// the PNG standard uses it to carry one property bit per byte.
const CaseBit = 0x20

// Byte positions of the four property bits within a [ChunkTypeCode].
//
// PNG (3rd ed.) §5.4
const (
	AncillaryBitByte  = 0
	PrivateBitByte    = 1
	ReservedBitByte   = 2
	SafeToCopyBitByte = 3
)

// CaseBitSet reports whether the property bit of b is set, i.e. whether b would be a lowercase letter.
func CaseBitSet(b uint8) bool {
	return b&CaseBit != 0
}

// IsASCIILetter reports whether b is one of A-Z or a-z. This is deliberately not locale-aware.
func IsASCIILetter(b uint8) bool {
	// Clearing the case bit folds a-z onto A-Z
	upper := b &^ CaseBit
	return upper >= 'A' && upper <= 'Z'
}

// Chunk type codes defined by the PNG standard.
//
// PNG (3rd ed.) §4.3
var (
	ChunkTypeCodeIHDR = ChunkTypeCode{'I', 'H', 'D', 'R'}
	ChunkTypeCodePLTE = ChunkTypeCode{'P', 'L', 'T', 'E'}
	ChunkTypeCodeIDAT = ChunkTypeCode{'I', 'D', 'A', 'T'}
	ChunkTypeCodeIEND = ChunkTypeCode{'I', 'E', 'N', 'D'}

	ChunkTypeCodeTRNS = ChunkTypeCode{'t', 'R', 'N', 'S'}
	ChunkTypeCodeCHRM = ChunkTypeCode{'c', 'H', 'R', 'M'}
	ChunkTypeCodeGAMA = ChunkTypeCode{'g', 'A', 'M', 'A'}
	ChunkTypeCodeICCP = ChunkTypeCode{'i', 'C', 'C', 'P'}
	ChunkTypeCodeSBIT = ChunkTypeCode{'s', 'B', 'I', 'T'}
	ChunkTypeCodeSRGB = ChunkTypeCode{'s', 'R', 'G', 'B'}
	ChunkTypeCodeTEXT = ChunkTypeCode{'t', 'E', 'X', 't'}
	ChunkTypeCodeZTXT = ChunkTypeCode{'z', 'T', 'X', 't'}
	ChunkTypeCodeITXT = ChunkTypeCode{'i', 'T', 'X', 't'}
	ChunkTypeCodeBKGD = ChunkTypeCode{'b', 'K', 'G', 'D'}
	ChunkTypeCodeHIST = ChunkTypeCode{'h', 'I', 'S', 'T'}
	ChunkTypeCodePHYS = ChunkTypeCode{'p', 'H', 'Y', 's'}
	ChunkTypeCodeSPLT = ChunkTypeCode{'s', 'P', 'L', 'T'}
	ChunkTypeCodeTIME = ChunkTypeCode{'t', 'I', 'M', 'E'}
)
