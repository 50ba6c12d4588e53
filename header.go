package png

import (
	"fmt"
	"github.com/davejbax/go-png/internal/spec"
	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
	"io"
)

// ChunkHeaderSize is the number of bytes in an encoded [ChunkHeader]
const ChunkHeaderSize = 8

// ChunkHeader is the part of a chunk that precedes its data: a big endian length, counting only the data bytes, and
// the chunk type. The trailing CRC is not part of the header.
//
// PNG (3rd ed.) §5.3
type ChunkHeader struct {
	Length uint32
	Type   ChunkType
}

// chunkHeaderLayout is the wire layout of a [ChunkHeader], packed by [struc]
type chunkHeaderLayout struct {
	Length uint32 `struc:"uint32,big"`
	Type   [4]uint8
}

var _ io.WriterTo = &ChunkHeader{}

// WriteTo encodes the header. The chunk type is written verbatim, even if it would fail [ChunkType.Validate].
func (h *ChunkHeader) WriteTo(w io.Writer) (int64, error) {
	if h.Length > spec.MaxChunkLength {
		return 0, ErrChunkTooLarge
	}

	cw := counter.NewWriter(w)

	layout := &chunkHeaderLayout{
		Length: h.Length,
		Type:   h.Type.Bytes(),
	}

	if err := struc.Pack(cw, layout); err != nil {
		return cw.Count(), fmt.Errorf("could not pack chunk header: %w", err)
	}

	return cw.Count(), nil
}

// ReadChunkHeader decodes a header from r. The type bytes go through [ChunkTypeFromBytes] and are then validated, so
// an error wrapping a [*ValidationError] is returned for a type that is not made of ASCII letters.
func ReadChunkHeader(r io.Reader) (ChunkHeader, error) {
	var layout chunkHeaderLayout
	if err := struc.Unpack(r, &layout); err != nil {
		return ChunkHeader{}, fmt.Errorf("could not unpack chunk header: %w", err)
	}

	if layout.Length > spec.MaxChunkLength {
		return ChunkHeader{}, ErrChunkTooLarge
	}

	header := ChunkHeader{
		Length: layout.Length,
		Type:   ChunkTypeFromBytes(layout.Type),
	}

	if err := header.Type.Validate(); err != nil {
		return header, fmt.Errorf("chunk header has invalid type %s: %w", header.Type, err)
	}

	return header, nil
}
