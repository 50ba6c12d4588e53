package png_test

import (
	"bytes"
	"github.com/davejbax/go-png"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestChunkHeader_WriteTo(t *testing.T) {
	cases := []struct {
		header   png.ChunkHeader
		expected [8]byte
	}{
		{png.ChunkHeader{Length: 13, Type: png.ChunkTypeIHDR}, [8]byte{0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R'}},
		{png.ChunkHeader{Length: 0, Type: png.ChunkTypeIEND}, [8]byte{0x00, 0x00, 0x00, 0x00, 'I', 'E', 'N', 'D'}},
		{png.ChunkHeader{Length: 0x12345678, Type: png.MustParseChunkType("RuSt")}, [8]byte{0x12, 0x34, 0x56, 0x78, 82, 117, 83, 116}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.header.Type.String(), func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			written, err := c.header.WriteTo(&buff)

			require.NoError(t, err, "WriteTo should not return an error for a valid header")
			assert.EqualValues(t, png.ChunkHeaderSize, written, "WriteTo should report writing the whole header")
			assert.Equal(t, c.expected[:], buff.Bytes(), "WriteTo should write a big endian length followed by the type")
		})
	}
}

func TestChunkHeader_WriteTo_TooLarge(t *testing.T) {
	header := png.ChunkHeader{Length: 0x80000000, Type: png.ChunkTypeIDAT}

	var buff bytes.Buffer
	written, err := header.WriteTo(&buff)

	assert.ErrorIs(t, err, png.ErrChunkTooLarge, "WriteTo should reject lengths over 2^31-1")
	assert.EqualValues(t, 0, written, "WriteTo should not write anything for an invalid header")
	assert.Zero(t, buff.Len(), "WriteTo should not write anything for an invalid header")
}

func TestReadChunkHeader(t *testing.T) {
	input := bytes.NewReader([]byte{0x00, 0x00, 0x20, 0x00, 'I', 'D', 'A', 'T', 0xAA})

	header, err := png.ReadChunkHeader(input)
	require.NoError(t, err, "ReadChunkHeader should not return an error for a valid header")

	assert.EqualValues(t, 0x2000, header.Length, "ReadChunkHeader should decode a big endian length")
	assert.Equal(t, png.ChunkTypeIDAT, header.Type, "ReadChunkHeader should decode the chunk type")
	assert.Equal(t, 1, input.Len(), "ReadChunkHeader should only consume the header")
}

func TestReadChunkHeader_RoundTrip(t *testing.T) {
	original := png.ChunkHeader{Length: 42, Type: png.MustParseChunkType("prVt")}

	var buff bytes.Buffer
	_, err := original.WriteTo(&buff)
	require.NoError(t, err, "WriteTo should not return an error for a valid header")

	decoded, err := png.ReadChunkHeader(&buff)
	require.NoError(t, err, "ReadChunkHeader should not return an error for a header written by WriteTo")
	assert.Equal(t, original, decoded, "header should survive a write and read")
}

func TestReadChunkHeader_InvalidType(t *testing.T) {
	header, err := png.ReadChunkHeader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x01, 'R', 'u', '1', 't'}))

	assert.ErrorIs(t, err, png.ErrInvalidCharacter, "ReadChunkHeader should reject chunk types that are not letters")
	assert.Equal(t, [4]byte{'R', 'u', '1', 't'}, header.Type.Bytes(), "ReadChunkHeader should still return the raw type")
}

func TestReadChunkHeader_TooLarge(t *testing.T) {
	_, err := png.ReadChunkHeader(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 'I', 'D', 'A', 'T'}))
	assert.ErrorIs(t, err, png.ErrChunkTooLarge, "ReadChunkHeader should reject lengths over 2^31-1")
}

func TestReadChunkHeader_Truncated(t *testing.T) {
	_, err := png.ReadChunkHeader(bytes.NewReader([]byte{0x00, 0x00, 0x00}))
	assert.Error(t, err, "ReadChunkHeader should return an error for a truncated header")
}
