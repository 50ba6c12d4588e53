package spec_test

import (
	"fmt"
	"github.com/davejbax/go-png/internal/spec"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsASCIILetter(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := uint8(i)
		expected := (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
		assert.Equal(t, expected, spec.IsASCIILetter(b), "IsASCIILetter(0x%02x) should match the ASCII letter ranges", b)
	}
}

func TestCaseBitSet(t *testing.T) {
	for b := uint8('A'); b <= 'Z'; b++ {
		t.Run(fmt.Sprintf("%c", b), func(t *testing.T) {
			assert.False(t, spec.CaseBitSet(b), "CaseBitSet should be false for uppercase letters")
			assert.True(t, spec.CaseBitSet(b|spec.CaseBit), "CaseBitSet should be true for lowercase letters")
		})
	}
}
