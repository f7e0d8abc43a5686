package rs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func fx25RS() *Codec {
	return New(8, 0x11d, 1, 1, 32)
}

func Test_New_rejectsBadParameters(t *testing.T) {
	assert.Nil(t, New(9, 0x11d, 1, 1, 32), "symsize above 8 needs a wider symbol type")
	assert.Nil(t, New(8, 0x11d, 1, 0, 32), "prim must be nonzero")
	assert.Nil(t, New(8, 0x11d, 1, 1, 256), "can't have more roots than symbol values")
}

func Test_Decode_acceptsAnUnmodifiedCodeword(t *testing.T) {
	rs := fx25RS()
	require.NotNil(t, rs)

	data := make([]byte, 223)
	for i := range data {
		data[i] = byte(i)
	}
	parity := rs.Encode(data)

	block := append(append([]byte{}, data...), parity...)
	corrected := rs.Decode(block)

	assert.Equal(t, 0, corrected)
	assert.Equal(t, data, block[:223])
}

func Test_Decode_correctsScatteredErrors(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rs := fx25RS()
		data := make([]byte, 223)
		for i := range data {
			data[i] = rapid.Byte().Draw(t, "b")
		}
		parity := rs.Encode(data)
		block := append(append([]byte{}, data...), parity...)
		want := append([]byte{}, block...)

		errCount := rapid.IntRange(0, 16).Draw(t, "errCount")
		used := map[int]bool{}
		for i := 0; i < errCount; i++ {
			pos := rapid.IntRange(0, 254).Draw(t, "pos")
			if used[pos] {
				continue
			}
			used[pos] = true
			flip := rapid.IntRange(1, 255).Draw(t, "flip")
			block[pos] ^= byte(flip)
		}

		corrected := rs.Decode(block)

		assert.GreaterOrEqual(t, corrected, 0, "RS(255,223) should correct up to 16 symbol errors")
		assert.Equal(t, want, block)
	})
}

func Test_Decode_reportsUncorrectableBlocks(t *testing.T) {
	rs := fx25RS()
	data := make([]byte, 223)
	parity := rs.Encode(data)
	block := append(append([]byte{}, data...), parity...)

	// Flip more symbols than the code's 16-symbol correction radius allows.
	for i := 0; i < 30; i++ {
		block[i] ^= 0xFF
	}

	corrected := rs.Decode(block)
	assert.Equal(t, -1, corrected, "too many errors should be reported, not silently miscorrected")
}
