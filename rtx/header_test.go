package rtx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Locks in the resolved frame layout documented in DESIGN.md: the
// physical packet header occupies 14 bytes (frame offsets 4..17), even
// though PacketHeaderSize (12) is only used to adjust the wire length
// field, and payload streaming for the first frame starts at offset 18.
func Test_parsePacketHeader_usesFourteenByteLayout(t *testing.T) {
	var f Frame
	f[0] = frameSyncByte
	f[1] = ProtocolVersion
	idx := FrameHeaderSize
	f[idx] = ProtocolVersion
	idx++
	f[idx] = 42 // payloadID
	idx++
	putUint16(f[idx:idx+2], 100+PacketHeaderSize)
	idx += 2
	putInt32(f[idx:idx+4], -1234)
	idx += 4
	putInt32(f[idx:idx+4], 5678)
	idx += 4
	putUint16(f[idx:idx+2], 9000)
	idx += 2
	require.Equal(t, 18, idx)

	hdr, payloadStart, err := parsePacketHeader(&f)
	require.NoError(t, err)

	assert.Equal(t, 18, payloadStart)
	assert.Equal(t, byte(42), hdr.PayloadID)
	assert.Equal(t, uint16(100), hdr.Length)
	assert.Equal(t, int32(-1234), hdr.Latitude)
	assert.Equal(t, int32(5678), hdr.Longitude)
	assert.Equal(t, uint16(9000), hdr.Altitude)
}

func Test_parsePacketHeader_capacitiesMatchResolvedLayout(t *testing.T) {
	assert.Equal(t, 206, firstFramePayloadCap)
	assert.Equal(t, 220, continuationPayloadCap)
	assert.Equal(t, 252, lostFrameByteCost)
}
