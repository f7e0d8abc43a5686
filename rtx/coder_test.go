package rtx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceReader serves frame bytes from an in-memory buffer and reports
// ReadEOF once exhausted; it never reports ReadTimeout.
type sliceReader struct {
	data []byte
	pos  int
}

func (r *sliceReader) ReadByte() (byte, ReadOutcome, error) {
	if r.pos >= len(r.data) {
		return 0, ReadEOF, nil
	}
	b := r.data[r.pos]
	r.pos++
	return b, ReadOK, nil
}

// memWriter accumulates payload bytes, refusing once it reaches cap (0
// means unlimited).
type memWriter struct {
	buf []byte
	cap int
}

func (w *memWriter) WriteByte(b byte) bool {
	if w.cap > 0 && len(w.buf) >= w.cap {
		return false
	}
	w.buf = append(w.buf, b)
	return true
}

func framesToBytes(frames []Frame) []byte {
	var out []byte
	for _, f := range frames {
		out = append(out, frameSyncPreamble)
		out = append(out, f[:]...)
	}
	return out
}

func Test_Coder_roundTripsASingleFramePacket(t *testing.T) {
	enc := NewEncoder()
	hdr := PacketHeader{PayloadID: 11, Latitude: 513456, Longitude: -21234, Altitude: 200}
	payload := []byte("hello downlink")
	frames := enc.EncodePacket(hdr, payload)
	require.Len(t, frames, 1)

	var got PacketHeader
	var gotValid bool
	w := &memWriter{}
	c := New(&sliceReader{data: framesToBytes(frames)}, w, func(h PacketHeader, valid bool) {
		got, gotValid = h, valid
	})

	require.NoError(t, c.Decode())

	assert.True(t, gotValid)
	assert.Equal(t, payload, w.buf)
	assert.Equal(t, hdr.PayloadID, got.PayloadID)
	assert.Equal(t, hdr.Latitude, got.Latitude)
	assert.Equal(t, hdr.Longitude, got.Longitude)
	assert.Equal(t, hdr.Altitude, got.Altitude)
	assert.Equal(t, uint16(len(payload)), got.Length)
}

func Test_Coder_roundTripsAMultiFramePacket(t *testing.T) {
	enc := NewEncoder()
	hdr := PacketHeader{PayloadID: 12}
	// The largest payload PacketMaxSize allows: 206 bytes in the first
	// frame, the remaining 202 in a continuation frame.
	payload := make([]byte, PacketMaxSize-PacketHeaderSize)
	for i := range payload {
		payload[i] = byte(i)
	}
	frames := enc.EncodePacket(hdr, payload)
	require.Len(t, frames, 2)

	var gotValid bool
	w := &memWriter{}
	c := New(&sliceReader{data: framesToBytes(frames)}, w, func(h PacketHeader, valid bool) {
		gotValid = valid
	})
	require.NoError(t, c.Decode())

	assert.True(t, gotValid)
	assert.Equal(t, payload, w.buf)
}

func Test_Coder_correctsBitErrorsViaFEC(t *testing.T) {
	enc := NewEncoder()
	hdr := PacketHeader{PayloadID: 20}
	payload := []byte("corrupted on the way down")
	frames := enc.EncodePacket(hdr, payload)
	require.Len(t, frames, 1)

	// Flip a handful of payload bytes within the RS-protected region.
	frames[0][10] ^= 0xFF
	frames[0][40] ^= 0x01

	var gotValid bool
	w := &memWriter{}
	c := New(&sliceReader{data: framesToBytes(frames)}, w, func(h PacketHeader, valid bool) {
		gotValid = valid
	})
	require.NoError(t, c.Decode())

	assert.True(t, gotValid)
	assert.Equal(t, payload, w.buf)
	assert.Greater(t, c.Stats.CorrectedBytes, uint64(0))
}

func Test_Coder_marksPacketInvalidAfterFrameLoss(t *testing.T) {
	enc := NewEncoder()
	hdr := PacketHeader{PayloadID: 20}
	payload := make([]byte, firstFramePayloadCap+continuationPayloadCap+10)
	frames := enc.EncodePacket(hdr, payload)
	require.Len(t, frames, 3)

	// Drop the middle frame to simulate a lost frame between two received ones.
	dropped := append(append([]Frame{}, frames[0]), frames[2])

	var gotValid bool
	var called bool
	w := &memWriter{}
	c := New(&sliceReader{data: framesToBytes(dropped)}, w, func(h PacketHeader, valid bool) {
		gotValid, called = valid, true
	})
	require.NoError(t, c.Decode())

	require.True(t, called)
	assert.False(t, gotValid)
}

func Test_Coder_abandonsPacketWhenSinkRefuses(t *testing.T) {
	enc := NewEncoder()
	hdr := PacketHeader{PayloadID: 30}
	payload := []byte("too much data for this sink")
	frames := enc.EncodePacket(hdr, payload)
	require.Len(t, frames, 1)

	var gotValid bool
	var called bool
	w := &memWriter{cap: 3}
	c := New(&sliceReader{data: framesToBytes(frames)}, w, func(h PacketHeader, valid bool) {
		gotValid, called = valid, true
	})
	require.NoError(t, c.Decode())

	require.True(t, called)
	assert.False(t, gotValid)
}

func Test_Coder_stopsCleanlyOnEOFBeforeAnyFrame(t *testing.T) {
	w := &memWriter{}
	called := false
	c := New(&sliceReader{}, w, func(h PacketHeader, valid bool) { called = true })
	assert.NoError(t, c.Decode())
	assert.False(t, called)
}

// onceTimeoutReader serves bytes from data, then reports a single
// ReadTimeout, then ReadEOF forever after.
type onceTimeoutReader struct {
	data     []byte
	pos      int
	timedOut bool
}

func (r *onceTimeoutReader) ReadByte() (byte, ReadOutcome, error) {
	if r.pos < len(r.data) {
		b := r.data[r.pos]
		r.pos++
		return b, ReadOK, nil
	}
	if !r.timedOut {
		r.timedOut = true
		return 0, ReadTimeout, nil
	}
	return 0, ReadEOF, nil
}

func Test_Coder_treatsMidFrameTimeoutAsIncompleteInvalidFrame(t *testing.T) {
	// Sync marker plus a valid frame version byte, then the stream stalls
	// partway through the frame body.
	data := []byte{0xAA, 0x5A, ProtocolVersion}

	var gotValid bool
	var called bool
	w := &memWriter{}
	c := New(&onceTimeoutReader{data: data}, w, func(h PacketHeader, valid bool) {
		gotValid, called = valid, true
	})

	require.NoError(t, c.Decode())

	require.True(t, called, "an incomplete frame's zero-padded header should still fail validation and complete a (failed) packet")
	assert.False(t, gotValid)
	assert.Greater(t, c.Stats.InvalidFrameBytes, uint64(0))
}

func Test_Coder_countsLostBytesEvenWhenTriggeringFrameIsInvalid(t *testing.T) {
	enc := NewEncoder()
	first := enc.EncodePacket(PacketHeader{PayloadID: 1}, []byte("a")) // sequence 0
	require.Len(t, first, 1)
	skipped := enc.EncodePacket(PacketHeader{PayloadID: 1}, []byte("b")) // sequence 1, dropped below
	require.Len(t, skipped, 1)
	third := enc.EncodePacket(PacketHeader{PayloadID: 1}, []byte("c")) // sequence 2
	require.Len(t, third, 1)

	// Corrupt the third frame beyond the code's correction radius so it
	// fails FEC on its own, independent of the sequence gap. The sync,
	// version and sequence bytes are left intact.
	for i := 0; i < 30; i++ {
		third[0][FrameHeaderSize+i] ^= 0xFF
	}

	data := append(append([]byte{}, framesToBytes(first)...), framesToBytes(third)...)
	w := &memWriter{}
	c := New(&sliceReader{data: data}, w, func(PacketHeader, bool) {})
	require.NoError(t, c.Decode())

	assert.Equal(t, uint64(FrameSize), c.Stats.ValidFrameBytes)
	// One frame's worth for the corrupted frame itself, plus one frame's
	// worth for the single lost frame the sequence gap implies, even
	// though the triggering frame was itself invalid.
	assert.Equal(t, uint64(FrameSize)*2, c.Stats.InvalidFrameBytes)
}
