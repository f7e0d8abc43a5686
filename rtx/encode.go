package rtx

// Encoder builds RS(255,223)-protected frames from packet data. No
// encoder was available in the material this decoder is grounded on;
// this one exists solely so tests can exercise the round-trip law
// (encode then decode recovers the original packet) without a real
// transmitter. It is not meant as a production encoder.
type Encoder struct {
	seq uint16
}

// NewEncoder returns an Encoder whose first frame carries sequence
// number 0.
func NewEncoder() *Encoder { return &Encoder{seq: 0} }

// EncodePacket splits payload into as many frames as needed to carry a
// header (hdr.Length is overwritten with len(payload)) followed by
// payload, and returns them in transmission order with valid
// Reed-Solomon parity already computed.
func (e *Encoder) EncodePacket(hdr PacketHeader, payload []byte) []Frame {
	hdr.Length = uint16(len(payload))
	wireLength := hdr.Length + PacketHeaderSize

	var frames []Frame
	remaining := payload

	first := e.newFrame()
	idx := FrameHeaderSize
	first[idx] = ProtocolVersion
	idx++
	first[idx] = hdr.PayloadID
	idx++
	putUint16(first[idx:idx+2], wireLength)
	idx += 2
	putInt32(first[idx:idx+4], hdr.Latitude)
	idx += 4
	putInt32(first[idx:idx+4], hdr.Longitude)
	idx += 4
	putUint16(first[idx:idx+2], hdr.Altitude)
	idx += 2

	n := copy(first[idx:FrameDataSize], remaining)
	remaining = remaining[n:]
	e.sealFrame(&first)
	frames = append(frames, first)

	for len(remaining) > 0 {
		f := e.newFrame()
		n := copy(f[FrameHeaderSize:FrameDataSize], remaining)
		remaining = remaining[n:]
		e.sealFrame(&f)
		frames = append(frames, f)
	}

	return frames
}

func (e *Encoder) newFrame() Frame {
	var f Frame
	f[0] = frameSyncByte
	f[1] = ProtocolVersion
	putUint16(f[2:4], e.seq)
	e.seq++
	return f
}

// sealFrame computes and appends the RS(255,223) parity for frame bytes
// [1, FrameDataSize) into [FrameDataSize, FrameSize).
func (e *Encoder) sealFrame(f *Frame) {
	data := f[1:FrameDataSize]
	parity := rs8.Encode(data)
	copy(f[FrameDataSize:FrameSize], parity)
}
