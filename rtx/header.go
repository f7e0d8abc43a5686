package rtx

// PacketHeader carries the metadata embedded at the start of the first
// frame of every packet.
type PacketHeader struct {
	PayloadID byte
	// Length is the packet's payload length in bytes, already adjusted
	// for PacketHeaderSize (see that constant's doc comment).
	Length    uint16
	Latitude  int32 // 1/10000 of a degree
	Longitude int32 // 1/10000 of a degree
	Altitude  uint16
}

func readUint16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func readInt32(b []byte) int32 {
	return int32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

func putUint16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

func putInt32(b []byte, v int32) {
	u := uint32(v)
	b[0] = byte(u >> 24)
	b[1] = byte(u >> 16)
	b[2] = byte(u >> 8)
	b[3] = byte(u)
}

// parsePacketHeader reads the physical packet header starting at frame
// offset FrameHeaderSize. It returns the index just past the header
// (where payload bytes begin) and an error if the header's own version
// byte doesn't match what this decoder understands.
func parsePacketHeader(f *Frame) (hdr PacketHeader, payloadStart int, err error) {
	idx := FrameHeaderSize
	if f[idx] != ProtocolVersion {
		return PacketHeader{}, 0, ErrBadPacketVersion
	}
	idx++

	hdr.PayloadID = f[idx]
	idx++

	hdr.Length = readUint16(f[idx : idx+2])
	idx += 2
	hdr.Latitude = readInt32(f[idx : idx+4])
	idx += 4
	hdr.Longitude = readInt32(f[idx : idx+4])
	idx += 4
	hdr.Altitude = readUint16(f[idx : idx+2])
	idx += 2

	if hdr.Length < PacketHeaderSize {
		return PacketHeader{}, 0, ErrMalformedLength
	}
	hdr.Length -= PacketHeaderSize

	return hdr, idx, nil
}

// LatitudeDegrees converts the header's fixed-point latitude to degrees.
func (h PacketHeader) LatitudeDegrees() float64 { return float64(h.Latitude) / 10000.0 }

// LongitudeDegrees converts the header's fixed-point longitude to degrees.
func (h PacketHeader) LongitudeDegrees() float64 { return float64(h.Longitude) / 10000.0 }
