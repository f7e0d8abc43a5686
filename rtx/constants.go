package rtx

const (
	// ProtocolVersion is the only frame/packet header version this
	// decoder understands.
	ProtocolVersion = 0x01

	// FrameSize is the fixed size, in bytes, of every frame on the wire:
	// sync, version, sequence, payload and Reed-Solomon parity combined.
	FrameSize = 256

	// FrameHeaderSize is the number of leading frame bytes consumed by
	// sync (1), version (1) and sequence number (2), before either a
	// packet header or packet-continuation payload begins.
	FrameHeaderSize = 4

	// FrameDataSize is the boundary, in bytes, between the frame's
	// protected data (sync through payload) and its trailing
	// Reed-Solomon parity symbols. Frame bytes [0, FrameDataSize) carry
	// data; frame bytes [FrameDataSize, FrameSize) carry the 32 parity
	// symbols of the RS(255,223) code applied to frame bytes [1, FrameSize).
	FrameDataSize = 224

	// frameSyncByte is the single byte that, preceded by 0xAA, marks the
	// start of a frame on the wire.
	frameSyncByte = 0x5A
	// frameSyncPreamble precedes frameSyncByte in the bit stream.
	frameSyncPreamble = 0xAA

	// PacketHeaderSize is subtracted from the wire "length" field of a
	// packet header to turn a total-packet-size-including-header count
	// into a payload-only byte count. It does not describe how many
	// bytes of the frame the physical packet header actually occupies —
	// see PhysicalHeaderSize for that. This mismatch (12 vs. 14) is a
	// preserved quirk of the wire format, not a bug.
	PacketHeaderSize = 12

	// PhysicalHeaderSize is the number of bytes the packet header
	// actually occupies at the start of the first frame of a packet:
	// version(1) + payloadID(1) + length(2) + latitude(4) + longitude(4)
	// + altitude(2).
	PhysicalHeaderSize = 14

	// PacketMaxSize is the default ceiling on a packet's declared total
	// size (header included). A decoded length field greater than this
	// is treated as malformed.
	PacketMaxSize = 420

	// firstFramePayloadCap is how many payload bytes the first frame of
	// a packet can carry, after its physical header: FrameDataSize -
	// FrameHeaderSize - PhysicalHeaderSize.
	firstFramePayloadCap = FrameDataSize - FrameHeaderSize - PhysicalHeaderSize

	// continuationPayloadCap is how many payload bytes a continuation
	// frame can carry: FrameDataSize - FrameHeaderSize.
	continuationPayloadCap = FrameDataSize - FrameHeaderSize

	// lostFrameByteCost is the number of bytes assumed lost per dropped
	// frame when adjusting the outstanding payload count after a
	// sequence gap. It is FrameSize-FrameHeaderSize, not
	// continuationPayloadCap: a deliberately preserved quirk of the
	// original loss-adaptation arithmetic.
	lostFrameByteCost = FrameSize - FrameHeaderSize

	// initialSequenceNumber is what a freshly constructed Coder reports
	// as its last-seen sequence number, chosen so a first frame carrying
	// sequence number 0 does not look like a loss.
	initialSequenceNumber = 0xFFFF
)
