package rtx

import "errors"

var (
	// ErrBadSync means a frame's sync byte wasn't 0x5A where expected.
	ErrBadSync = errors.New("rtx: invalid frame sync byte")
	// ErrBadFrameVersion means a frame's version byte didn't match ProtocolVersion.
	ErrBadFrameVersion = errors.New("rtx: invalid frame protocol version")
	// ErrBadPacketVersion means a packet header's version byte didn't match ProtocolVersion.
	ErrBadPacketVersion = errors.New("rtx: invalid packet header version")
	// ErrMalformedLength means a packet header declared a length that
	// can't be reconciled with PacketHeaderSize or PacketMaxSize.
	ErrMalformedLength = errors.New("rtx: malformed packet length")
	// ErrSinkRefused means the Writer returned false partway through a packet.
	ErrSinkRefused = errors.New("rtx: sink refused a payload byte")
	// ErrTooManyErrors means the Reed-Solomon decoder could not locate
	// all the errors in a frame.
	ErrTooManyErrors = errors.New("rtx: uncorrectable frame errors")
)
