package rtx

import "errors"

// ReadOutcome distinguishes a byte actually arriving from the two ways a
// read can fail to produce one: a transient timeout the caller should
// retry, and a permanent end of stream.
type ReadOutcome int

const (
	// ReadOK means b holds a valid byte.
	ReadOK ReadOutcome = iota
	// ReadTimeout means no byte was available before the collaborator's
	// own deadline; the caller should try again.
	ReadTimeout
	// ReadEOF means the underlying stream is closed and will never
	// produce another byte.
	ReadEOF
)

// Reader is the byte-at-a-time source a Coder pulls frame bytes from. It
// intentionally distinguishes a timeout from end of stream, the way a
// blocking socket read with a receive deadline does, so the decode loop
// can keep waiting on one and give up on the other.
type Reader interface {
	ReadByte() (b byte, outcome ReadOutcome, err error)
}

// Writer is the byte-at-a-time sink a Coder streams a packet's payload
// into as frames are reassembled. WriteByte reports false when the sink
// has no room left for the byte, at which point the packet is abandoned
// as malformed.
type Writer interface {
	WriteByte(b byte) bool
}

// ErrReadFailed is returned by the decode loop when its Reader produces a
// hard error rather than a clean ReadEOF.
var ErrReadFailed = errors.New("rtx: read failed")
