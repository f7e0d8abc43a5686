package rtx

// Frame is one fixed-size, Reed-Solomon protected unit on the wire.
type Frame [FrameSize]byte

// Version reports the frame's protocol version byte.
func (f *Frame) Version() byte { return f[1] }

// SequenceNumber reports the frame's 16-bit big-endian sequence number.
func (f *Frame) SequenceNumber() uint16 {
	return uint16(f[2])<<8 | uint16(f[3])
}

// waitForSync consumes bytes from r until it sees the two-byte preamble
// 0xAA 0x5A, or the stream ends. It mirrors a simple two-state scanner:
// state 0 is "looking for 0xAA", state 1 is "saw 0xAA, looking for 0x5A".
func waitForSync(r Reader) (found bool, err error) {
	const (
		stateIdle = iota
		stateSawPreamble
	)
	state := stateIdle
	for {
		b, outcome, rerr := r.ReadByte()
		switch outcome {
		case ReadTimeout:
			continue
		case ReadEOF:
			return false, nil
		}
		if rerr != nil {
			return false, rerr
		}
		switch state {
		case stateIdle:
			if b == frameSyncPreamble {
				state = stateSawPreamble
			}
		case stateSawPreamble:
			if b == frameSyncByte {
				return true, nil
			}
			if b != frameSyncPreamble {
				state = stateIdle
			}
		}
	}
}

// frameReadOutcome reports how much of a frame readFrame managed to fill.
type frameReadOutcome int

const (
	// frameComplete means every byte of the frame was read.
	frameComplete frameReadOutcome = iota
	// frameIncomplete means sync was found but the stream ended, or timed
	// out, partway through the frame body; a mid-frame timeout is treated
	// the same as end of stream for the current frame, since the downlink
	// has stalled and the in-progress frame can't be trusted. The
	// partially filled frame is returned with its remaining bytes left
	// zeroed.
	frameIncomplete
	// frameNone means the stream ended before sync was ever found.
	frameNone
)

// readFrame scans for sync and reads one full frame's worth of bytes.
func readFrame(r Reader) (*Frame, frameReadOutcome, error) {
	found, err := waitForSync(r)
	if err != nil {
		return nil, frameNone, err
	}
	if !found {
		return nil, frameNone, nil
	}

	var f Frame
	f[0] = frameSyncByte

	for i := 1; i < FrameSize; i++ {
		b, outcome, rerr := r.ReadByte()
		if rerr != nil {
			return &f, frameIncomplete, rerr
		}
		if outcome == ReadTimeout || outcome == ReadEOF {
			return &f, frameIncomplete, nil
		}
		f[i] = b
	}
	return &f, frameComplete, nil
}
