package rtx

import "github.com/ahabus/rtxdecoder/rtx/internal/rs"

// rs8 is the single RS(255,223) codec shared by every Coder: symsize=8,
// primitive field polynomial 0x11d, first consecutive root 1, primitive
// element 1, 32 parity roots. These parameters match Dire Wolf's own
// FX.25 RS(255,223) configuration.
var rs8 = rs.New(8, 0x11d, 1, 1, 32)

// validateFEC runs Reed-Solomon error correction over frame bytes
// [1, FrameSize) in place, returning the number of symbols corrected, or
// an error if the frame has more errors than the code can locate.
func validateFEC(f *Frame) (corrected int, err error) {
	block := f[1:FrameSize]
	n := rs8.Decode(block)
	if n < 0 {
		return 0, ErrTooManyErrors
	}
	return n, nil
}

// validateFrame checks the two frame-level fields that don't depend on
// FEC having already run: the sync byte and the protocol version.
func validateFrame(f *Frame) error {
	if f[0] != frameSyncByte {
		return ErrBadSync
	}
	if f[1] != ProtocolVersion {
		return ErrBadFrameVersion
	}
	return nil
}
