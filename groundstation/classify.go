package groundstation

import "github.com/ahabus/rtxdecoder/rtx"

// Kind is how a completed packet's payloadID should be treated.
type Kind int

const (
	// KindSystem is payloadID 0, a plain-text status/system message.
	KindSystem Kind = iota
	// KindUnknown is any payloadID in [1, 10), reserved but not yet assigned.
	KindUnknown
	// KindPayload is any payloadID >= 10, a normal instrument payload packet.
	KindPayload
)

// Classify mirrors the original consumer's payloadID dispatch: 0 is a
// system message, >= 10 is a normal payload, anything else is unknown.
func Classify(header rtx.PacketHeader) Kind {
	switch {
	case header.PayloadID == 0:
		return KindSystem
	case header.PayloadID >= 10:
		return KindPayload
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindSystem:
		return "system"
	case KindPayload:
		return "payload"
	default:
		return "unknown"
	}
}
