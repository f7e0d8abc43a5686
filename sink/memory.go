package sink

import "github.com/ahabus/rtxdecoder/rtx"

// Memory records every packet handed to it, for use in tests and
// short-lived diagnostic sessions where file I/O isn't wanted.
type Memory struct {
	Packets []MemoryPacket
}

// MemoryPacket is one packet recorded by Memory.
type MemoryPacket struct {
	Header  rtx.PacketHeader
	Payload []byte
	Valid   bool
}

// Record appends header/payload/valid to Packets.
func (m *Memory) Record(header rtx.PacketHeader, payload []byte, valid bool) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.Packets = append(m.Packets, MemoryPacket{Header: header, Payload: stored, Valid: valid})
	return nil
}
