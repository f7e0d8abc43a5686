package rtx

// Stats accumulates byte-level counters across the lifetime of a Coder.
// Unlike the original implementation this mirrors, these counters are
// fields on the Coder rather than process-wide globals, so more than one
// Coder can run concurrently without sharing state.
type Stats struct {
	// ReceivedBytes counts every byte successfully pulled from the Reader.
	ReceivedBytes uint64
	// ValidFrameBytes counts FrameSize bytes for every frame judged valid.
	ValidFrameBytes uint64
	// InvalidFrameBytes counts FrameSize bytes for every frame judged
	// invalid, plus FrameSize bytes for every frame a sequence gap says
	// was lost entirely.
	InvalidFrameBytes uint64
	// CorrectedBytes counts the total number of symbols Reed-Solomon
	// correction has repaired across all frames.
	CorrectedBytes uint64
}

func (s *Stats) recordRead() { s.ReceivedBytes++ }

func (s *Stats) recordFrame(valid bool) {
	if valid {
		s.ValidFrameBytes += FrameSize
	} else {
		s.InvalidFrameBytes += FrameSize
	}
}

func (s *Stats) recordLoss(lost uint16) {
	s.InvalidFrameBytes += uint64(FrameSize) * uint64(lost)
}

func (s *Stats) recordCorrected(n int) {
	if n > 0 {
		s.CorrectedBytes += uint64(n)
	}
}
