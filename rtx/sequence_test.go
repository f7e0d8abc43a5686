package rtx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_sequenceTracker_noGapOnConsecutiveFrames(t *testing.T) {
	s := newSequenceTracker()
	assert.Equal(t, uint16(0), s.observe(0))
	assert.Equal(t, uint16(0), s.observe(1))
	assert.Equal(t, uint16(0), s.observe(2))
}

func Test_sequenceTracker_reportsGap(t *testing.T) {
	s := newSequenceTracker()
	s.observe(10)
	assert.Equal(t, uint16(4), s.observe(15))
}

func Test_sequenceTracker_wrapsAt65536(t *testing.T) {
	s := newSequenceTracker()
	s.observe(65534)
	assert.Equal(t, uint16(0), s.observe(65535))
	assert.Equal(t, uint16(0), s.observe(0))
}
