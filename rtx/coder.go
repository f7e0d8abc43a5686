package rtx

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Callback is invoked once per completed packet, whether or not it was
// fully valid.
type Callback func(header PacketHeader, valid bool)

// Option configures a Coder at construction time.
type Option func(*Coder)

// WithLogger attaches a structured logger a Coder uses to report frame
// sync, loss and validity events. Decoding proceeds silently if none is
// given.
func WithLogger(logger *log.Logger) Option {
	return func(c *Coder) { c.log = logger }
}

// Coder pulls frames from a Reader, corrects and validates them, and
// reassembles their payloads into packets delivered through a Writer and
// a Callback.
type Coder struct {
	reader   Reader
	writer   Writer
	callback Callback
	log      *log.Logger

	seq   sequenceTracker
	reasm *reassembler

	Stats Stats
}

// New builds a Coder reading frames from r, streaming each packet's
// payload into w, and invoking cb once per completed packet.
func New(r Reader, w Writer, cb Callback, opts ...Option) *Coder {
	c := &Coder{
		writer:   w,
		callback: cb,
		seq:      newSequenceTracker(),
		reasm:    newReassembler(),
	}
	c.reader = &countingReader{r: r, stats: &c.Stats}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// countingReader wraps a Reader so every byte it successfully produces is
// tallied in Stats.ReceivedBytes, mirroring the original decoder's habit
// of counting every byte pulled off the wire, sync scanning included.
type countingReader struct {
	r     Reader
	stats *Stats
}

func (c *countingReader) ReadByte() (byte, ReadOutcome, error) {
	b, outcome, err := c.r.ReadByte()
	if outcome == ReadOK && err == nil {
		c.stats.recordRead()
	}
	return b, outcome, err
}

// Decode runs the decode loop until the Reader reports end of stream or
// returns a hard error. It blocks on each frame in turn; cancellation is
// the Reader's own responsibility, by returning ReadEOF.
func (c *Coder) Decode() error {
	for {
		f, outcome, err := readFrame(c.reader)
		if err != nil {
			return fmt.Errorf("%w: reading frame: %w", ErrReadFailed, err)
		}
		if outcome == frameNone {
			return nil
		}
		if outcome == frameIncomplete {
			c.logf("incomplete frame detected")
		}

		corrected, fecErr := validateFEC(f)
		valid := fecErr == nil
		if fecErr != nil {
			c.logf("too many byte errors")
		}
		if verr := validateFrame(f); verr != nil {
			valid = false
		}

		lost := c.seq.observe(f.SequenceNumber())
		if lost > 0 {
			c.logf("lost %d frames", lost)
			c.Stats.recordLoss(lost)
			if valid {
				c.reasm.accountForLoss(lost)
			}
		}

		done, header, pvalid := c.reasm.feed(f, valid, c.writer)

		c.Stats.recordFrame(valid)
		c.Stats.recordCorrected(corrected)

		if done && c.callback != nil {
			c.callback(header, pvalid)
		}
	}
}

func (c *Coder) logf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.Debugf(format, args...)
}
