// Package transport provides the concrete byte-at-a-time collaborators
// (serial port, TCP socket) that satisfy rtx.Reader/rtx.Writer, plus a
// udev-based helper for finding which serial device to open.
package transport

/*-------------------------------------------------------------------
 *
 * Purpose: Serial port byte source/sink for the frame decoder, hiding
 *          operating-system differences the way the original serial
 *          port interface did.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"time"

	"github.com/pkg/term"

	"github.com/ahabus/rtxdecoder/rtx"
)

// DefaultReadTimeout is how long Serial.ReadByte waits for a byte before
// reporting rtx.ReadTimeout, matching the one-second receive deadline the
// reference implementation used for its socket transport.
const DefaultReadTimeout = time.Second

// Serial adapts a serial port opened via github.com/pkg/term into
// rtx.Reader and rtx.Writer. Reads are served from a background goroutine
// so a per-call timeout can be enforced without tearing down the
// underlying blocking read.
type Serial struct {
	fd      *term.Term
	timeout time.Duration
	bytes   chan byte
	errs    chan error
	closed  chan struct{}
}

// OpenSerial opens devicename (e.g. "/dev/ttyUSB0") at baud bits/second
// and returns a Serial ready to use as a frame byte source/sink.
func OpenSerial(devicename string, baud int) (*Serial, error) {
	fd, err := term.Open(devicename, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("transport: opening serial port %s: %w", devicename, err)
	}
	if baud != 0 {
		if err := fd.SetSpeed(baud); err != nil {
			fd.Close()
			return nil, fmt.Errorf("transport: setting speed %d on %s: %w", baud, devicename, err)
		}
	}

	s := &Serial{
		fd:      fd,
		timeout: DefaultReadTimeout,
		bytes:   make(chan byte),
		errs:    make(chan error, 1),
		closed:  make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

// SetReadTimeout changes how long ReadByte waits before reporting
// rtx.ReadTimeout.
func (s *Serial) SetReadTimeout(d time.Duration) { s.timeout = d }

func (s *Serial) pump() {
	buf := make([]byte, 1)
	for {
		n, err := s.fd.Read(buf)
		if n == 1 {
			select {
			case s.bytes <- buf[0]:
			case <-s.closed:
				return
			}
			continue
		}
		if err != nil {
			select {
			case s.errs <- err:
			case <-s.closed:
			}
			return
		}
	}
}

// ReadByte implements rtx.Reader.
func (s *Serial) ReadByte() (byte, rtx.ReadOutcome, error) {
	select {
	case b := <-s.bytes:
		return b, rtx.ReadOK, nil
	case err := <-s.errs:
		return 0, rtx.ReadEOF, err
	case <-time.After(s.timeout):
		return 0, rtx.ReadTimeout, nil
	}
}

// WriteByte implements rtx.Writer, for use when Serial carries the sink
// direction too (e.g. relaying raw frames back out for diagnostics).
func (s *Serial) WriteByte(b byte) bool {
	n, err := s.fd.Write([]byte{b})
	return n == 1 && err == nil
}

// Close releases the underlying serial port and stops the read pump.
func (s *Serial) Close() error {
	close(s.closed)
	return s.fd.Close()
}
