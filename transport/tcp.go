package transport

/*-------------------------------------------------------------------
 *
 * Purpose: TCP socket byte source/sink, the idiomatic equivalent of the
 *          original program's SO_RCVTIMEO loopback client: connect, set
 *          a one-second receive deadline, and treat a timed-out read as
 *          "try again" rather than end of stream.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ahabus/rtxdecoder/rtx"
)

// TCP adapts a net.Conn into rtx.Reader and rtx.Writer.
type TCP struct {
	conn    net.Conn
	timeout time.Duration
}

// DialTCP connects to addr (host:port) and returns a TCP transport with
// DefaultReadTimeout as its receive deadline.
func DialTCP(addr string) (*TCP, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: dialing %s: %w", addr, err)
	}
	return &TCP{conn: conn, timeout: DefaultReadTimeout}, nil
}

// SetReadTimeout changes how long ReadByte waits before reporting
// rtx.ReadTimeout.
func (t *TCP) SetReadTimeout(d time.Duration) { t.timeout = d }

// ReadByte implements rtx.Reader, distinguishing a deadline timeout
// (rtx.ReadTimeout, keep going) from any other error (rtx.ReadEOF, stop).
func (t *TCP) ReadByte() (byte, rtx.ReadOutcome, error) {
	if err := t.conn.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
		return 0, rtx.ReadEOF, fmt.Errorf("transport: setting read deadline: %w", err)
	}
	var buf [1]byte
	n, err := t.conn.Read(buf[:])
	if n == 1 {
		return buf[0], rtx.ReadOK, nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return 0, rtx.ReadTimeout, nil
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return 0, rtx.ReadTimeout, nil
	}
	return 0, rtx.ReadEOF, err
}

// WriteByte implements rtx.Writer.
func (t *TCP) WriteByte(b byte) bool {
	n, err := t.conn.Write([]byte{b})
	return n == 1 && err == nil
}

// Close closes the underlying connection.
func (t *TCP) Close() error { return t.conn.Close() }
