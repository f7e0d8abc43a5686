// Package sink provides packet consumers that play the role the original
// program's parser.c played for a downlink decoder: a human-readable dump
// per packet, a binary payload log, and a CSV of every decoded fix.
package sink

/*-------------------------------------------------------------------
 *
 * Purpose: Dump a decoded packet's header and hex/ASCII payload to a
 *          log file per payloadID and validity, and write the raw payload
 *          bytes to a timestamped per-payloadID binary file when the
 *          packet was valid.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode"

	"github.com/lestrrat-go/strftime"

	"github.com/ahabus/rtxdecoder/rtx"
)

const hexdumpCols = 16

// FileSink appends each packet's text dump to a log under Dir named by
// payloadID and validity (payload-0xNN-good.log or payload-0xNN-bad.log)
// and, for valid packets, writes the payload bytes to a binary file named
// by payloadID and TimestampFormat (payload-0xNN-<timestamp>.bin).
type FileSink struct {
	Dir string
	// TimestampFormat is an strftime pattern used for the timestamp
	// embedded in each binary dump's filename.
	TimestampFormat string

	now func() time.Time
}

// NewFileSink returns a FileSink writing under dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{
		Dir:             dir,
		TimestampFormat: "%Y%m%dT%H%M%S",
		now:             time.Now,
	}
}

// Record writes the text dump for header/payload, and appends to the
// binary log only when valid is true.
func (s *FileSink) Record(header rtx.PacketHeader, payload []byte, valid bool) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("sink: creating %s: %w", s.Dir, err)
	}

	status := "bad"
	if valid {
		status = "good"
	}
	txtName := filepath.Join(s.Dir, fmt.Sprintf("payload-0x%02x-%s.log", header.PayloadID, status))
	txt, err := os.OpenFile(txtName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("sink: opening %s: %w", txtName, err)
	}
	defer txt.Close()
	printPacket(txt, header, payload, s.now())

	if !valid {
		return nil
	}

	pattern, err := strftime.New(s.TimestampFormat)
	if err != nil {
		return fmt.Errorf("sink: parsing dump timestamp pattern: %w", err)
	}
	timestamp := pattern.FormatString(s.now())
	binName := filepath.Join(s.Dir, fmt.Sprintf("payload-0x%02x-%s.bin", header.PayloadID, timestamp))
	bin, err := os.OpenFile(binName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("sink: opening %s: %w", binName, err)
	}
	defer bin.Close()
	_, err = bin.Write(payload)
	return err
}

func printPacket(w *os.File, header rtx.PacketHeader, payload []byte, now time.Time) {
	fmt.Fprintf(w, "\n///// PACKET START /////\n")
	fmt.Fprintf(w, "rx time:   %d\n", now.Unix())
	fmt.Fprintf(w, "latitude:  %f\n", header.LatitudeDegrees())
	fmt.Fprintf(w, "longitude: %f\n", header.LongitudeDegrees())
	fmt.Fprintf(w, "altitude:  %dm\n", header.Altitude)
	fmt.Fprintf(w, "payload:   %d\n", header.PayloadID)
	fmt.Fprintf(w, "length:    %d bytes\n", header.Length)
	fmt.Fprintf(w, "======\n")
	hexdump(w, payload)
	fmt.Fprintf(w, "\n////// PACKET END //////\n")
}

func hexdump(w *os.File, data []byte) {
	for i := 0; i < len(data); i += hexdumpCols {
		end := min(i+hexdumpCols, len(data))
		line := data[i:end]

		fmt.Fprintf(w, "%04x: ", i)
		for _, b := range line {
			fmt.Fprintf(w, "%02x ", b)
		}
		for j := len(line); j < hexdumpCols; j++ {
			fmt.Fprint(w, "   ")
		}
		fmt.Fprint(w, "       ")
		for _, b := range line {
			c := '.'
			if unicode.IsPrint(rune(b)) {
				c = rune(b)
			}
			fmt.Fprintf(w, "%c", c)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "-------\n> ")
	for _, b := range data {
		if b == '\n' {
			fmt.Fprint(w, "\n> ")
			continue
		}
		if !unicode.IsPrint(rune(b)) {
			continue
		}
		fmt.Fprintf(w, "%c", b)
	}
	fmt.Fprintln(w)
}
