package sink

/*-------------------------------------------------------------------
 *
 * Purpose: Append-only CSV of every decoded fix, the equivalent of the
 *          original program's loc.csv.
 *
 *---------------------------------------------------------------*/

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ahabus/rtxdecoder/rtx"
)

// LocationLog appends one row per decoded fix to a CSV file: unix
// timestamp, latitude, longitude, altitude.
type LocationLog struct {
	path string
	now  func() time.Time
}

// NewLocationLog returns a LocationLog appending to path, creating it if
// it doesn't already exist.
func NewLocationLog(path string) *LocationLog {
	return &LocationLog{path: path, now: time.Now}
}

// Append writes one row for header's fix.
func (l *LocationLog) Append(header rtx.PacketHeader) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("sink: opening %s: %w", l.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	row := []string{
		strconv.FormatInt(l.now().Unix(), 10),
		strconv.FormatFloat(header.LatitudeDegrees(), 'f', 6, 64),
		strconv.FormatFloat(header.LongitudeDegrees(), 'f', 6, 64),
		strconv.FormatUint(uint64(header.Altitude), 10),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("sink: writing location row: %w", err)
	}
	return nil
}
