package groundstation

/*-------------------------------------------------------------------
 *
 * Purpose: Auto-tune the receiver to the downlink frequency via Hamlib
 *          before the decode loop starts, the Go-native equivalent of
 *          the original program's own Hamlib rig control integration.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"

	hamlib "github.com/xylo04/goHamlib"
)

// Rig wraps a Hamlib-controlled receiver.
type Rig struct {
	rig *hamlib.Rig
}

// OpenRig opens the rig identified by Hamlib model number rigModel on
// port (e.g. "/dev/ttyUSB1" or "localhost:4532" for rigctld).
func OpenRig(rigModel int, port string) (*Rig, error) {
	r := hamlib.NewRig(rigModel)
	if err := r.Open(port); err != nil {
		return nil, fmt.Errorf("groundstation: opening rig model %d on %s: %w", rigModel, port, err)
	}
	return &Rig{rig: r}, nil
}

// TuneTo sets the rig's current VFO to freqHz.
func (r *Rig) TuneTo(freqHz float64) error {
	if err := r.rig.SetFreq(hamlib.VFOCurr, freqHz); err != nil {
		return fmt.Errorf("groundstation: tuning rig to %.0fHz: %w", freqHz, err)
	}
	return nil
}

// Close releases the rig connection.
func (r *Rig) Close() error { return r.rig.Close() }
