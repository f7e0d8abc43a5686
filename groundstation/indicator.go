package groundstation

/*-------------------------------------------------------------------
 *
 * Purpose: Drive a GPIO line (e.g. an LED on a Raspberry Pi ground
 *          station) to show valid/invalid packet completion at a glance.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// Indicator lights a GPIO line on valid packets and clears it on invalid
// ones.
type Indicator struct {
	line *gpiocdev.Line
}

// NewIndicator requests offset on chip (e.g. "gpiochip0") as an output,
// initially off.
func NewIndicator(chip string, offset int) (*Indicator, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("groundstation: requesting gpio line %s:%d: %w", chip, offset, err)
	}
	return &Indicator{line: line}, nil
}

// Show sets the indicator on for a valid packet, off otherwise.
func (i *Indicator) Show(valid bool) error {
	v := 0
	if valid {
		v = 1
	}
	if err := i.line.SetValue(v); err != nil {
		return fmt.Errorf("groundstation: setting gpio line value: %w", err)
	}
	return nil
}

// Close releases the underlying GPIO line.
func (i *Indicator) Close() error { return i.line.Close() }
