package transport

/*-------------------------------------------------------------------
 *
 * Purpose: Find a USB-serial radio modem by vendor/product ID instead
 *          of requiring the operator to already know the /dev node.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"

	"github.com/jochenvg/go-udev"
)

// DiscoverSerial scans the tty subsystem for a USB-serial device whose
// ID_VENDOR_ID/ID_MODEL_ID udev properties match vendorID/productID
// (lowercase 4-hex-digit strings, e.g. "0403"/"6001" for an FTDI cable)
// and returns its device node path, e.g. "/dev/ttyUSB0".
func DiscoverSerial(vendorID, productID string) (string, error) {
	u := udev.Udev{}
	enum := u.NewEnumerate()
	if err := enum.AddMatchSubsystem("tty"); err != nil {
		return "", fmt.Errorf("transport: matching tty subsystem: %w", err)
	}

	devices, err := enum.Devices()
	if err != nil {
		return "", fmt.Errorf("transport: enumerating tty devices: %w", err)
	}

	for _, dev := range devices {
		if dev.PropertyValue("ID_VENDOR_ID") == vendorID && dev.PropertyValue("ID_MODEL_ID") == productID {
			node := dev.Devnode()
			if node != "" {
				return node, nil
			}
		}
	}
	return "", fmt.Errorf("transport: no serial device matched vendor %s product %s", vendorID, productID)
}
