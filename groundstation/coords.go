// Package groundstation adapts a decoded packet's fix into the things a
// real ground station operator wants alongside it: a UTM reading, a
// distance estimate from the station's own location, a
// valid/invalid indicator, an auto-tuned rig, and an mDNS announcement of
// the live feed — extras the bare decoder has no opinion on.
package groundstation

import (
	"fmt"
	"math"

	"github.com/tzneal/coordconv"

	"github.com/ahabus/rtxdecoder/rtx"
)

func hemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	default:
		return '?'
	}
}

func degreesToRadians(d float64) float64 { return d * math.Pi / 180 }

// FormatFix renders a decoded packet's fix as decimal degrees alongside a
// UTM zone/easting/northing reading, falling back to decimal-only if the
// fix can't be converted (e.g. it falls outside the UTM projection's
// valid range).
func FormatFix(header rtx.PacketHeader) string {
	lat, lon := header.LatitudeDegrees(), header.LongitudeDegrees()

	latlng := s2LatLng(lat, lon)
	utmCoord, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
	if err != nil {
		return fmt.Sprintf("%.6f,%.6f alt=%dm", lat, lon, header.Altitude)
	}
	return fmt.Sprintf("%.6f,%.6f alt=%dm (UTM %d%c %.0fE %.0fN)",
		lat, lon, header.Altitude,
		utmCoord.Zone, hemisphereToRune(utmCoord.Hemisphere), utmCoord.Easting, utmCoord.Northing)
}
