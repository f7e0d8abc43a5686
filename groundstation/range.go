package groundstation

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/ahabus/rtxdecoder/rtx"
)

func s2LatLng(latDegrees, lonDegrees float64) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(degreesToRadians(latDegrees)),
		Lng: s1.Angle(degreesToRadians(lonDegrees)),
	}
}

// earthRadiusMeters is the mean Earth radius used to turn s2's angular
// distance into a ground-range estimate in meters.
const earthRadiusMeters = 6371008.8

// Station is a fixed ground-station location used to estimate ground
// range to decoded fixes; the fix's altitude is not taken into account.
type Station struct {
	LatitudeDegrees  float64
	LongitudeDegrees float64
}

// Range returns the great-circle distance, in meters, from the station
// to a decoded packet's fix.
func (s Station) Range(header rtx.PacketHeader) float64 {
	station := s2LatLng(s.LatitudeDegrees, s.LongitudeDegrees)
	fix := s2LatLng(header.LatitudeDegrees(), header.LongitudeDegrees())
	angle := station.Distance(fix)
	return float64(angle) * earthRadiusMeters
}
