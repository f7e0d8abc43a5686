/*------------------------------------------------------------------
 *
 * Purpose:	Ground station front end: attach to a downlink transport,
 *		decode its frame/packet stream, and dump completed packets.
 *
 *---------------------------------------------------------------*/
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/ahabus/rtxdecoder/config"
	"github.com/ahabus/rtxdecoder/groundstation"
	"github.com/ahabus/rtxdecoder/rtx"
	"github.com/ahabus/rtxdecoder/sink"
	"github.com/ahabus/rtxdecoder/transport"
)

func main() {
	configPath := pflag.StringP("config", "c", "station.yaml", "Ground station configuration file.")
	verbose := pflag.BoolP("verbose", "v", false, "Log frame-level decode events.")
	help := pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - decode a Reed-Solomon protected downlink frame stream\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nUsage: %s [OPTIONS]\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	logger := log.New(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading configuration", "err", err)
	}

	reader, writer, closeTransport, err := openTransport(cfg.Transport)
	if err != nil {
		logger.Fatal("opening transport", "err", err)
	}
	defer closeTransport()

	var station *groundstation.Station
	if cfg.Station.LatitudeDegrees != 0 || cfg.Station.LongitudeDegrees != 0 {
		s := groundstation.Station{
			LatitudeDegrees:  cfg.Station.LatitudeDegrees,
			LongitudeDegrees: cfg.Station.LongitudeDegrees,
		}
		station = &s
	}

	var announcer *groundstation.Announcer
	if cfg.Relay.Enabled {
		announcer, err = groundstation.Announce(cfg.Relay.Name, cfg.Relay.Port)
		if err != nil {
			logger.Error("mDNS announce failed", "err", err)
		} else {
			defer announcer.Stop()
		}
	}

	var indicator *groundstation.Indicator
	if cfg.Indicator.Enabled {
		indicator, err = groundstation.NewIndicator(cfg.Indicator.Chip, cfg.Indicator.Offset)
		if err != nil {
			logger.Error("gpio indicator unavailable", "err", err)
		} else {
			defer indicator.Close()
		}
	}

	if cfg.Rig.Enabled {
		rig, err := groundstation.OpenRig(cfg.Rig.Model, cfg.Rig.Port)
		if err != nil {
			logger.Error("rig control unavailable", "err", err)
		} else {
			defer rig.Close()
			if err := rig.TuneTo(cfg.Rig.FreqHz); err != nil {
				logger.Error("tuning rig", "err", err)
			}
		}
	}

	dumpDir := cfg.DumpDir
	if dumpDir == "" {
		dumpDir = "."
	}
	fileSink := sink.NewFileSink(dumpDir)

	locationPath := cfg.LocationLog
	if locationPath == "" {
		locationPath = "loc.csv"
	}
	locationLog := sink.NewLocationLog(locationPath)

	payload := &payloadWriter{}
	coder := rtx.New(reader, payload, func(header rtx.PacketHeader, valid bool) {
		kind := groundstation.Classify(header)
		logger.Infof("decoded %s %s packet (payloadID=0x%02x)", validLabel(valid), kind, header.PayloadID)
		logger.Info(groundstation.FormatFix(header))
		if station != nil {
			logger.Infof("range from station: %.0fm", station.Range(header))
		}

		if err := fileSink.Record(header, payload.bytes, valid); err != nil {
			logger.Error("writing packet dump", "err", err)
		}
		if err := locationLog.Append(header); err != nil {
			logger.Error("writing location log", "err", err)
		}
		if indicator != nil {
			if err := indicator.Show(valid); err != nil {
				logger.Error("updating indicator", "err", err)
			}
		}
		payload.reset()
	}, rtx.WithLogger(logger))

	_ = writer // reserved for transports that also need an explicit write-direction handle

	if err := coder.Decode(); err != nil {
		logger.Fatal("decode loop ended", "err", err)
	}

	logger.Infof("stream ended: %d bytes received, %d valid, %d invalid, %d corrected",
		coder.Stats.ReceivedBytes, coder.Stats.ValidFrameBytes, coder.Stats.InvalidFrameBytes, coder.Stats.CorrectedBytes)
}

func validLabel(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

// payloadWriter accumulates one packet's payload bytes as rtx streams
// them in, refusing once it reaches PacketMaxSize.
type payloadWriter struct {
	bytes []byte
}

func (p *payloadWriter) WriteByte(b byte) bool {
	if len(p.bytes) >= rtx.PacketMaxSize {
		return false
	}
	p.bytes = append(p.bytes, b)
	return true
}

func (p *payloadWriter) reset() { p.bytes = p.bytes[:0] }

func openTransport(cfg config.Transport) (rtx.Reader, rtx.Writer, func(), error) {
	switch cfg.Kind {
	case "tcp":
		t, err := transport.DialTCP(cfg.Address)
		if err != nil {
			return nil, nil, nil, err
		}
		return t, t, func() { t.Close() }, nil
	case "serial", "":
		device := cfg.Device
		if cfg.Discover.Enabled {
			found, err := transport.DiscoverSerial(cfg.Discover.VendorID, cfg.Discover.ProductID)
			if err != nil {
				return nil, nil, nil, err
			}
			device = found
		}
		t, err := transport.OpenSerial(device, cfg.Baud)
		if err != nil {
			return nil, nil, nil, err
		}
		return t, t, func() { t.Close() }, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown transport kind %q", cfg.Kind)
	}
}
