// Package config loads the ground station's own YAML configuration:
// which transport to use, where to dump packets, and the station's own
// location for range estimates.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level ground-station configuration file.
type Config struct {
	Transport   Transport    `yaml:"transport"`
	Station     Station      `yaml:"station"`
	DumpDir     string       `yaml:"dump_dir"`
	LocationLog string       `yaml:"location_log"`
	Relay       RelayConfig  `yaml:"relay"`
	Indicator   IndicatorCfg `yaml:"indicator"`
	Rig         RigConfig    `yaml:"rig"`
}

// Transport picks the byte source the decoder pulls frames from.
type Transport struct {
	// Kind is "serial" or "tcp".
	Kind string `yaml:"kind"`

	// Serial fields.
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`

	// Discover, if set, looks up Device by USB vendor/product ID
	// instead of requiring the operator to name the /dev node.
	Discover DiscoverConfig `yaml:"discover"`

	// TCP fields.
	Address string `yaml:"address"`
}

// DiscoverConfig enables udev-based USB-serial auto-discovery.
type DiscoverConfig struct {
	Enabled   bool   `yaml:"enabled"`
	VendorID  string `yaml:"vendor_id"`
	ProductID string `yaml:"product_id"`
}

// IndicatorCfg drives an optional GPIO valid/invalid packet light.
type IndicatorCfg struct {
	Enabled bool   `yaml:"enabled"`
	Chip    string `yaml:"chip"`
	Offset  int    `yaml:"offset"`
}

// RigConfig auto-tunes a Hamlib-controlled receiver before decoding starts.
type RigConfig struct {
	Enabled bool    `yaml:"enabled"`
	Model   int     `yaml:"model"`
	Port    string  `yaml:"port"`
	FreqHz  float64 `yaml:"freq_hz"`
}

// Station is the ground station's own fixed location, for range
// estimates against decoded fixes.
type Station struct {
	LatitudeDegrees  float64 `yaml:"latitude"`
	LongitudeDegrees float64 `yaml:"longitude"`
}

// RelayConfig controls the optional mDNS-announced live feed.
type RelayConfig struct {
	Enabled bool   `yaml:"enabled"`
	Name    string `yaml:"name"`
	Port    int    `yaml:"port"`
}

// Load reads and parses a Config from path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return c, nil
}
