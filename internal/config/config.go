package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	AppName    = "SOUL-STAR"
	AppVersion = "1.0"

	// CompanyID tags the manufacturer data block in our beacon so scan
	// reports can be filtered down to Soul Star devices only.
	CompanyID uint16 = 0xBEEF

	// MaxNameLen bounds the local name carried in the beacon. The whole
	// advertisement record has to fit in 31 bytes.
	MaxNameLen = 16
)

// Config holds every tuning knob of the badge. All values are fixed before
// the display task starts; nothing in here is mutated at runtime.
type Config struct {
	// Name is broadcast in the beacon and shown to peers.
	Name string `yaml:"name"`
	// Colour is this soul's colour, broadcast in the beacon.
	Colour [3]uint8 `yaml:"colour"`
	// TxPower is the advertised transmit power in dBm, used by peers to
	// estimate path loss.
	TxPower int8 `yaml:"tx_power"`
	// Brightness is the initial global brightness (0-255).
	Brightness uint8 `yaml:"brightness"`

	// StripLen is the number of LEDs in the ring.
	StripLen int `yaml:"strip_len"`
	// AnimationUpdateMS is the animation tick period in milliseconds.
	AnimationUpdateMS int `yaml:"animation_update_ms"`
	// FlushIntervalSec is how often stale souls are flushed, in seconds.
	FlushIntervalSec int `yaml:"flush_interval_sec"`
	// FlushAgeSec is how long a soul stays visible after its last beacon.
	FlushAgeSec int `yaml:"flush_age_sec"`
	// ArrivalSec is how long the new-soul sparkle runs, in seconds.
	ArrivalSec int `yaml:"arrival_sec"`

	// MaxSouls caps the presence tracker.
	MaxSouls int `yaml:"max_souls"`
	// MaxPending caps the pending animation queue.
	MaxPending int `yaml:"max_pending"`
	// QueueSize caps the display control channel.
	QueueSize int `yaml:"queue_size"`

	Adapter  string `yaml:"adapter"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the stock badge configuration.
func Default() *Config {
	return &Config{
		Name:              "Soul Star",
		Colour:            [3]uint8{0x20, 0xC0, 0x60},
		TxPower:           4,
		Brightness:        128,
		StripLen:          24,
		AnimationUpdateMS: 200,
		FlushIntervalSec:  1,
		FlushAgeSec:       15,
		ArrivalSec:        1,
		MaxSouls:          16,
		MaxPending:        20,
		QueueSize:         10,
		Adapter:           "hci0",
		LogLevel:          "INFO",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the display task cannot run with.
func (c *Config) Validate() error {
	if len(c.Name) > MaxNameLen {
		return fmt.Errorf("name %q exceeds %d bytes", c.Name, MaxNameLen)
	}
	if c.StripLen <= 0 {
		return fmt.Errorf("strip_len must be positive, got %d", c.StripLen)
	}
	if c.AnimationUpdateMS <= 0 || c.FlushIntervalSec <= 0 {
		return fmt.Errorf("tick periods must be positive")
	}
	if c.FlushAgeSec <= 0 {
		return fmt.Errorf("flush_age_sec must be positive, got %d", c.FlushAgeSec)
	}
	if c.MaxSouls <= 0 || c.MaxPending <= 0 || c.QueueSize <= 0 {
		return fmt.Errorf("capacities must be positive")
	}
	return nil
}

// RGB returns the configured soul colour as a pixel.
func (c *Config) RGB() color.RGBA {
	return color.RGBA{R: c.Colour[0], G: c.Colour[1], B: c.Colour[2], A: 0xFF}
}

func (c *Config) AnimationUpdate() time.Duration {
	return time.Duration(c.AnimationUpdateMS) * time.Millisecond
}

func (c *Config) FlushInterval() time.Duration {
	return time.Duration(c.FlushIntervalSec) * time.Second
}

func (c *Config) FlushAge() time.Duration {
	return time.Duration(c.FlushAgeSec) * time.Second
}

func (c *Config) ArrivalTTL() time.Duration {
	return time.Duration(c.ArrivalSec) * time.Second
}

var logLevels = map[string]slog.Level{
	"DEBUG": slog.LevelDebug,
	"INFO":  slog.LevelInfo,
	"WARN":  slog.LevelWarn,
	"ERROR": slog.LevelError,
}

// SlogLevel maps the configured log level, defaulting to INFO on junk.
func (c *Config) SlogLevel() slog.Level {
	if lvl, ok := logLevels[c.LogLevel]; ok {
		return lvl
	}
	return slog.LevelInfo
}
