package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "pullrefresh.json"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Duration is a time.Duration that reads and writes as "1.5s" in JSON.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"1.5s\": %w", err)
	}
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// D returns the value as a time.Duration.
func (d Duration) D() time.Duration { return time.Duration(d) }

// Config drives the demo hosts. An accessory height of 0 disables that edge.
type Config struct {
	TopAccessoryRows    int      `json:"top_accessory_rows"`
	BottomAccessoryRows int      `json:"bottom_accessory_rows"`
	InitialLines        int      `json:"initial_lines"`
	RefreshDelay        Duration `json:"refresh_delay"`
	GestureIdle         Duration `json:"gesture_idle"`
	SettleFrame         Duration `json:"settle_frame"`
	WheelStep           float64  `json:"wheel_step"`
	Resistance          float64  `json:"resistance"`
	MaxOverscroll       float64  `json:"max_overscroll"`
	Sound               bool     `json:"sound,omitempty"`
	FeedURL             string   `json:"feed_url,omitempty"`
	LogFile             string   `json:"log_file,omitempty"`
	NoColor             bool     `json:"no_color,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TopAccessoryRows:    3,
		BottomAccessoryRows: 2,
		InitialLines:        40,
		RefreshDelay:        Duration(1500 * time.Millisecond),
		GestureIdle:         Duration(150 * time.Millisecond),
		SettleFrame:         Duration(30 * time.Millisecond),
		WheelStep:           1,
		Resistance:          0.75,
		MaxOverscroll:       8,
	}
}

// Load reads path over the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadOrDefault loads path, falling back to the defaults when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	c, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}

// Validate checks ranges and cross-field constraints.
func (c *Config) Validate() error {
	switch {
	case c.TopAccessoryRows < 0 || c.BottomAccessoryRows < 0:
		return fmt.Errorf("%w: accessory rows must be >= 0", ErrInvalid)
	case c.InitialLines < 0:
		return fmt.Errorf("%w: initial_lines must be >= 0", ErrInvalid)
	case c.WheelStep <= 0:
		return fmt.Errorf("%w: wheel_step must be > 0", ErrInvalid)
	case c.Resistance <= 0 || c.Resistance > 1:
		return fmt.Errorf("%w: resistance must be in (0, 1]", ErrInvalid)
	case c.GestureIdle <= 0 || c.SettleFrame <= 0:
		return fmt.Errorf("%w: gesture_idle and settle_frame must be positive", ErrInvalid)
	case c.RefreshDelay < 0:
		return fmt.Errorf("%w: refresh_delay must be >= 0", ErrInvalid)
	}
	tallest := c.TopAccessoryRows
	if c.BottomAccessoryRows > tallest {
		tallest = c.BottomAccessoryRows
	}
	if c.MaxOverscroll < float64(tallest) {
		return fmt.Errorf("%w: max_overscroll (%v) must reach the tallest accessory (%d)", ErrInvalid, c.MaxOverscroll, tallest)
	}
	return nil
}

func Save(path string, c *Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
