package life

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Config holds the construction-time options of a Life grid.
type Config struct {
	Width  int
	Height int

	// Density is the fraction of cells Randomize brings alive.
	Density float64
	// Interval is the initial delay between generations during playback.
	Interval time.Duration
	// Seed feeds Randomize. Zero picks a time-based seed.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    30,
		Height:   20,
		Density:  0.3,
		Interval: 300 * time.Millisecond,
	}
}

// ErrInvalidOption is returned by CheckOption for unknown keys and values
// that do not parse or are out of range.
var ErrInvalidOption = errors.New("invalid option")

// ConfigKeys lists the keys understood by FromMap.
func ConfigKeys() []string {
	return []string{"w", "h", "density", "interval", "seed"}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparseable or out-of-range entries keep their defaults.
// Interval is only required to be positive; callers clamp it to the playback
// range.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for k, v := range cfg {
		_ = c.set(k, v)
	}
	return c
}

// CheckOption reports whether FromMap would accept value for key.
func CheckOption(key, value string) error {
	c := DefaultConfig()
	return c.set(key, value)
}

func (c *Config) set(key, value string) error {
	bad := fmt.Errorf("%s=%q: %w", key, value, ErrInvalidOption)
	switch key {
	case "w", "h":
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return bad
		}
		if key == "w" {
			c.Width = parsed
		} else {
			c.Height = parsed
		}
	case "density":
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return bad
		}
		c.Density = parsed
	case "interval":
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || parsed <= 0 {
			return bad
		}
		c.Interval = time.Duration(math.Round(parsed * float64(time.Second)))
	case "seed":
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return bad
		}
		c.Seed = parsed
	default:
		return bad
	}
	return nil
}
