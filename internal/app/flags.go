package app

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"mad-life/internal/playback"
	"mad-life/internal/sims/life"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Width    int
	Height   int
	Scale    int
	Interval float64
	Density  float64
	Seed     int64
	Pattern  string
	Verbose  bool

	// Overrides are key=value pairs applied through life.FromMap after the
	// individual flags.
	Overrides kvList
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Width:    def.Width,
		Height:   def.Height,
		Scale:    24,
		Interval: def.Interval.Seconds(),
		Density:  def.Density,
		Pattern:  life.PatternEmpty,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.Float64Var(&c.Interval, "interval", c.Interval, "seconds between generations (0.05-1)")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive after randomize")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize (0 = time based)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: "+strings.Join(life.Patterns(), ", "))
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log playback transitions")
	fs.Var(&c.Overrides, "set", "grid option in key=value form, keys: "+strings.Join(life.ConfigKeys(), ", ")+" (repeatable)")
}

// Validate checks the options that cannot be clamped.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d: %w", c.Scale, ErrInvalidConfig)
	}
	for _, kv := range c.Overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("override %q: want key=value: %w", kv, ErrInvalidConfig)
		}
		if err := life.CheckOption(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("override: %w: %w", err, ErrInvalidConfig)
		}
	}
	return nil
}

// LifeConfig converts the flags and -set overrides into a simulation config.
// Overrides win over flags. The interval is clamped to the playback range
// and the density flag to [0, 1]; run Validate first to reject bad overrides.
func (c *Config) LifeConfig() life.Config {
	interval := playback.ClampInterval(time.Duration(math.Round(c.Interval * float64(time.Second))))
	m := map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"density":  strconv.FormatFloat(min(max(c.Density, 0), 1), 'f', -1, 64),
		"interval": strconv.FormatFloat(interval.Seconds(), 'f', -1, 64),
		"seed":     strconv.FormatInt(c.Seed, 10),
	}
	for _, kv := range c.Overrides {
		if key, value, ok := strings.Cut(kv, "="); ok {
			m[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	lc := life.FromMap(m)
	lc.Interval = playback.ClampInterval(lc.Interval)
	return lc
}
