package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/errors"
)

// Config represents the optional carousel.yaml configuration for the demo.
type Config struct {
	// Items are the labels to page through. When empty the demo
	// generates placeholder labels.
	Items []string `yaml:"items,omitempty"`
	// PerView is the number of items visible at once.
	PerView int `yaml:"perView,omitempty"`
	// Loop enables wrap-around navigation.
	Loop bool `yaml:"loop,omitempty"`
	// FreeScroll leaves the offset where a drag released it.
	FreeScroll bool `yaml:"freeScroll,omitempty"`
	// Sensitivity scales pointer travel into scroll distance.
	Sensitivity float64 `yaml:"sensitivity,omitempty"`
	// MinDragDistance is the drag commit threshold in cells.
	MinDragDistance float64 `yaml:"minDragDistance,omitempty"`
	// Autoplay enables periodic advancing.
	Autoplay bool `yaml:"autoplay,omitempty"`
	// AutoplayInterval is the pause between advances as a Go duration
	// string (e.g. "3s").
	AutoplayInterval string `yaml:"autoplayInterval,omitempty"`
	// Direction is "ltr" or "rtl".
	Direction string `yaml:"direction,omitempty"`
}

// LoadOptional reads the config file at path if present. A missing file is
// not an error; it yields the zero config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.E("cli.LoadOptional", errors.KindParsing, err)
	}

	return &cfg, nil
}

// Options converts the config into carousel options. Field validation is
// left to carousel.NewController; only the direction string needs mapping
// here.
func (c *Config) Options() (carousel.Options, error) {
	opts := carousel.Options{
		ItemsPerView:      c.PerView,
		InfiniteLoop:      c.Loop,
		FreeScroll:        c.FreeScroll,
		ScrollSensitivity: c.Sensitivity,
		MinDragDistance:   c.MinDragDistance,
		Autoplay:          c.Autoplay,
	}
	if c.AutoplayInterval != "" {
		interval, err := time.ParseDuration(c.AutoplayInterval)
		if err != nil {
			return carousel.Options{}, errors.Config("cli.Config", "invalid autoplayInterval %q: %v", c.AutoplayInterval, err)
		}
		opts.AutoplayInterval = interval
	}
	switch c.Direction {
	case "", "ltr":
		opts.Direction = carousel.DirectionLTR
	case "rtl":
		opts.Direction = carousel.DirectionRTL
	default:
		return carousel.Options{}, errors.Config("cli.Config", "direction must be ltr or rtl, got %q", c.Direction)
	}
	return opts, nil
}
