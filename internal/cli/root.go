// Package cli implements the carousel demo command-line interface.
//
// The demo hosts a headless carousel controller inside a terminal UI: items
// render as lipgloss boxes, arrow keys and page keys invoke navigation
// commands, mouse drags feed the gesture tracker, and an autoplay driver is
// pumped from the bubbletea event loop. It exists to exercise every inbound
// and outbound contract of the core packages against a real event source.
//
// Logging uses charmbracelet/log behind a --verbose (-v) flag; the logger
// travels through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/carousel/pkg/carousel"
)

var (
	version = "dev" // overridden via ldflags at build time
)

// SetVersion sets the version string displayed by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the carousel demo CLI and returns an error if it fails.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
		itemCount  int
		perView    int
		loop       bool
		freeScroll bool
		play       bool
		interval   time.Duration
		rtl        bool
	)

	root := &cobra.Command{
		Use:          "carousel",
		Short:        "Interactive terminal demo of the carousel engine",
		Long:         `Carousel runs a terminal demo of the headless carousel engine: arrow keys page through items, mouse drags swipe, and autoplay advances while idle. Flags override the optional carousel.yaml config.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := LoadOptional(configPath)
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}

			// Flags win over the config file.
			flags := cmd.Flags()
			if flags.Changed("per-view") || opts.ItemsPerView == 0 {
				opts.ItemsPerView = perView
			}
			if flags.Changed("loop") {
				opts.InfiniteLoop = loop
			}
			if flags.Changed("free-scroll") {
				opts.FreeScroll = freeScroll
			}
			if flags.Changed("autoplay") {
				opts.Autoplay = play
			}
			if flags.Changed("interval") {
				opts.AutoplayInterval = interval
			}
			if flags.Changed("rtl") && rtl {
				opts.Direction = carousel.DirectionRTL
			}

			labels := cfg.Items
			if flags.Changed("items") || len(labels) == 0 {
				labels = make([]string, itemCount)
				for i := range labels {
					labels[i] = fmt.Sprintf("Item %d", i+1)
				}
			}

			logger.Debug("starting demo",
				"items", len(labels),
				"perView", opts.ItemsPerView,
				"loop", opts.InfiniteLoop,
				"autoplay", opts.Autoplay,
			)
			return runDemo(cmd.Context(), labels, opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("carousel %s\n", version))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&configPath, "config", "c", "carousel.yaml", "path to the demo config file")
	root.Flags().IntVarP(&itemCount, "items", "n", 10, "number of placeholder items")
	root.Flags().IntVarP(&perView, "per-view", "p", 4, "items visible at once")
	root.Flags().BoolVar(&loop, "loop", false, "enable infinite looping")
	root.Flags().BoolVar(&freeScroll, "free-scroll", false, "skip snapping after drags")
	root.Flags().BoolVar(&play, "autoplay", false, "advance automatically while idle")
	root.Flags().DurationVar(&interval, "interval", carousel.DefaultAutoplayInterval, "autoplay interval")
	root.Flags().BoolVar(&rtl, "rtl", false, "right-to-left layout")

	return root.ExecuteContext(ctx)
}
