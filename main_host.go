package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"tinytext/app"
	"tinytext/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	flag.StringVar(&appCfg.Demo, "demo", app.DefaultDemo, "Demo to run: "+strings.Join(app.Demos(), "|")+".")
	flag.StringVar(&appCfg.Font, "font", "cubes", "Font: cubes|strokes.")
	flag.StringVar(&appCfg.DataPath, "data", "", "YAML category file for the pivspi demo.")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the last frame to this PNG when a headless run ends.")
	flag.IntVar(&cfg.SnapshotScale, "snapshot-scale", 1, "Integer upscale for -snapshot.")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
