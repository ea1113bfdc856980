package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int

	// Snapshot, if set, is a PNG path written with the last presented frame
	// when the run ends.
	Snapshot      string
	SnapshotScale int
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	return runHeadless(ctx, New().(*hostHAL), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) func() error, cfg HeadlessConfig) (err error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}
	if cfg.SnapshotScale <= 0 {
		cfg.SnapshotScale = 1
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	step := newApp(h)

	if cfg.Snapshot != "" {
		defer func() {
			if serr := SavePNG(cfg.Snapshot, h.fb, cfg.SnapshotScale); serr != nil && err == nil {
				err = serr
			}
		}()
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			for i := 0; i < cfg.StepBudget && step != nil; i++ {
				if err := step(); err != nil {
					if errors.Is(err, ErrExit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
