package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tunehunt/internal/config"
	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/core"
	"github.com/vovakirdan/tunehunt/internal/engine"
	"github.com/vovakirdan/tunehunt/internal/registry"
)

// app is the state shared by every command after configuration.
type app struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	settings engine.Settings
	pool     *content.Pool
	logger   *log.Logger
	source   content.Source
}

// loadApp reads the configuration and builds the logger, settings and
// content pool. Logs go to logOut.
func loadApp(logOut io.Writer) (*app, error) {
	if err := config.LoadEnvFile(flagEnvFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if flagFPS > 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Runtime.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Runtime.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.Runtime.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "tunehunt",
		Level:           level,
	})

	rc := core.DefaultConfig()
	rc.ViewW, rc.ViewH = cfg.Runtime.ViewWidth, cfg.Runtime.ViewHeight
	rc.TickRate = cfg.Runtime.TickRate
	rc.Seed = cfg.Runtime.Seed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	settings, err := settingsFrom(cfg, rc)
	if err != nil {
		return nil, err
	}

	variant, err := content.ParseVariant(cfg.Game.ThemeVariant)
	if err != nil {
		return nil, err
	}
	pool := content.NewDefaultPool()
	pool.SetThemeVariant(variant)

	return &app{
		cfg:      cfg,
		runtime:  rc,
		settings: settings,
		pool:     pool,
		logger:   logger,
	}, nil
}

// settingsFrom converts the file configuration into session settings.
func settingsFrom(cfg config.Config, rc core.RuntimeConfig) (engine.Settings, error) {
	mode, err := engine.ParseMode(cfg.Game.SelectedMode)
	if err != nil {
		return engine.Settings{}, err
	}
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	p := cfg.Physics

	return engine.Settings{
		Duration:        ms(cfg.Game.Duration),
		SpawnFrequency:  ms(cfg.Game.SpawnFrequency),
		InitialSize:     cfg.Game.InitialSize,
		InitialFontSize: cfg.Game.InitialFontSize,
		Mode:            mode,
		Viewport:        rc.Viewport(),
		Physics: engine.Physics{
			ShrinkStep:        p.ShrinkStep,
			FontShrinkStep:    p.FontShrinkStep,
			BounceSpeedRange:  p.BounceSpeedRange,
			BounceMinSpeed:    p.BounceMinSpeed,
			BounceGrowth:      p.BounceGrowth,
			BounceMaxSpeed:    p.BounceMaxSpeed,
			BounceDeleteSpeed: p.BounceDeleteSpeed,
			BounceTimeoutMin:  ms(p.BounceTimeoutMin),
			BounceTimeoutMax:  ms(p.BounceTimeoutMax),
			ShootingSpeed:     p.ShootingSpeed,
			ShootingOffset:    p.ShootingOffset,
			GlideStepMin:      p.GlideStepMin,
			GlideStepRange:    p.GlideStepRange,
			GlideTop:          p.GlideTop,
			GlideSpeedMin:     p.GlideSpeedMin,
			GlideSpeedRange:   p.GlideSpeedRange,
			OffscreenMargin:   p.OffscreenMargin,
		},
	}, nil
}

// startContent creates the configured source and refreshes the pool once,
// or in the background every refresh interval until ctx ends.
// A failed fetch is logged and the built-in lists stay in place.
func (a *app) startContent(ctx context.Context) error {
	c := a.cfg.Content
	src, err := registry.Create(c.Source, registry.Options{
		URL:         c.URL,
		File:        c.File,
		CatalogPath: c.CatalogPath,
		Timeout:     time.Duration(c.Timeout) * time.Second,
		Logger:      a.logger,
	})
	if err != nil {
		return err
	}
	a.source = src

	r := &content.Refresher{
		Pool:     a.pool,
		Source:   src,
		Logger:   a.logger,
		Interval: time.Duration(c.RefreshInterval) * time.Second,
	}
	if r.Interval > 0 {
		go func() {
			//nolint:errcheck // Failures are logged and keep the current lists
			r.Run(ctx)
		}()
		return nil
	}
	//nolint:errcheck // Failures are logged and keep the current lists
	r.Refresh(ctx)
	return nil
}

// close releases the content source if it holds resources.
func (a *app) close() {
	if c, ok := a.source.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.logger.Warn("closing content source", "error", err)
		}
	}
}

// mustLoad is loadApp for command handlers: errors end the process.
func mustLoad(logOut io.Writer) *app {
	a, err := loadApp(logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

// mustStartContent is startContent for command handlers.
func (a *app) mustStartContent(ctx context.Context) {
	if err := a.startContent(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
