// Command boids shows the flock in a window.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/cli"
	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/render"
	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/simulation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "boids:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "boids",
		Short:         "Boids flocking simulation in a window",
		Version:       cli.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, logger, err := cli.LoadSettings(v, cfgFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			driver, err := simulation.NewDriver(ctx, cfg.Flock(logger),
				simulation.WithActorLogger(simulation.NewActorLogger(logger)))
			if err != nil {
				return err
			}
			defer func() { _ = driver.Stop(ctx) }()

			game := render.New(ctx, driver, render.Options{
				View:          cfg.View,
				World:         flock.Size{Width: cfg.World.Width, Height: cfg.World.Height},
				StepsPerFrame: cfg.Run.StepsPerFrame,
				Seed:          cfg.Population.Seed,
				Logger:        logger,
			})

			ebiten.SetWindowSize(cfg.View.Width, cfg.View.Height)
			ebiten.SetWindowTitle(fmt.Sprintf("Boids (%d, seed %q)", cfg.Population.BoidCount, cfg.Population.Seed))
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetTPS(cfg.View.TPS)

			logger.Info("window opened", zap.Int("boids", cfg.Population.BoidCount), zap.Int("tps", cfg.View.TPS))
			return ebiten.RunGame(game)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfgFile, "config", "c", "", "config file (.json, .yaml, .yml or .toml)")
	f.String("seed", "", "random seed")
	f.Int("boids", 0, "number of boids")
	f.Int("steps-per-frame", 0, "steps advanced per displayed frame")
	f.String("log-level", "", "log level: debug, info, warn or error")
	cli.ConfigKey(f, "seed", "population.seed")
	cli.ConfigKey(f, "boids", "population.boidCount")
	cli.ConfigKey(f, "steps-per-frame", "run.stepsPerFrame")
	cli.ConfigKey(f, "log-level", "log.level")
	return cmd
}
