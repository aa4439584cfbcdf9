//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/logger"
	"sandfall/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	logger.Init()

	cfg, err := app.ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid configuration")
	}
	if cfg.LogLevel != "" && !logger.SetLevel(cfg.LogLevel) {
		logger.Log.WithField("level", cfg.LogLevel).Warn("unknown log level, keeping default")
	}

	world, err := buildWorld(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to build world")
	}

	session, err := app.NewSession(world, cfg, logger.Log)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to start session")
	}

	game := app.New(session, cfg.Scale, cfg.HUDWidth)
	size := world.Size()
	logger.Log.WithFields(logrus.Fields{
		"w":     size.W,
		"h":     size.H,
		"scale": cfg.Scale,
		"tps":   cfg.TPS,
	}).Info("starting sandbox")

	ebiten.SetWindowTitle("sandfall - " + world.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.WithError(err).Fatal("game loop failed")
	}
}

func buildWorld(cfg *app.Config) (*sand.World, error) {
	if cfg.Scenario != "" {
		sc, err := sand.LoadScenario(cfg.Scenario)
		if err != nil {
			return nil, err
		}
		logger.Log.WithFields(logrus.Fields{"scenario": sc.Name, "fills": len(sc.Fills)}).Info("loaded scenario")
		return sc.Build()
	}
	sim, err := core.Build(cfg.Sim, cfg.SimConfig())
	if err != nil {
		return nil, err
	}
	world, ok := sim.(*sand.World)
	if !ok {
		return nil, errors.New("sim " + cfg.Sim + " is not editable")
	}
	world.Reset(cfg.Seed)
	return world, nil
}
