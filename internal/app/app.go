// Package app wires configuration, storage, and a driver into a runnable game.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tatianab/dungeon-mini/internal/config"
	"github.com/tatianab/dungeon-mini/internal/console"
	"github.com/tatianab/dungeon-mini/internal/engine"
	"github.com/tatianab/dungeon-mini/internal/logger"
	"github.com/tatianab/dungeon-mini/internal/models"
	"github.com/tatianab/dungeon-mini/internal/scoreboard"
	"github.com/tatianab/dungeon-mini/internal/tui"
	"github.com/tatianab/dungeon-mini/internal/world"
)

// Run plays one game and returns the process exit code. Every resource it
// opens is closed before it returns.
func Run(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) int {
	logOut := stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(stderr, "Error opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	log := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: logger.DefaultServiceName,
		Version:     logger.DefaultVersion,
	}, logOut, logger.GenerateSessionID())
	slog.SetDefault(log)

	state, err := world.Load(cfg.WorldFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading world: %v\n", err)
		return 1
	}
	if cfg.PlayerName != "" {
		state.Player.Name = cfg.PlayerName
	}

	opts := engine.Options{
		Out:    stdout,
		Store:  models.NewFileStore(cfg.SaveDir, cfg.SaveSlot),
		Logger: log,
	}
	board, err := scoreboard.Open(ctx, cfg.ScoreDB)
	if err != nil {
		log.Warn("scoreboard unavailable; scores will not be kept", "path", cfg.ScoreDB, "error", err)
	} else {
		defer board.Close()
		opts.Scores = board
	}

	eng := engine.New(state, opts)
	log.Info("game started", "ui", cfg.UI, "world", cfg.WorldFile, "player", state.Player.Name)

	var code int
	if cfg.UI == config.UITUI {
		code, err = tui.Run(eng)
	} else {
		code, err = console.Run(ctx, eng, stdin, stdout)
	}
	if err != nil {
		log.Error("driver failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	log.Info("game over", "exit_code", code, "score", eng.State().Score)
	return code
}
