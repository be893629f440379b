package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tatianab/dungeon-mini/internal/models"
	"github.com/tatianab/dungeon-mini/internal/scoreboard"
)

// Banner is printed once when a session starts.
const Banner = "DungeonMini. Type 'help' for commands."

// Process exit codes for terminal outcomes.
const (
	ExitOK     = 0
	ExitDefeat = 3
)

// Status says whether the session goes on after a line.
type Status int

const (
	StatusContinue Status = iota
	StatusExit
	StatusDefeat
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusExit:
		return "exit"
	case StatusDefeat:
		return "defeat"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Outcome is the result of executing one input line.
type Outcome struct {
	Status  Status
	Command string
	Scored  bool
}

// Terminal reports whether the driver must stop.
func (o Outcome) Terminal() bool {
	return o.Status != StatusContinue
}

// ExitCode is the process exit code for a terminal outcome.
func (o Outcome) ExitCode() int {
	if o.Status == StatusDefeat {
		return ExitDefeat
	}
	return ExitOK
}

// Store saves and restores full game snapshots.
type Store interface {
	Persist(ctx context.Context, snap models.Snapshot) error
	Restore(ctx context.Context) (models.Snapshot, error)
}

// Scoreboard records final scores and lists the best ones.
type Scoreboard interface {
	RecordScore(ctx context.Context, player string, score int) error
	ListScores(ctx context.Context, limit int) ([]scoreboard.Entry, error)
}

// Session is what commands operate on.
type Session struct {
	State  *models.GameState
	Out    io.Writer
	Store  Store
	Scores Scoreboard
	Logger *slog.Logger

	registry *Registry
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.Out, a...)
}

func (s *Session) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.Out, format, a...)
}

// recordScore stores the current score, logging instead of failing.
func (s *Session) recordScore(ctx context.Context) {
	if s.Scores == nil {
		return
	}
	if err := s.Scores.RecordScore(ctx, s.State.Player.Name, s.State.Score); err != nil {
		s.Logger.Warn("failed to record score", "error", err, "score", s.State.Score)
	}
}

// Options configures an Engine. Out defaults to io.Discard and Logger to slog.Default().
type Options struct {
	Out    io.Writer
	Store  Store
	Scores Scoreboard
	Logger *slog.Logger
}

// Engine turns input lines into changes to the game state.
type Engine struct {
	session  *Session
	registry *Registry
}

// New builds the command registry and binds it to state.
func New(state *models.GameState, opts Options) *Engine {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	registry := NewRegistry()
	for _, cmd := range []Command{
		helpCommand{},
		gcStatsCommand{},
		lookCommand{},
		moveCommand{},
		takeCommand{},
		inventoryCommand{},
		useCommand{},
		fightCommand{},
		saveCommand{},
		loadCommand{},
		scoresCommand{},
		exitCommand{},
	} {
		registry.Register(cmd)
	}

	return &Engine{
		registry: registry,
		session: &Session{
			State:    state,
			Out:      opts.Out,
			Store:    opts.Store,
			Scores:   opts.Scores,
			Logger:   opts.Logger,
			registry: registry,
		},
	}
}

// State returns the live game state.
func (e *Engine) State() *models.GameState {
	return e.session.State
}

// Commands lists the registered command names in order.
func (e *Engine) Commands() []string {
	return e.registry.Names()
}

// SetOutput redirects command output.
func (e *Engine) SetOutput(w io.Writer) {
	e.session.Out = w
}

// Execute parses and runs one input line. Every failure is reported to the
// output; only exit and death end the session.
func (e *Engine) Execute(ctx context.Context, line string) Outcome {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Outcome{Status: StatusContinue}
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]
	out := Outcome{Status: StatusContinue, Command: name}
	log := e.session.Logger.With("command", name)

	cmd, ok := e.registry.Lookup(name)
	if !ok {
		e.reportInvalid(invalidf(ErrUnknownCommand, name))
		return out
	}

	err := e.run(ctx, cmd, args)
	var term *termination
	switch {
	case err == nil:
		e.session.State.Score++
		out.Scored = true
		log.Debug("command executed", "score", e.session.State.Score)
	case errors.As(err, &term):
		e.session.recordScore(ctx)
		out.Status = term.status
		log.Info("session ended", "status", term.status, "score", e.session.State.Score)
	case IsInvalidCommand(err):
		e.reportInvalid(err)
		log.Debug("command rejected", "reason", err)
	default:
		e.session.printf("Unexpected error: %s: %v\n", category(err), err)
		log.Error("command failed", "error", err)
	}
	return out
}

func (e *Engine) reportInvalid(err error) {
	e.session.printf("Error: %v\n", err)
}

func (e *Engine) run(ctx context.Context, cmd Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return cmd.Execute(ctx, e.session, args)
}
