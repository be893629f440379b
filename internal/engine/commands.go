package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tatianab/dungeon-mini/internal/models"
)

// scoreListLimit is how many entries "scores" shows.
const scoreListLimit = 10

type helpCommand struct{}

func (helpCommand) Name() string { return "help" }

func (helpCommand) Execute(_ context.Context, s *Session, _ []string) error {
	s.println("Commands: " + strings.Join(s.registry.Names(), ", "))
	return nil
}

// gcStatsCommand reports Go runtime memory usage.
type gcStatsCommand struct{}

func (gcStatsCommand) Name() string { return "gc-stats" }

func (gcStatsCommand) Execute(_ context.Context, s *Session, _ []string) error {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s.printf("Memory: heap=%s sys=%s gc-cycles=%d\n",
		humanize.IBytes(ms.HeapInuse), humanize.IBytes(ms.Sys), ms.NumGC)
	return nil
}

type lookCommand struct{}

func (lookCommand) Name() string { return "look" }

func (lookCommand) Execute(_ context.Context, s *Session, _ []string) error {
	s.println(s.State.CurrentRoom().Describe())
	return nil
}

type moveCommand struct{}

func (moveCommand) Name() string { return "move" }

func (moveCommand) Execute(_ context.Context, s *Session, args []string) error {
	if len(args) == 0 {
		return invalid(ErrNoDirection)
	}
	direction := strings.ToLower(args[0])
	next, ok := s.State.Neighbor(direction)
	if !ok {
		return invalid(fmt.Errorf("%w to the %s", ErrNoExit, direction))
	}
	s.State.MoveTo(next)
	s.println("You moved to: " + next.Name)
	s.println(next.Describe())
	return nil
}

type takeCommand struct{}

func (takeCommand) Name() string { return "take" }

func (takeCommand) Execute(_ context.Context, s *Session, args []string) error {
	if len(args) == 0 {
		return invalid(ErrItemNameRequired)
	}
	name := strings.Join(args, " ")
	room := s.State.CurrentRoom()
	i := models.FindItem(room.Items, name)
	if i < 0 {
		return invalidf(ErrItemNotInRoom, name)
	}
	item := room.Items[i]
	room.Items = models.RemoveItem(room.Items, i)
	s.State.Player.Inventory = append(s.State.Player.Inventory, item)
	s.println("Taken: " + item.Name())
	return nil
}

// inventoryCommand groups carried items by kind, kinds in order of first appearance.
type inventoryCommand struct{}

func (inventoryCommand) Name() string { return "inventory" }

func (inventoryCommand) Execute(_ context.Context, s *Session, _ []string) error {
	inv := s.State.Player.Inventory
	if len(inv) == 0 {
		s.println("Inventory is empty.")
		return nil
	}

	var kinds []string
	groups := make(map[string][]models.Item)
	for _, it := range inv {
		if _, seen := groups[it.Kind()]; !seen {
			kinds = append(kinds, it.Kind())
		}
		groups[it.Kind()] = append(groups[it.Kind()], it)
	}
	for _, kind := range kinds {
		items := groups[kind]
		s.printf("- %s (%d): %s\n", kind, len(items), items[0].Name())
	}
	return nil
}

type useCommand struct{}

func (useCommand) Name() string { return "use" }

func (useCommand) Execute(_ context.Context, s *Session, args []string) error {
	if len(args) == 0 {
		return invalid(ErrItemNameRequired)
	}
	name := strings.Join(args, " ")
	player := s.State.Player
	i := models.FindItem(player.Inventory, name)
	if i < 0 {
		return invalidf(ErrItemNotInInventory, name)
	}

	item := player.Inventory[i]
	effect, err := item.Apply(s.State)
	if err != nil {
		return fmt.Errorf("use %s: %w", item.Name(), err)
	}
	if effect.Consumed {
		player.Inventory = models.RemoveItem(player.Inventory, i)
	}
	if effect.Message != "" {
		s.println(effect.Message)
	}
	return nil
}

type saveCommand struct{}

func (saveCommand) Name() string { return "save" }

func (saveCommand) Execute(ctx context.Context, s *Session, _ []string) error {
	if s.Store == nil {
		return fmt.Errorf("save: persistence %w", ErrNotConfigured)
	}
	if err := s.Store.Persist(ctx, s.State.Snapshot()); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	s.recordScore(ctx)
	s.println("Game saved.")
	return nil
}

type loadCommand struct{}

func (loadCommand) Name() string { return "load" }

func (loadCommand) Execute(ctx context.Context, s *Session, _ []string) error {
	if s.Store == nil {
		return fmt.Errorf("load: persistence %w", ErrNotConfigured)
	}
	snap, err := s.Store.Restore(ctx)
	if errors.Is(err, models.ErrNoSave) {
		return invalid(err)
	}
	if err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	if err := s.State.Restore(snap); err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	s.println("Game loaded.")
	s.println(s.State.CurrentRoom().Describe())
	return nil
}

type scoresCommand struct{}

func (scoresCommand) Name() string { return "scores" }

func (scoresCommand) Execute(ctx context.Context, s *Session, _ []string) error {
	if s.Scores == nil {
		return fmt.Errorf("scores: scoreboard %w", ErrNotConfigured)
	}
	entries, err := s.Scores.ListScores(ctx, scoreListLimit)
	if err != nil {
		return fmt.Errorf("list scores: %w", err)
	}
	if len(entries) == 0 {
		s.println("No scores recorded yet.")
		return nil
	}
	s.println("Top scores:")
	for i, e := range entries {
		s.printf("%d. %s: %d\n", i+1, e.Player, e.Score)
	}
	return nil
}

type exitCommand struct{}

func (exitCommand) Name() string { return "exit" }

func (exitCommand) Execute(_ context.Context, s *Session, _ []string) error {
	s.println("Goodbye!")
	return errExit
}
