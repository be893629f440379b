package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Snapshot is a full copy of a GameState that can be written to disk.
type Snapshot struct {
	Player  PlayerSnapshot `yaml:"player"`
	Current string         `yaml:"current_room" validate:"required"`
	Score   int            `yaml:"score" validate:"gte=0"`
	Rooms   []RoomSnapshot `yaml:"rooms" validate:"dive"`
}

// PlayerSnapshot holds the player's stats and inventory.
type PlayerSnapshot struct {
	Name      string     `yaml:"name" validate:"required"`
	HP        int        `yaml:"hp" validate:"gt=0"`
	Attack    int        `yaml:"attack" validate:"gt=0"`
	Inventory []ItemSpec `yaml:"inventory" validate:"dive"`
}

// RoomSnapshot holds the parts of a room that change during play.
type RoomSnapshot struct {
	Name    string     `yaml:"name" validate:"required"`
	Items   []ItemSpec `yaml:"items" validate:"dive"`
	Monster *Monster   `yaml:"monster,omitempty"`
}

func specsOf(items []Item) []ItemSpec {
	specs := make([]ItemSpec, 0, len(items))
	for _, it := range items {
		specs = append(specs, it.Spec())
	}
	return specs
}

func itemsOf(specs []ItemSpec) ([]Item, error) {
	items := make([]Item, 0, len(specs))
	for _, spec := range specs {
		it, err := NewItem(spec)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// Snapshot captures the current state.
func (s *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Player: PlayerSnapshot{
			Name:      s.Player.Name,
			HP:        s.Player.HP,
			Attack:    s.Player.Attack,
			Inventory: specsOf(s.Player.Inventory),
		},
		Current: s.Current,
		Score:   s.Score,
	}
	for _, room := range s.World.Rooms() {
		rs := RoomSnapshot{Name: room.Name, Items: specsOf(room.Items)}
		if room.Monster != nil {
			m := *room.Monster
			rs.Monster = &m
		}
		snap.Rooms = append(snap.Rooms, rs)
	}
	return snap
}

// Restore replaces the state with snap. snap must describe every room of the
// world exactly once; nothing changes if it does not fit.
func (s *GameState) Restore(snap Snapshot) error {
	if err := validate.Struct(&snap); err != nil {
		return fmt.Errorf("restore: invalid snapshot: %w", err)
	}
	if _, ok := s.World.Room(snap.Current); !ok {
		return fmt.Errorf("restore: unknown room %q", snap.Current)
	}
	inventory, err := itemsOf(snap.Player.Inventory)
	if err != nil {
		return fmt.Errorf("restore inventory: %w", err)
	}

	type roomContents struct {
		items   []Item
		monster *Monster
	}
	contents := make(map[string]roomContents, len(snap.Rooms))
	for _, rs := range snap.Rooms {
		if _, ok := s.World.Room(rs.Name); !ok {
			return fmt.Errorf("restore: unknown room %q", rs.Name)
		}
		if _, dup := contents[rs.Name]; dup {
			return fmt.Errorf("restore: room %q appears twice", rs.Name)
		}
		items, err := itemsOf(rs.Items)
		if err != nil {
			return fmt.Errorf("restore room %q: %w", rs.Name, err)
		}
		var monster *Monster
		if rs.Monster != nil {
			m := *rs.Monster
			monster = &m
		}
		contents[rs.Name] = roomContents{items: items, monster: monster}
	}

	for _, room := range s.World.Rooms() {
		if _, ok := contents[room.Name]; !ok {
			return fmt.Errorf("restore: room %q missing from save", room.Name)
		}
	}

	for name, c := range contents {
		room, _ := s.World.Room(name)
		room.Items = c.items
		room.Monster = c.monster
	}
	s.Player = &Player{
		Name:      snap.Player.Name,
		HP:        snap.Player.HP,
		Attack:    snap.Player.Attack,
		Inventory: inventory,
	}
	s.Current = snap.Current
	s.Score = snap.Score
	return nil
}
