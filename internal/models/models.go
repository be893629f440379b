package models

import (
	"fmt"
	"sort"
	"strings"
)

// Room is a single location in the world graph.
type Room struct {
	Name        string
	Description string
	Exits       map[string]string // direction -> neighbor room name
	Items       []Item
	Monster     *Monster
}

// NewRoom creates an empty room with no exits.
func NewRoom(name, description string) *Room {
	return &Room{
		Name:        name,
		Description: description,
		Exits:       make(map[string]string),
	}
}

// Connect registers neighbor under direction, replacing any previous exit.
func (r *Room) Connect(direction string, neighbor *Room) {
	r.Exits[strings.ToLower(direction)] = neighbor.Name
}

// Directions returns the room's exits in sorted order.
func (r *Room) Directions() []string {
	dirs := make([]string, 0, len(r.Exits))
	for d := range r.Exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// Describe renders the room the way "look" and "move" print it.
func (r *Room) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", r.Name, r.Description)
	if len(r.Items) > 0 {
		names := make([]string, 0, len(r.Items))
		for _, it := range r.Items {
			names = append(names, it.Name())
		}
		fmt.Fprintf(&b, "\nItems: %s", strings.Join(names, ", "))
	}
	if r.Monster != nil {
		fmt.Fprintf(&b, "\nMonster here: %s (lvl %d)", r.Monster.Name, r.Monster.Level)
	}
	if len(r.Exits) > 0 {
		fmt.Fprintf(&b, "\nExits: %s", strings.Join(r.Directions(), ", "))
	}
	return b.String()
}

// Player is the single hero of a session.
type Player struct {
	Name      string
	HP        int
	Attack    int
	Inventory []Item
}

// Alive reports whether the player still has hit points left.
func (p *Player) Alive() bool {
	return p.HP > 0
}

// Monster occupies at most one room.
type Monster struct {
	Name  string `yaml:"name" validate:"required"`
	Level int    `yaml:"level" validate:"gte=0"`
	HP    int    `yaml:"hp" validate:"gt=0"`
}

// World owns every room; neighbors refer to each other by name.
type World struct {
	Start string
	rooms map[string]*Room
	order []string
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{rooms: make(map[string]*Room)}
}

// AddRoom stores room under its name. Names must be unique.
func (w *World) AddRoom(room *Room) error {
	if _, exists := w.rooms[room.Name]; exists {
		return fmt.Errorf("duplicate room %q", room.Name)
	}
	w.rooms[room.Name] = room
	w.order = append(w.order, room.Name)
	return nil
}

// Room looks up a room by name.
func (w *World) Room(name string) (*Room, bool) {
	r, ok := w.rooms[name]
	return r, ok
}

// Rooms returns all rooms in the order they were added.
func (w *World) Rooms() []*Room {
	out := make([]*Room, 0, len(w.order))
	for _, name := range w.order {
		out = append(out, w.rooms[name])
	}
	return out
}

// GameState is the mutable session: where the player is, who they are, and the score.
type GameState struct {
	World   *World
	Current string
	Player  *Player
	Score   int
}

// NewGameState places player in the world's start room.
func NewGameState(world *World, player *Player) (*GameState, error) {
	if _, ok := world.Room(world.Start); !ok {
		return nil, fmt.Errorf("start room %q not found", world.Start)
	}
	return &GameState{World: world, Current: world.Start, Player: player}, nil
}

// CurrentRoom resolves the room the player stands in.
func (s *GameState) CurrentRoom() *Room {
	r, _ := s.World.Room(s.Current)
	return r
}

// Neighbor returns the room reached from the current room via direction.
func (s *GameState) Neighbor(direction string) (*Room, bool) {
	name, ok := s.CurrentRoom().Exits[strings.ToLower(direction)]
	if !ok {
		return nil, false
	}
	return s.World.Room(name)
}

// MoveTo makes room the current room.
func (s *GameState) MoveTo(room *Room) {
	s.Current = room.Name
}
