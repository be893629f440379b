// Package world builds the playable world from a YAML definition.
package world

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/tatianab/dungeon-mini/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultWorld []byte

// Definition is the on-disk shape of a world.
type Definition struct {
	Start  string    `yaml:"start" validate:"required"`
	Player PlayerDef `yaml:"player"`
	Rooms  []RoomDef `yaml:"rooms" validate:"required,min=1,dive"`
}

// PlayerDef describes the hero at the start of a game.
type PlayerDef struct {
	Name   string `yaml:"name" validate:"required"`
	HP     int    `yaml:"hp" validate:"gt=0"`
	Attack int    `yaml:"attack" validate:"gt=0"`
}

// RoomDef describes one room and what it initially contains.
type RoomDef struct {
	Name        string            `yaml:"name" validate:"required"`
	Description string            `yaml:"description"`
	Exits       map[string]string `yaml:"exits" validate:"dive,keys,required,endkeys,required"`
	Items       []models.ItemSpec `yaml:"items" validate:"dive"`
	Monster     *models.Monster   `yaml:"monster"`
}

var validate = validator.New()

// Parse decodes and validates a world definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode world: %w", err)
	}
	if err := validate.Struct(&def); err != nil {
		return nil, fmt.Errorf("invalid world: %w", err)
	}
	return &def, nil
}

// Build creates a fresh game state from the definition.
func (d *Definition) Build() (*models.GameState, error) {
	w := models.NewWorld()
	w.Start = d.Start

	for _, rd := range d.Rooms {
		room := models.NewRoom(rd.Name, rd.Description)
		for _, spec := range rd.Items {
			it, err := models.NewItem(spec)
			if err != nil {
				return nil, fmt.Errorf("room %q: %w", rd.Name, err)
			}
			room.Items = append(room.Items, it)
		}
		if rd.Monster != nil {
			m := *rd.Monster
			room.Monster = &m
		}
		if err := w.AddRoom(room); err != nil {
			return nil, err
		}
	}

	// Exits are wired once every room exists, so rooms may point forward.
	for _, rd := range d.Rooms {
		room, _ := w.Room(rd.Name)
		for dir, target := range rd.Exits {
			neighbor, ok := w.Room(target)
			if !ok {
				return nil, fmt.Errorf("room %q: exit %s leads to unknown room %q", rd.Name, dir, target)
			}
			room.Connect(dir, neighbor)
		}
	}

	player := &models.Player{
		Name:   d.Player.Name,
		HP:     d.Player.HP,
		Attack: d.Player.Attack,
	}
	return models.NewGameState(w, player)
}

// Default returns a new game in the built-in sample world.
func Default() (*models.GameState, error) {
	def, err := Parse(defaultWorld)
	if err != nil {
		return nil, err
	}
	return def.Build()
}

// Load builds a game from the world file at path, or the built-in world when path is empty.
func Load(path string) (*models.GameState, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world file: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return def.Build()
}
