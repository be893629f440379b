package models

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Item kinds as they appear in world files and saves.
const (
	KindPotion = "Potion"
	KindKey    = "Key"
)

// Effect is what using an item did.
type Effect struct {
	Message  string
	Consumed bool // the used instance leaves the inventory
}

// Item is anything a room or the player can hold.
type Item interface {
	Name() string
	Kind() string
	Apply(s *GameState) (Effect, error)
	Spec() ItemSpec
}

// ItemSpec is the serializable form of an item.
type ItemSpec struct {
	Kind    string `yaml:"kind" validate:"required"`
	Name    string `yaml:"name" validate:"required"`
	Potency int    `yaml:"potency,omitempty" validate:"gte=0"`
}

var itemFactories = map[string]func(ItemSpec) Item{
	KindPotion: func(spec ItemSpec) Item { return &Potion{name: spec.Name, Potency: spec.Potency} },
	KindKey:    func(spec ItemSpec) Item { return &Key{name: spec.Name} },
}

// NewItem builds an item from its spec.
func NewItem(spec ItemSpec) (Item, error) {
	factory, ok := itemFactories[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown item kind %q", spec.Kind)
	}
	return factory(spec), nil
}

// Potion heals the player by a fixed amount and is used up.
type Potion struct {
	name    string
	Potency int
}

// NewPotion creates a potion healing potency hit points.
func NewPotion(name string, potency int) *Potion {
	return &Potion{name: name, Potency: potency}
}

func (p *Potion) Name() string { return p.name }
func (p *Potion) Kind() string { return KindPotion }

func (p *Potion) Spec() ItemSpec {
	return ItemSpec{Kind: KindPotion, Name: p.name, Potency: p.Potency}
}

func (p *Potion) Apply(s *GameState) (Effect, error) {
	s.Player.HP += p.Potency
	return Effect{
		Message:  fmt.Sprintf("You drink %s. HP: %d", p.name, s.Player.HP),
		Consumed: true,
	}, nil
}

// Key stays in the inventory; there is nothing for it to open yet.
type Key struct {
	name string
}

// NewKey creates a key.
func NewKey(name string) *Key {
	return &Key{name: name}
}

func (k *Key) Name() string { return k.name }
func (k *Key) Kind() string { return KindKey }

func (k *Key) Spec() ItemSpec {
	return ItemSpec{Kind: KindKey, Name: k.name}
}

func (k *Key) Apply(s *GameState) (Effect, error) {
	return Effect{Message: fmt.Sprintf("There is nothing to unlock with %s here.", k.name)}, nil
}

// SameName compares item names ignoring case, including non-ASCII letters.
func SameName(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

// FindItem returns the index of the first item named name, or -1.
func FindItem(items []Item, name string) int {
	for i, it := range items {
		if SameName(it.Name(), name) {
			return i
		}
	}
	return -1
}

// RemoveItem deletes the item at index i, keeping order.
func RemoveItem(items []Item, i int) []Item {
	return append(items[:i:i], items[i+1:]...)
}
