package models

import (
	"context"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func testState(t *testing.T) *GameState {
	t.Helper()

	square := NewRoom("Square", "A stone square with a fountain.")
	forest := NewRoom("Forest", "Rustling leaves and birdsong.")
	square.Connect("north", forest)
	forest.Connect("south", square)
	forest.Items = append(forest.Items, NewPotion("Small Potion", 5))
	forest.Monster = &Monster{Name: "Wolf", Level: 1, HP: 8}

	world := NewWorld()
	world.Start = square.Name
	for _, r := range []*Room{square, forest} {
		if err := world.AddRoom(r); err != nil {
			t.Fatalf("AddRoom(%s): %v", r.Name, err)
		}
	}

	state, err := NewGameState(world, &Player{Name: "Hero", HP: 20, Attack: 5})
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	return state
}

func TestNeighborFollowsCycle(t *testing.T) {
	state := testState(t)

	forest, ok := state.Neighbor("NORTH")
	if !ok {
		t.Fatalf("Expected a north exit from %s", state.Current)
	}
	state.MoveTo(forest)

	square, ok := state.Neighbor("south")
	if !ok {
		t.Fatalf("Expected a south exit from %s", state.Current)
	}
	state.MoveTo(square)

	if state.Current != "Square" {
		t.Errorf("Expected to be back in Square, got %s", state.Current)
	}
	if _, ok := state.Neighbor("west"); ok {
		t.Errorf("Expected no west exit from Square")
	}
}

func TestAddRoomRejectsDuplicates(t *testing.T) {
	world := NewWorld()
	if err := world.AddRoom(NewRoom("Cave", "Dark.")); err != nil {
		t.Fatalf("AddRoom: %v", err)
	}
	if err := world.AddRoom(NewRoom("Cave", "Still dark.")); err == nil {
		t.Errorf("Expected an error for a duplicate room")
	}
}

func TestFindItemFoldsCase(t *testing.T) {
	items := []Item{NewKey("Rusty Key"), NewPotion("Малое зелье", 5), NewPotion("малое ЗЕЛЬЕ", 3)}

	if i := FindItem(items, "МАЛОЕ зелье"); i != 1 {
		t.Errorf("Expected first matching potion at index 1, got %d", i)
	}
	if i := FindItem(items, "rusty key"); i != 0 {
		t.Errorf("Expected key at index 0, got %d", i)
	}
	if i := FindItem(items, "sword"); i != -1 {
		t.Errorf("Expected -1 for a missing item, got %d", i)
	}

	rest := RemoveItem(items, 1)
	if len(rest) != 2 || rest[1].Name() != "малое ЗЕЛЬЕ" {
		t.Errorf("Unexpected items after removal: %v", rest)
	}
	if items[1].Name() != "Малое зелье" {
		t.Errorf("RemoveItem must not modify the original slice")
	}
}

func TestPotionApply(t *testing.T) {
	state := testState(t)
	potion := NewPotion("Small Potion", 5)

	effect, err := potion.Apply(state)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !effect.Consumed {
		t.Errorf("Expected potion to be consumed")
	}
	if state.Player.HP != 25 {
		t.Errorf("Expected HP 25, got %d", state.Player.HP)
	}
}

func TestNewItemUnknownKind(t *testing.T) {
	if _, err := NewItem(ItemSpec{Kind: "Sword", Name: "Blade"}); err == nil {
		t.Errorf("Expected an error for an unknown item kind")
	}
}

func TestSnapshotYAML(t *testing.T) {
	state := testState(t)
	forest, _ := state.World.Room("Forest")
	state.MoveTo(forest)
	state.Player.Inventory = append(state.Player.Inventory, forest.Items[0])
	forest.Items = nil
	forest.Monster.HP = 3
	state.Score = 4

	data, err := yaml.Marshal(state.Snapshot())
	if err != nil {
		t.Fatalf("Failed to marshal snapshot: %v", err)
	}

	restored := testState(t)
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		t.Fatalf("Failed to unmarshal snapshot: %v", err)
	}
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.Current != "Forest" {
		t.Errorf("Expected current room Forest, got %s", restored.Current)
	}
	if restored.Score != 4 {
		t.Errorf("Expected score 4, got %d", restored.Score)
	}
	if len(restored.Player.Inventory) != 1 || restored.Player.Inventory[0].Kind() != KindPotion {
		t.Errorf("Expected one potion in inventory, got %v", restored.Player.Inventory)
	}
	room := restored.CurrentRoom()
	if len(room.Items) != 0 {
		t.Errorf("Expected forest to be empty, got %d items", len(room.Items))
	}
	if room.Monster == nil || room.Monster.HP != 3 {
		t.Errorf("Expected wounded wolf, got %+v", room.Monster)
	}
}

func TestRestoreRejectsUnknownRoom(t *testing.T) {
	state := testState(t)
	snap := state.Snapshot()
	snap.Current = "Moon"

	if err := state.Restore(snap); err == nil {
		t.Fatalf("Expected an error for an unknown room")
	}
	if state.Current != "Square" {
		t.Errorf("Failed restore must leave the state alone, got room %s", state.Current)
	}
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"missing room", func(s *Snapshot) { s.Rooms = s.Rooms[:1] }},
		{"duplicate room", func(s *Snapshot) { s.Rooms = append(s.Rooms, s.Rooms[0]) }},
		{"no attack", func(s *Snapshot) { s.Player.Attack = 0 }},
		{"dead player", func(s *Snapshot) { s.Player.HP = 0 }},
		{"nameless player", func(s *Snapshot) { s.Player.Name = "" }},
		{"dead monster", func(s *Snapshot) { s.Rooms[1].Monster.HP = 0 }},
		{"nameless item", func(s *Snapshot) { s.Rooms[1].Items[0].Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := testState(t)
			state.Score = 2
			snap := state.Snapshot()
			snap.Score = 9
			tt.mutate(&snap)

			if err := state.Restore(snap); err == nil {
				t.Fatalf("Expected Restore to fail")
			}
			forest, _ := state.World.Room("Forest")
			if state.Score != 2 || len(forest.Items) != 1 || forest.Monster == nil || forest.Monster.HP != 8 {
				t.Errorf("Failed restore must leave the state alone")
			}
		})
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir(), "current")

	if _, err := store.Restore(ctx); !errors.Is(err, ErrNoSave) {
		t.Fatalf("Expected ErrNoSave before the first save, got %v", err)
	}

	state := testState(t)
	state.Score = 7
	if err := store.Persist(ctx, state.Snapshot()); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	snap, err := store.Restore(ctx)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if snap.Score != 7 || snap.Current != "Square" || snap.Player.Name != "Hero" {
		t.Errorf("Unexpected snapshot: %+v", snap)
	}
}
