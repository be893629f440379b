package models

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSaveDir is used when no save directory is configured.
const DefaultSaveDir = ".saves"

const stateFile = "state.yaml"

// ErrNoSave is returned by Restore when the slot has never been written.
var ErrNoSave = errors.New("no saved game found")

// FileStore keeps one save slot as YAML under Dir/Slot.
type FileStore struct {
	Dir  string
	Slot string
}

// NewFileStore returns a store for the named slot.
func NewFileStore(dir, slot string) *FileStore {
	if dir == "" {
		dir = DefaultSaveDir
	}
	return &FileStore{Dir: dir, Slot: slot}
}

func (st *FileStore) path() string {
	return filepath.Join(st.Dir, st.Slot, stateFile)
}

// Persist writes snap to the slot, replacing any previous save.
func (st *FileStore) Persist(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Join(st.Dir, st.Slot)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	// Write then rename so a failed save never clobbers the last good one.
	tmp := st.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmp, st.path()); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// Restore reads the slot back.
func (st *FileStore) Restore(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	data, err := os.ReadFile(st.path())
	if errors.Is(err, os.ErrNotExist) {
		return Snapshot{}, ErrNoSave
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("read save: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode save: %w", err)
	}
	return snap, nil
}
