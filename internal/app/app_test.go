package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/dungeon-mini/internal/config"
	"github.com/tatianab/dungeon-mini/internal/engine"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		SaveDir:   filepath.Join(dir, "saves"),
		SaveSlot:  "current",
		ScoreDB:   filepath.Join(dir, "saves", "scores.db"),
		UI:        config.UIConsole,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

func play(t *testing.T, cfg *config.Config, input string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), cfg, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSavesAndKeepsScores(t *testing.T) {
	cfg := testConfig(t)
	cfg.PlayerName = "Olga"

	code, out, errOut := play(t, cfg, "move north\ntake Small Potion\nsave\nexit\n")

	assert.Equal(t, engine.ExitOK, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Game saved.")
	assert.FileExists(t, filepath.Join(cfg.SaveDir, "current", "state.yaml"))

	code, out, _ = play(t, cfg, "load\ninventory\nscores\n")

	assert.Equal(t, engine.ExitOK, code)
	assert.Contains(t, out, "Game loaded.\nForest:")
	assert.Contains(t, out, "- Potion (1): Small Potion")
	// save recorded 2, exit recorded 3
	assert.Contains(t, out, "Top scores:\n1. Olga: 3\n2. Olga: 2\n")
}

func TestRunDeathExitCode(t *testing.T) {
	cfg := testConfig(t)
	cfg.WorldFile = filepath.Join(t.TempDir(), "world.yaml")
	def := `start: Pit
player: {name: Hero, hp: 2, attack: 1}
rooms:
  - name: Pit
    description: No way out.
    monster: {name: Ogre, level: 5, hp: 50}
`
	require.NoError(t, os.WriteFile(cfg.WorldFile, []byte(def), 0644))

	code, out, _ := play(t, cfg, "fight\nlook\n")

	assert.Equal(t, engine.ExitDefeat, code)
	assert.True(t, strings.HasSuffix(out, "You died!\n"))
}

func TestRunBadWorldFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.WorldFile = filepath.Join(t.TempDir(), "missing.yaml")

	code, out, errOut := play(t, cfg, "look\n")

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error loading world")
}

func TestRunWithoutScoreboard(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	cfg.ScoreDB = filepath.Join(blocker, "scores.db")

	code, out, errOut := play(t, cfg, "scores\nlook\n")

	assert.Equal(t, engine.ExitOK, code)
	assert.Contains(t, out, "Unexpected error: ")
	assert.Contains(t, out, "Square:")
	assert.Contains(t, errOut, "scoreboard unavailable")
}
