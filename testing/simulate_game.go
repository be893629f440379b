package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tatianab/dungeon-mini/internal/engine"
	"github.com/tatianab/dungeon-mini/internal/world"
)

const maxTurns = 50

// walkthrough visits every room, picks up everything and beats the wolf.
var walkthrough = []string{
	"look",
	"move north",
	"take Small Potion",
	"fight",
	"use small potion",
	"move east",
	"take rusty key",
	"inventory",
	"use rusty key",
	"move west",
	"move south",
	"exit",
}

func main() {
	worldFile := flag.String("world", "", "YAML world definition (default: built-in world)")
	script := flag.String("script", "", "file with one command per line (default: built-in walkthrough)")
	flag.Parse()

	ctx := context.Background()

	state, err := world.Load(*worldFile)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	actions := walkthrough
	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
		actions = strings.Split(strings.TrimSpace(string(data)), "\n")
	}

	var out bytes.Buffer
	eng := engine.New(state, engine.Options{Out: &out})

	fmt.Printf("Start: %s\n\n", state.CurrentRoom().Describe())
	for turn, action := range actions {
		if turn >= maxTurns {
			fmt.Println("Turn limit reached.")
			break
		}
		fmt.Printf("--- Turn %d ---\n", turn+1)
		fmt.Printf("Player Action: %s\n", action)

		out.Reset()
		outcome := eng.Execute(ctx, action)
		fmt.Print(out.String())

		player := eng.State().Player
		fmt.Printf("Stats: Room=%s, HP=%d, Score=%d, Inventory=%d items\n\n",
			eng.State().Current, player.HP, eng.State().Score, len(player.Inventory))

		if outcome.Status == engine.StatusDefeat {
			fmt.Println("Game Ended: Player Lost!")
			os.Exit(engine.ExitDefeat)
		}
		if outcome.Status == engine.StatusExit {
			fmt.Println("Game Ended: Player quit.")
			break
		}
	}
}
