package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/dungeon-mini/internal/app"
	"github.com/tatianab/dungeon-mini/internal/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// app.Run has released the terminal, save store and scoreboard by the time it returns.
	os.Exit(app.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr))
}
