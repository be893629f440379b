package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/dungeon-mini/internal/app"
	"github.com/tatianab/dungeon-mini/internal/config"
)

// The root binary always opens the full-screen UI; cmd/game honors DUNGEON_UI.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	cfg.UI = config.UITUI
	os.Exit(app.Run(context.Background(), cfg, os.Stdin, os.Stdout, os.Stderr))
}
