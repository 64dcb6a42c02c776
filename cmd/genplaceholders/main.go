package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/tilewalk/internal/placeholders"
)

func main() {
	out := flag.String("out", "assets", "directory to write the assets to")
	prefix := flag.String("prefix", "misa", "character frame prefix")
	seed := flag.Int64("seed", placeholders.DefaultTownOptions().Seed, "town layout seed")
	flag.Parse()

	fmt.Println("tilewalk placeholder asset generator")
	fmt.Println("====================================")

	opts := placeholders.DefaultTownOptions()
	opts.Seed = *seed
	if err := placeholders.Generate(*prefix, opts).Save(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s, %s, %s and their images to %s\n",
		placeholders.MapFile, placeholders.TilesetFile, placeholders.AtlasFile, *out)
	fmt.Println("Run the game with: go run ./cmd/tilewalk")
}
