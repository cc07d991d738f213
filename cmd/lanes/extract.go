package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"osm2lanes/internal/collaborators/fetch"
)

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	pbf := fs.String("pbf", "", "Path to a .osm.pbf file (required)")
	wayID := fs.Int64("way", 0, "OSM way ID to extract (required)")
	out := fs.String("out", "-", "Output tags JSON file (- for stdout)")
	fs.Parse(args)

	if *pbf == "" || *wayID == 0 {
		return fmt.Errorf("--pbf and --way are required")
	}

	f, err := os.Open(*pbf)
	if err != nil {
		return fmt.Errorf("open --pbf: %w", err)
	}
	defer f.Close()

	way, err := fetch.FetchWay(context.Background(), f, *wayID)
	if err != nil {
		return err
	}

	body, err := json.MarshalIndent(way.Tags, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tags JSON: %w", err)
	}
	return writeOutput(*out, body)
}
