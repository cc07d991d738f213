package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"osm2lanes/internal/collaborators/fetch"
	"osm2lanes/pkg/config"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/roadstore"
	"osm2lanes/pkg/transform"
)

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	pbf := fs.String("pbf", "", "Path to a .osm.pbf file (required)")
	bboxStr := fs.String("bbox", "", "Bounding box minLat,minLon,maxLat,maxLon (required)")
	out := fs.String("out", "roads.bin", "Output roadstore cache path")
	country := fs.String("locale", "", "ISO-3166 alpha-2 country code (required)")
	subdivision := fs.String("subdivision", "", "Optional subdivision code")
	side := fs.String("side", "auto", "Driving side: left, right, or auto")
	fs.Parse(args)

	if *pbf == "" || *bboxStr == "" {
		return fmt.Errorf("--pbf and --bbox are required")
	}
	loc, err := parseLocale(*country, *subdivision, *side)
	if err != nil {
		return err
	}

	var bbox fetch.BBox
	if _, err := fmt.Sscanf(*bboxStr, "%f,%f,%f,%f", &bbox.MinLat, &bbox.MinLon, &bbox.MaxLat, &bbox.MaxLon); err != nil {
		return fmt.Errorf("invalid --bbox (want minLat,minLon,maxLat,maxLon): %w", err)
	}

	f, err := os.Open(*pbf)
	if err != nil {
		return fmt.Errorf("open --pbf: %w", err)
	}
	defer f.Close()

	log.Printf("scanning %s for ways in bbox %+v...", *pbf, bbox)
	ways, err := fetch.FetchBBox(context.Background(), f, bbox)
	if err != nil {
		return fmt.Errorf("fetch bbox: %w", err)
	}
	log.Printf("found %d ways", len(ways))

	cfg := config.Default()
	roads := make(map[int64]lanes.Road, len(ways))
	skipped := 0
	for _, w := range ways {
		road, _, err := transform.TagsToLanes(w.Tags, loc, cfg)
		if err != nil {
			skipped++
			continue
		}
		roads[w.ID] = road
	}
	if skipped > 0 {
		log.Printf("skipped %d ways that failed to transform", skipped)
	}

	if err := roadstore.Write(*out, roads); err != nil {
		return fmt.Errorf("write roadstore: %w", err)
	}
	log.Printf("wrote %d roads to %s", len(roads), *out)
	return nil
}
