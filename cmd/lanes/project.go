package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"osm2lanes/pkg/config"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/transform"
)

func runProject(args []string) error {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	in := fs.String("in", "-", "Input Road JSON file (- for stdin)")
	out := fs.String("out", "-", "Output tags JSON file (- for stdout)")
	original := fs.String("original", "", "Optional original tags JSON file, passed through for unrecognized keys")
	country := fs.String("locale", "", "ISO-3166 alpha-2 country code (required)")
	subdivision := fs.String("subdivision", "", "Optional subdivision code (e.g. a US state)")
	side := fs.String("side", "auto", "Driving side: left, right, or auto (infer from --locale)")
	fs.Parse(args)

	loc, err := parseLocale(*country, *subdivision, *side)
	if err != nil {
		return err
	}

	raw, err := readInput(*in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	var road lanes.Road
	if err := json.Unmarshal(raw, &road); err != nil {
		return fmt.Errorf("decode road JSON: %w", err)
	}

	var originalTags map[string]string
	if *original != "" {
		b, err := os.ReadFile(*original)
		if err != nil {
			return fmt.Errorf("read --original: %w", err)
		}
		if err := json.Unmarshal(b, &originalTags); err != nil {
			return fmt.Errorf("decode --original JSON: %w", err)
		}
	}

	tagMap, ds := transform.LanesToTags(road, loc, config.Default(), originalTags)
	for _, d := range ds {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", d.Severity, d.Code, d.Message)
	}

	body, err := json.MarshalIndent(tagMap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tags JSON: %w", err)
	}
	return writeOutput(*out, body)
}
