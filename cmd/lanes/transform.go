package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"osm2lanes/pkg/config"
	"osm2lanes/pkg/transform"
)

func runTransform(args []string) error {
	fs := flag.NewFlagSet("transform", flag.ExitOnError)
	in := fs.String("in", "-", "Input tags JSON file (- for stdin)")
	out := fs.String("out", "-", "Output Road JSON file (- for stdout)")
	country := fs.String("locale", "", "ISO-3166 alpha-2 country code (required)")
	subdivision := fs.String("subdivision", "", "Optional subdivision code (e.g. a US state)")
	side := fs.String("side", "auto", "Driving side: left, right, or auto (infer from --locale)")
	strict := fs.Bool("strict", false, "Promote the first warning diagnostic to an aborting error")
	noSeparators := fs.Bool("no-separators", false, "Omit separator lanes from the output Road")
	noShoulders := fs.Bool("no-shoulders", false, "Never add a default shoulder lane")
	fs.Parse(args)

	loc, err := parseLocale(*country, *subdivision, *side)
	if err != nil {
		return err
	}

	raw, err := readInput(*in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	var tags map[string]string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return fmt.Errorf("decode tags JSON: %w", err)
	}

	cfg := config.Default()
	cfg.ErrorOnWarnings = *strict
	cfg.IncludeSeparators = !*noSeparators
	cfg.IncludeShoulders = !*noShoulders

	road, ds, err := transform.TagsToLanes(tags, loc, cfg)
	if err != nil {
		return err
	}
	for _, d := range ds {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", d.Severity, d.Code, d.Message)
	}

	body, err := json.MarshalIndent(road, "", "  ")
	if err != nil {
		return fmt.Errorf("encode road JSON: %w", err)
	}
	return writeOutput(*out, body)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, body []byte) error {
	body = append(body, '\n')
	if path == "-" {
		_, err := os.Stdout.Write(body)
		return err
	}
	return os.WriteFile(path, body, 0o644)
}
