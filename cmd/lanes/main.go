// Command lanes is the osm2lanes CLI: transform tags to a Road and back,
// extract way tags from a .osm.pbf extract, batch-build a roadstore cache
// over a bounding box, render a Road as an ASCII cross-section, or run the
// HTTP API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "transform":
		err = runTransform(os.Args[2:])
	case "project":
		err = runProject(os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	case "batch":
		err = runBatch(os.Args[2:])
	case "diagram":
		err = runDiagram(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "lanes: unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lanes %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: lanes <command> [flags]

Commands:
  transform  Read OSM tags as JSON, print the assembled Road as JSON
  project    Read a Road as JSON, print the projected OSM tags as JSON
  extract    Pull one way's tags out of a .osm.pbf file
  batch      Transform every highway way in a bounding box into a roadstore cache
  diagram    Render a Road as an ASCII cross-section
  serve      Run the HTTP API (same as cmd/server)

Run "lanes <command> -h" for command-specific flags.`)
}
