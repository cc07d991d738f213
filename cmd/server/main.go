package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"osm2lanes/pkg/api"
	"osm2lanes/pkg/config"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	noSeparators := flag.Bool("no-separators", false, "Omit separator lanes from transform responses")
	noShoulders := flag.Bool("no-shoulders", false, "Never add a default shoulder lane")
	strict := flag.Bool("strict", false, "Promote the first warning diagnostic to an aborting error")
	flag.Parse()

	cfg := config.Default()
	cfg.IncludeSeparators = !*noSeparators
	cfg.IncludeShoulders = !*noShoulders
	cfg.ErrorOnWarnings = *strict

	addr := fmt.Sprintf(":%d", *port)
	srvCfg := api.DefaultConfig(addr)
	srvCfg.CORSOrigin = *corsOrigin

	handlers := api.NewHandlers(cfg)
	srv := api.NewServer(srvCfg, handlers)

	log.Printf("osm2lanes API ready (separators=%v shoulders=%v strict=%v)",
		cfg.IncludeSeparators, cfg.IncludeShoulders, cfg.ErrorOnWarnings)

	if err := api.ListenAndServe(srv); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}
