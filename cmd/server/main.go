package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"flight_router/pkg/api"
	"flight_router/pkg/dataset"
	"flight_router/pkg/routing"
)

func main() {
	dataPath := flag.String("data", "airport_distances.csv", "Path to the city distance CSV")
	port := flag.Int("port", 8080, "HTTP port")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	flag.Parse()

	start := time.Now()

	log.Printf("Loading cities from %s...", *dataPath)
	table, err := dataset.Load(*dataPath)
	if err != nil {
		log.Fatalf("Failed to load city data: %v", err)
	}
	log.Printf("Loaded %d cities", table.Len())

	service := routing.NewService(table)
	index := routing.NewCityIndex(table)

	log.Printf("Ready in %s", time.Since(start).Round(time.Millisecond))

	addr := fmt.Sprintf(":%d", *port)
	cfg := api.DefaultConfig(addr)
	cfg.CORSOrigin = *corsOrigin

	handlers := api.NewHandlers(service, table, index)
	srv := api.NewServer(cfg, handlers)

	if err := api.ListenAndServe(srv); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
