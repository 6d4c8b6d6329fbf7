package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"flight_router/pkg/airline"
	"flight_router/pkg/dataset"
	"flight_router/pkg/routing"
)

func main() {
	dataPath := flag.String("data", "airport_distances.csv", "Path to the city distance CSV")
	source := flag.String("source", "", "Departure city")
	dest := flag.String("dest", "", "Destination city")
	airlinesFlag := flag.String("airlines", "", "Comma-separated airlines (default: all supported)")
	noCompare := flag.Bool("no-compare", false, "Skip the all-airlines comparison")
	flag.Parse()

	if *source == "" || *dest == "" {
		fmt.Fprintln(os.Stderr, "both -source and -dest are required")
		flag.Usage()
		os.Exit(2)
	}

	table, err := dataset.Load(*dataPath)
	if err != nil {
		log.Fatalf("Failed to load city data: %v", err)
	}

	var selected []string
	if *airlinesFlag != "" {
		for _, name := range strings.Split(*airlinesFlag, ",") {
			if name = strings.TrimSpace(name); name != "" {
				selected = append(selected, name)
			}
		}
	}

	service := routing.NewService(table)
	plan, err := service.Plan(context.Background(), *source, *dest, selected, !*noCompare)
	if err != nil {
		switch {
		case errors.Is(err, airline.ErrUnsupportedAirline):
			log.Fatalf("%v (supported: %s)", err, strings.Join(airline.Supported(), ", "))
		case errors.Is(err, routing.ErrUnknownCity):
			log.Fatalf("%v", err)
		case errors.Is(err, routing.ErrNoRoute):
			if len(selected) == 0 {
				selected = airline.Supported()
			}
			fmt.Printf("No route from %s to %s with airlines: %s\n",
				*source, *dest, strings.Join(selected, ", "))
			os.Exit(1)
		default:
			log.Fatalf("Route query failed: %v", err)
		}
	}

	printPlan(*source, *dest, plan)
}

func printPlan(source, dest string, plan *routing.Plan) {
	fmt.Printf("Route: %s -> %s\n", source, dest)
	fmt.Printf("Airlines: %s\n\n", strings.Join(plan.Airlines, ", "))

	fmt.Printf("Path: %s\n", strings.Join(plan.Route.Cities, " -> "))
	fmt.Printf("Total distance: %.2f km\n\n", plan.Route.TotalKm)

	for i, leg := range plan.Route.Legs {
		fmt.Printf("  Leg %d: %s -> %s (%s)\n", i+1, leg.From, leg.To, leg.Airline)
	}

	if plan.Comparison != nil {
		fmt.Printf("\nAll-airlines route: %s (%.2f km)\n",
			strings.Join(plan.Comparison.Cities, " -> "), plan.Comparison.TotalKm)
		if plan.Comparison.DifferenceKm > 0 {
			fmt.Printf("Your selection adds %.2f km\n", plan.Comparison.DifferenceKm)
		} else {
			fmt.Println("Your selection already matches the shortest possible route")
		}
	}
}
