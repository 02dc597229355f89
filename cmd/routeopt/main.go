package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"routeopt/internal/cities"
	"routeopt/internal/geo"
	"routeopt/internal/geocode"
	"routeopt/internal/model"
	"routeopt/internal/opt"
	"routeopt/internal/store"
)

// Interactive route planner: build a city list (geocoding names as
// needed), pick a starting city, solve, and optionally export CSVs.

func main() {
	var (
		listPath = flag.String("list", "city_list.csv", "city list CSV path")
		outPath  = flag.String("out", "route_output.csv", "route export CSV path")
		unit     = flag.String("unit", "mi", "distance unit (km or mi)")
		algo     = flag.String("algo", opt.AlgoAuto, "algorithm (auto, nearest-neighbor, brute-force)")
		open     = flag.Bool("open", false, "leave the tour open instead of returning to start")
		twoOpt   = flag.Bool("two-opt", false, "refine heuristic tours with 2-opt")
		maxExact = flag.Int("max-exact", 0, "largest instance solved exactly (0 = default)")
	)
	flag.Parse()

	u := geo.Unit(*unit)
	if !u.Valid() {
		log.Fatalf("unknown unit %q (want km or mi)", *unit)
	}

	in := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to the Offline Route Optimizer!")

	places := buildCityList(in, *listPath)
	if len(places) < 2 {
		fmt.Println("You need at least 2 cities.")
		return
	}

	start := pickStart(in, places)

	points := make([]geo.Point, len(places))
	for i, p := range places {
		points[i] = p.Point()
	}
	res, err := opt.Solve(points, opt.Options{
		Algorithm:   *algo,
		Start:       start,
		Open:        *open,
		Unit:        u,
		MaxExact:    *maxExact,
		TwoOptIters: twoOptIters(*twoOpt),
	})
	if err != nil {
		log.Fatalf("solve: %v", err)
	}

	legs := opt.Legs(points, res.Order, !res.Open, res.Unit)
	printRoute(res, legs)
	fmt.Printf("\nEstimated Total Distance: %.1f %s\n", res.Total, res.Unit)

	if askYes(in, "Save results to CSV? (y/n): ") {
		route := model.RouteResult{
			Algorithm: res.Algorithm,
			Exact:     res.Exact,
			Order:     res.Names(points),
			Legs:      make([]model.Leg, len(legs)),
			Total:     res.Total,
			Unit:      string(res.Unit),
		}
		for i, l := range legs {
			route.Legs[i] = model.Leg{From: l.From, To: l.To, Distance: l.Distance}
		}
		if err := store.WriteRouteCSV(*outPath, route); err != nil {
			log.Fatalf("write %s: %v", *outPath, err)
		}
		fmt.Printf("Saved as %s\n", *outPath)
	}
}

func twoOptIters(enabled bool) int {
	if enabled {
		return 5
	}
	return 0
}

// buildCityList runs the add/remove menu loop, geocoding new names
// through the cached geocoder.
func buildCityList(in *bufio.Scanner, listPath string) []model.Place {
	cache, err := geocode.NewCacheFromEnv()
	if err != nil {
		log.Fatalf("geocode cache: %v", err)
	}
	coder := &geocode.Cached{
		Upstream: geocode.NewNominatim(""),
		Cache:    cache,
	}

	var places []model.Place
	if _, err := os.Stat(listPath); err == nil {
		if prompt(in, "1. New List\n2. Load Saved List\nChoose: ") == "2" {
			loaded, err := store.ReadCityListCSV(listPath)
			if err != nil {
				fmt.Printf("could not load %s: %v\n", listPath, err)
			} else {
				places = loaded
				fmt.Println("Loaded saved city list.")
			}
		}
	}

	for {
		fmt.Println("\nCurrent City List:")
		for i, p := range places {
			fmt.Printf("%d. %s\n", i+1, p.Name)
		}
		switch prompt(in, "1. Add City\n2. Add Built-in City\n3. Remove City\n4. Continue\nChoose: ") {
		case "1":
			name := prompt(in, "Enter city (City, State): ")
			if name == "" {
				continue
			}
			lat, lng, err := coder.Geocode(context.Background(), name)
			if err != nil {
				fmt.Printf("Could not geocode %q: %v\n", name, err)
				continue
			}
			places = append(places, model.Place{Name: name, Lat: lat, Lng: lng})
			fmt.Printf("Added %s → (%.6f, %.6f)\n", name, lat, lng)

		case "2":
			table, err := cities.Default()
			if err != nil {
				fmt.Printf("built-in city table: %v\n", err)
				continue
			}
			for i, c := range table {
				fmt.Printf("%d. %s\n", i+1, c.Name)
			}
			if i, ok := pickIndex(in, "Enter city number: ", len(table)); ok {
				places = append(places, table[i])
				fmt.Printf("Added %s\n", table[i].Name)
			}

		case "3":
			if i, ok := pickIndex(in, "Enter city number to remove: ", len(places)); ok {
				removed := places[i]
				places = append(places[:i], places[i+1:]...)
				fmt.Printf("Removed %s\n", removed.Name)
			}

		case "4":
			if askYes(in, fmt.Sprintf("Save this list to %s? (y/n): ", listPath)) {
				if err := store.WriteCityListCSV(listPath, places); err != nil {
					fmt.Printf("could not save: %v\n", err)
				} else {
					fmt.Println("City list saved.")
				}
			}
			return places

		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func pickStart(in *bufio.Scanner, places []model.Place) int {
	fmt.Println("\nSelect starting city:")
	for i, p := range places {
		fmt.Printf("%d. %s\n", i+1, p.Name)
	}
	for {
		if i, ok := pickIndex(in, "Enter number: ", len(places)); ok {
			return i
		}
		fmt.Println("Invalid selection.")
	}
}

func printRoute(res opt.Result, legs []opt.Leg) {
	label := "Nearest Neighbor Approximation"
	if res.Exact {
		label = "Exact"
	}
	fmt.Printf("\nOptimal Route (%s):\n", label)
	fmt.Printf("%-25s | %-25s | %14s\n", "City A", "City B", fmt.Sprintf("Distance (%s)", res.Unit))
	fmt.Println(strings.Repeat("-", 70))
	for _, l := range legs {
		fmt.Printf("%-25s | %-25s | %14.1f\n", truncate(l.From, 25), truncate(l.To, 25), l.Distance)
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func prompt(in *bufio.Scanner, msg string) string {
	fmt.Print(msg)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func askYes(in *bufio.Scanner, msg string) bool {
	return strings.EqualFold(prompt(in, msg), "y")
}

// pickIndex reads a 1-based selection and returns it 0-based.
func pickIndex(in *bufio.Scanner, msg string, n int) (int, bool) {
	s := prompt(in, msg)
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > n {
		if err != nil {
			fmt.Println("Please enter a number.")
		} else {
			fmt.Println("Invalid index.")
		}
		return 0, false
	}
	return v - 1, true
}
