// ring-state prints the three ring rotations and related state for an
// instant and location, for debugging the projection math from the
// command line.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/skywheel/almanac/internal/astro"
	"github.com/skywheel/almanac/pkg/almanac"
)

func main() {
	var (
		timeStr string
		lat     float64
		lng     float64
		name    string
	)
	flag.StringVar(&timeStr, "time", "", "UTC instant (RFC3339 format, e.g., 2024-06-21T12:00:00Z); defaults to now")
	flag.Float64Var(&lat, "lat", 45.0, "Latitude in degrees, north positive")
	flag.Float64Var(&lng, "lng", -93.0, "Longitude in degrees, east positive")
	flag.StringVar(&name, "name", "", "Location name for display")
	flag.Parse()

	t := time.Now().UTC()
	if timeStr != "" {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	provider := astro.NewProvider()
	engine, err := almanac.New(provider, provider, almanac.Location{
		Name:      name,
		Latitude:  lat,
		Longitude: lng,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap, err := engine.Snapshot(t)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Ring state for %s at (%.4f, %.4f)\n", t.Format(time.RFC3339), lat, lng)
	fmt.Printf("Solar ring\n")
	fmt.Printf("  Rotation:     %.2f°\n", snap.Solar.Rotation)
	printEvent := func(label string, at *time.Time) {
		if at == nil {
			fmt.Printf("  %-13s —\n", label+":")
			return
		}
		fmt.Printf("  %-13s %s\n", label+":", at.Format("15:04 MST"))
	}
	printEvent("Sunrise", snap.Solar.Events.Sunrise)
	printEvent("Solar noon", snap.Solar.Events.SolarNoon)
	printEvent("Sunset", snap.Solar.Events.Sunset)

	fmt.Printf("Lunar ring\n")
	fmt.Printf("  Rotation:     %.2f°\n", snap.Lunar.Rotation)
	fmt.Printf("  Phase:        %.4f (%s)\n", snap.Lunar.Phase, snap.Lunar.PhaseName)
	fmt.Printf("  Illumination: %.1f%%\n", snap.Lunar.Illumination*100)
	fmt.Printf("  Full moon:    %s\n", snap.Lunar.MoonName.Name)
	if snap.Lunar.BlueMoon {
		fmt.Printf("  Blue moon month\n")
	}

	fmt.Printf("Annual ring\n")
	fmt.Printf("  Rotation:     %.2f°\n", snap.Annual.Rotation)
	fmt.Printf("  Day of year:  %d\n", snap.Annual.DayOfYear)
	fmt.Printf("  Zodiac sign:  %s %s\n", snap.Annual.Sign.Name, snap.Annual.Sign.Symbol)

	if len(snap.Eclipses) > 0 {
		fmt.Printf("Eclipses visible this year\n")
		for _, e := range snap.Eclipses {
			fmt.Printf("  %02d-%02d  %s\n", e.Month, e.Day, e.Name)
		}
	}
	if snap.EclipseNote != "" {
		fmt.Printf("Eclipses: %s\n", snap.EclipseNote)
	}
}
