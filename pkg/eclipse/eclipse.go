// Package eclipse answers which solar and lunar eclipses are visible
// from a location in a given year, from an embedded dataset of NASA
// eclipse paths (https://eclipse.gsfc.nasa.gov/eclipse.html).
//
// Visibility is coarse on purpose: solar eclipses match against the
// path's bounding box or a hemisphere, lunar eclipses against wide
// longitude bands, since the ring only needs to decide whether an
// eclipse marker is worth drawing at all.
package eclipse

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// Kind distinguishes solar from lunar eclipses.
type Kind string

const (
	Solar Kind = "solar-eclipse"
	Lunar Kind = "lunar-eclipse"
)

// Region is one visibility region of an eclipse. Path regions carry a
// latitude/longitude bounding box; hemisphere regions name either
// "north"/"south" (solar) or a longitude band (lunar).
type Region struct {
	Type       string  `json:"type"`
	Hemisphere string  `json:"hemisphere,omitempty"`
	MinLat     float64 `json:"minLat,omitempty"`
	MaxLat     float64 `json:"maxLat,omitempty"`
	MinLng     float64 `json:"minLng,omitempty"`
	MaxLng     float64 `json:"maxLng,omitempty"`
}

// Record is one eclipse in the dataset.
type Record struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Month       int      `json:"month"`
	Day         int      `json:"day"`
	Color       string   `json:"color"`
	Kind        Kind     `json:"type"`
	Extent      string   `json:"eclipseType"`
	VisibleFrom []Region `json:"visibleFrom"`
}

// ErrYearNotCovered is returned by VisibleFrom for years outside the
// embedded dataset, so callers can tell "no eclipses visible" apart
// from "no data".
var ErrYearNotCovered = errors.New("no eclipse data for year")

//go:embed eclipses.json
var rawDataset []byte

var (
	datasetOnce sync.Once
	dataset     map[int][]Record
	datasetErr  error
)

func loadDataset() (map[int][]Record, error) {
	datasetOnce.Do(func() {
		var byYear map[string][]Record
		if err := json.Unmarshal(rawDataset, &byYear); err != nil {
			datasetErr = fmt.Errorf("parsing embedded eclipse dataset: %v", err)
			return
		}
		dataset = make(map[int][]Record, len(byYear))
		for y, recs := range byYear {
			year, err := strconv.Atoi(y)
			if err != nil {
				datasetErr = fmt.Errorf("bad year key %q in eclipse dataset", y)
				return
			}
			dataset[year] = recs
		}
	})
	return dataset, datasetErr
}

// Years returns the years the dataset covers, ascending.
func Years() []int {
	ds, err := loadDataset()
	if err != nil {
		return nil
	}
	years := make([]int, 0, len(ds))
	for y := range ds {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// VisibleFrom returns the eclipses of the given year visible from the
// location, in dataset order. A year outside the dataset yields an
// empty slice and an error wrapping ErrYearNotCovered.
func VisibleFrom(year int, latitude, longitude float64) ([]Record, error) {
	ds, err := loadDataset()
	if err != nil {
		return nil, err
	}

	recs, ok := ds[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d (dataset covers %v)", ErrYearNotCovered, year, Years())
	}

	var visible []Record
	for _, r := range recs {
		switch r.Kind {
		case Solar:
			if solarVisible(r, latitude, longitude) {
				visible = append(visible, r)
			}
		case Lunar:
			if lunarVisible(r, longitude) {
				visible = append(visible, r)
			}
		}
	}
	return visible, nil
}

func solarVisible(r Record, latitude, longitude float64) bool {
	for _, region := range r.VisibleFrom {
		switch region.Type {
		case "path":
			if latitude >= region.MinLat && latitude <= region.MaxLat &&
				longitude >= region.MinLng && longitude <= region.MaxLng {
				return true
			}
		case "hemisphere":
			if region.Hemisphere == "north" && latitude > 0 {
				return true
			}
			if region.Hemisphere == "south" && latitude < 0 {
				return true
			}
		}
	}
	return false
}

// Lunar eclipses are visible from the whole night side, so the dataset
// names wide longitude bands instead of paths.
func lunarVisible(r Record, longitude float64) bool {
	for _, region := range r.VisibleFrom {
		switch region.Type {
		case "global":
			return true
		case "hemisphere":
			switch region.Hemisphere {
			case "americas":
				if longitude >= -180 && longitude <= -30 {
					return true
				}
			case "europe-africa":
				if longitude >= -30 && longitude <= 60 {
					return true
				}
			case "asia-pacific":
				if longitude >= 60 || longitude <= -120 {
					return true
				}
			}
		}
	}
	return false
}
