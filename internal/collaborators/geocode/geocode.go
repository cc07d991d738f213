// Package geocode is a reference Geocoder: given a point, it looks up the
// country code (and from that, the locale.Locale) the spec's external
// interface describes as an input to transform.TagsToLanes. It is built
// on an R-tree of coarse country bounding boxes — not authoritative (no
// real country polygons are shipped) but exercises the
// github.com/tidwall/rtree dependency the teacher's go.mod carries but
// never actually imports in its own routing code.
package geocode

import (
	"fmt"
	"math"

	"github.com/tidwall/rtree"

	"osm2lanes/pkg/geo"
	"osm2lanes/pkg/locale"
)

// Box is a coarse geographic bounding box for one country.
type Box struct {
	Country        string
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// Geocoder resolves a (lat, lon) point to a locale.Locale via a static
// table of country bounding boxes.
type Geocoder struct {
	tree  *rtree.RTreeG[string]
	boxes []Box
}

// New builds a Geocoder from boxes, indexing each by its country code.
// Overlapping boxes are tolerated; Lookup returns the first match found,
// which is good enough for a reference implementation but not a
// production geocoder.
func New(boxes []Box) *Geocoder {
	tree := &rtree.RTreeG[string]{}
	for _, b := range boxes {
		tree.Insert([2]float64{b.MinLon, b.MinLat}, [2]float64{b.MaxLon, b.MaxLat}, b.Country)
	}
	return &Geocoder{tree: tree, boxes: boxes}
}

// DefaultBoxes is a small, intentionally coarse set of country bounding
// boxes covering a handful of left- and right-driving countries, enough
// to exercise Lookup in tests and the CLI without shipping a real
// administrative-boundary dataset.
var DefaultBoxes = []Box{
	{Country: "US", MinLat: 24.5, MaxLat: 49.4, MinLon: -125.0, MaxLon: -66.9},
	{Country: "DE", MinLat: 47.3, MaxLat: 55.1, MinLon: 5.9, MaxLon: 15.0},
	{Country: "GB", MinLat: 49.9, MaxLat: 60.9, MinLon: -8.6, MaxLon: 1.8},
	{Country: "JP", MinLat: 24.0, MaxLat: 45.6, MinLon: 122.9, MaxLon: 153.9},
	{Country: "AU", MinLat: -43.7, MaxLat: -10.0, MinLon: 112.9, MaxLon: 153.6},
}

// NewDefault builds a Geocoder over DefaultBoxes.
func NewDefault() *Geocoder {
	return New(DefaultBoxes)
}

// Lookup resolves (lat, lon) to a Locale. It first tries an exact
// bounding-box hit; if no box contains the point (e.g. a coastal way just
// outside a box's coarse edge), it falls back to the nearest box centroid
// by great-circle distance, so a caller always gets a best-effort locale
// rather than an outright failure.
func (g *Geocoder) Lookup(lat, lon float64) (locale.Locale, error) {
	var found string
	g.tree.Search([2]float64{lon, lat}, [2]float64{lon, lat}, func(_, _ [2]float64, country string) bool {
		found = country
		return false // stop at first match
	})
	if found != "" {
		return locale.New(found, "", locale.SideForCountry(found)), nil
	}

	nearest, dist := g.nearestCentroid(lat, lon)
	if nearest == "" || dist > maxFallbackDistanceMeters {
		return locale.Locale{}, errNoMatch(lat, lon)
	}
	return locale.New(nearest, "", locale.SideForCountry(nearest)), nil
}

// maxFallbackDistanceMeters bounds the nearest-centroid fallback so a point
// in open ocean, far from every known box, still fails instead of silently
// resolving to whichever country happens to be least far away.
const maxFallbackDistanceMeters = 300_000

func (g *Geocoder) nearestCentroid(lat, lon float64) (country string, distMeters float64) {
	best := math.Inf(1)
	var bestCountry string
	for _, b := range g.boxes {
		cLat := (b.MinLat + b.MaxLat) / 2
		cLon := (b.MinLon + b.MaxLon) / 2
		d := geo.Haversine(lat, lon, cLat, cLon)
		if d < best {
			best = d
			bestCountry = b.Country
		}
	}
	return bestCountry, best
}

func errNoMatch(lat, lon float64) error {
	return fmt.Errorf("geocode: no country bounding box near (%f, %f)", lat, lon)
}
