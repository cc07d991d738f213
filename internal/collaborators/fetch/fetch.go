// Package fetch is a reference OsmFetcher: it pulls a way's tags (and,
// for a bounding-box batch, its member ways' tags) out of a .osm.pbf file
// for the CLI to hand to transform.TagsToLanes. Grounded on the teacher's
// two-pass PBF scan (pkg/osm/parser.go): pass one finds the ways of
// interest, pass two resolves the node coordinates needed to test bbox
// membership, since osmpbf.Scanner only exposes each object once per scan
// and a way's nodes are read before its referenced nodes' coordinates are.
package fetch

import (
	"context"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
)

// BBox is a geographic bounding box for the batch extraction.
type BBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

func (b BBox) contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// Way is one extracted way: its ID and its raw tag set, ready for
// transform.TagsToLanes.
type Way struct {
	ID   int64
	Tags map[string]string
}

// FetchWay scans rs once for the way with the given ID and returns its
// tags. Returns an error if the way is not found.
func FetchWay(ctx context.Context, rs io.ReadSeeker, wayID int64) (Way, error) {
	scanner := osmpbf.New(ctx, rs, 1)
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	defer scanner.Close()

	target := osm.WayID(wayID)
	for scanner.Scan() {
		w, ok := scanner.Object().(*osm.Way)
		if !ok || w.ID != target {
			continue
		}
		return Way{ID: int64(w.ID), Tags: tagsToMap(w.Tags)}, nil
	}
	if err := scanner.Err(); err != nil {
		return Way{}, fmt.Errorf("fetch: scan ways: %w", err)
	}
	return Way{}, fmt.Errorf("fetch: way %d not found", wayID)
}

// FetchBBox scans rs for every tagged-as-highway way with at least one
// node inside bbox, returning each with its raw tags. rs must implement
// io.ReadSeeker: pass one collects candidate ways and the node IDs they
// reference, pass two resolves those nodes' coordinates for the bbox
// test.
func FetchBBox(ctx context.Context, rs io.ReadSeeker, bbox BBox) ([]Way, error) {
	type candidate struct {
		id    osm.WayID
		nodes []osm.NodeID
		tags  map[string]string
	}

	var candidates []candidate
	referenced := make(map[osm.NodeID]struct{})

	scanner := osmpbf.New(ctx, rs, 1)
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		w, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if w.Tags.Find("highway") == "" {
			continue
		}
		nodeIDs := make([]osm.NodeID, len(w.Nodes))
		for i, wn := range w.Nodes {
			nodeIDs[i] = wn.ID
			referenced[wn.ID] = struct{}{}
		}
		candidates = append(candidates, candidate{id: w.ID, nodes: nodeIDs, tags: tagsToMap(w.Tags)})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("fetch: pass 1 (ways): %w", err)
	}
	scanner.Close()

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("fetch: seek for pass 2: %w", err)
	}

	nodeLat := make(map[osm.NodeID]float64, len(referenced))
	nodeLon := make(map[osm.NodeID]float64, len(referenced))

	scanner = osmpbf.New(ctx, rs, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, needed := referenced[n.ID]; !needed {
			continue
		}
		nodeLat[n.ID] = n.Lat
		nodeLon[n.ID] = n.Lon
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("fetch: pass 2 (nodes): %w", err)
	}
	scanner.Close()

	var out []Way
	for _, c := range candidates {
		inBBox := false
		for _, id := range c.nodes {
			lat, latOk := nodeLat[id]
			lon := nodeLon[id]
			if latOk && bbox.contains(lat, lon) {
				inBBox = true
				break
			}
		}
		if inBBox {
			out = append(out, Way{ID: int64(c.id), Tags: c.tags})
		}
	}
	return out, nil
}

func tagsToMap(t osm.Tags) map[string]string {
	out := make(map[string]string, len(t))
	for _, tag := range t {
		out[tag.Key] = tag.Value
	}
	return out
}
