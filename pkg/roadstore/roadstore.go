// Package roadstore implements a compact on-disk cache of already-
// assembled Road values, keyed by OSM way ID. It exists so the batch CLI
// command doesn't have to re-run the scheme parsers and assembler every
// time it revisits a large extract — grounded on the teacher's CSR-graph
// binary cache (pkg/graph/binary.go): same magic-header + CRC32 trailer +
// atomic-rename shape, but with JSON-encoded, length-prefixed records in
// place of flat numeric arrays, since a Road's lane list is a
// heterogeneous sealed-interface sequence rather than fixed-width graph
// arrays that suit zero-copy unsafe.Slice I/O.
package roadstore

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"sort"

	"osm2lanes/pkg/lanes"
)

const (
	magicBytes = "OSM2LANE"
	version    = uint32(1)
)

// fileHeader is the binary header written before the record stream.
type fileHeader struct {
	Magic      [8]byte
	Version    uint32
	NumRecords uint32
}

// record is one cached way: its ID and its assembled Road.
type record struct {
	WayID int64
	Road  lanes.Road
}

// Write serializes roads (keyed by OSM way ID) to path, atomically
// replacing any existing file at that path. Records are written in
// ascending way-ID order so the file is byte-identical across runs over
// the same input.
func Write(path string, roads map[int64]lanes.Road) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("roadstore: create temp file: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(tmpPath)
	}()

	bw := bufio.NewWriter(f)
	cw := &crc32Writer{w: bw, hash: crc32.NewIEEE()}

	ids := make([]int64, 0, len(roads))
	for id := range roads {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	hdr := fileHeader{Version: version, NumRecords: uint32(len(ids))}
	copy(hdr.Magic[:], magicBytes)
	if err := binary.Write(cw, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("roadstore: write header: %w", err)
	}

	for _, id := range ids {
		body, err := json.Marshal(roads[id])
		if err != nil {
			return fmt.Errorf("roadstore: marshal way %d: %w", id, err)
		}
		if err := binary.Write(cw, binary.LittleEndian, id); err != nil {
			return fmt.Errorf("roadstore: write way ID: %w", err)
		}
		if err := binary.Write(cw, binary.LittleEndian, uint32(len(body))); err != nil {
			return fmt.Errorf("roadstore: write record length: %w", err)
		}
		if _, err := cw.Write(body); err != nil {
			return fmt.Errorf("roadstore: write record body: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("roadstore: flush: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, cw.hash.Sum32()); err != nil {
		return fmt.Errorf("roadstore: write CRC32: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("roadstore: close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("roadstore: rename: %w", err)
	}
	return nil
}

// Read deserializes a roadstore file back into a way-ID-keyed map,
// validating its magic bytes, version, and CRC32 trailer.
func Read(path string) (map[int64]lanes.Road, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roadstore: open: %w", err)
	}
	defer f.Close()

	cr := &crc32Reader{r: f, hash: crc32.NewIEEE()}

	var hdr fileHeader
	if err := binary.Read(cr, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("roadstore: read header: %w", err)
	}
	if string(hdr.Magic[:]) != magicBytes {
		return nil, fmt.Errorf("roadstore: invalid magic bytes: %q", hdr.Magic)
	}
	if hdr.Version != version {
		return nil, fmt.Errorf("roadstore: unsupported version: %d", hdr.Version)
	}

	out := make(map[int64]lanes.Road, hdr.NumRecords)
	for i := uint32(0); i < hdr.NumRecords; i++ {
		var id int64
		if err := binary.Read(cr, binary.LittleEndian, &id); err != nil {
			return nil, fmt.Errorf("roadstore: read way ID: %w", err)
		}
		var n uint32
		if err := binary.Read(cr, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("roadstore: read record length: %w", err)
		}
		body := make([]byte, n)
		if _, err := io.ReadFull(cr, body); err != nil {
			return nil, fmt.Errorf("roadstore: read record body: %w", err)
		}
		var road lanes.Road
		if err := json.Unmarshal(body, &road); err != nil {
			return nil, fmt.Errorf("roadstore: unmarshal way %d: %w", id, err)
		}
		out[id] = road
	}

	expected := cr.hash.Sum32()
	var stored uint32
	if err := binary.Read(f, binary.LittleEndian, &stored); err != nil {
		return nil, fmt.Errorf("roadstore: read CRC32: %w", err)
	}
	if stored != expected {
		return nil, fmt.Errorf("roadstore: CRC32 mismatch: stored=%08x computed=%08x", stored, expected)
	}

	return out, nil
}

type crc32Writer struct {
	w    io.Writer
	hash crc32Hash
}

func (cw *crc32Writer) Write(p []byte) (int, error) {
	cw.hash.Write(p)
	return cw.w.Write(p)
}

type crc32Reader struct {
	r    io.Reader
	hash crc32Hash
}

func (cr *crc32Reader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.hash.Write(p[:n])
	}
	return n, err
}

type crc32Hash interface {
	Write([]byte) (int, error)
	Sum32() uint32
}
