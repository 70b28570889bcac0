package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

var consumedFiles = map[string]bool{
	"agency.txt":     true,
	"routes.txt":     true,
	"trips.txt":      true,
	"stops.txt":      true,
	"stop_times.txt": true,
}

// NewGTFSIndexFromBytes builds an index from the bytes of a GTFS zip
func NewGTFSIndexFromBytes(data []byte, agencyID string) (*GTFSIndex, error) {
	return NewGTFSIndexFromReader(bytes.NewReader(data), int64(len(data)), agencyID)
}

// NewGTFSIndexFromReader builds an index from a GTFS zip of the given size
func NewGTFSIndexFromReader(r io.ReaderAt, size int64, agencyID string) (*GTFSIndex, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open GTFS zip: %w", err)
	}
	g := NewGTFSIndex(agencyID)
	if err := g.consumeZip(zr); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *GTFSIndex) load(src string) error {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return g.loadFromStaticZip(src)
	}
	return g.loadFromLocalZip(src)
}

func (g *GTFSIndex) loadFromStaticZip(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", url, err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to open GTFS zip: %w", err)
	}
	return g.consumeZip(zr)
}

// loadFromLocalZip opens a local GTFS zip file and consumes required CSVs.
func (g *GTFSIndex) loadFromLocalZip(p string) error {
	if _, err := os.Stat(p); err != nil {
		return fmt.Errorf("GTFS zip: %w", err)
	}
	zr, err := zip.OpenReader(p)
	if err != nil {
		return fmt.Errorf("failed to open GTFS zip: %w", err)
	}
	defer zr.Close()
	return g.consumeZip(&zr.Reader)
}

func (g *GTFSIndex) consumeZip(zr *zip.Reader) error {
	for _, f := range zr.File {
		if !consumedFiles[strings.ToLower(path.Base(f.Name))] {
			continue
		}
		if err := g.consumeCSV(f); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

func (g *GTFSIndex) consumeCSV(f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	switch strings.ToLower(path.Base(f.Name)) {
	case "agency.txt":
		agID := idx("agency_id")
		agName := idx("agency_name")
		if len(rec) > 1 {
			if g.agencyID == "" {
				g.agencyID = cell(rec[1], agID)
			}
			g.agencyName = cell(rec[1], agName)
		}
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		if rID < 0 {
			return fmt.Errorf("missing route_id column")
		}
		for _, row := range rec[1:] {
			id := cell(row, rID)
			g.routeShortNames[id] = cell(row, rSN)
		}
	case "trips.txt":
		rID := idx("route_id")
		tID := idx("trip_id")
		if rID < 0 || tID < 0 {
			return fmt.Errorf("missing route_id or trip_id column")
		}
		for _, row := range rec[1:] {
			g.tripToRoute[cell(row, tID)] = cell(row, rID)
		}
	case "stops.txt":
		sID := idx("stop_id")
		sN := idx("stop_name")
		sLat := idx("stop_lat")
		sLon := idx("stop_lon")
		if sID < 0 {
			return fmt.Errorf("missing stop_id column")
		}
		for _, row := range rec[1:] {
			stop := Stop{ID: cell(row, sID), Name: cell(row, sN)}
			lat, errLat := strconv.ParseFloat(cell(row, sLat), 64)
			lon, errLon := strconv.ParseFloat(cell(row, sLon), 64)
			if errLat == nil && errLon == nil {
				stop.Location = &Location{Lat: lat, Lon: lon}
			}
			g.stops[stop.ID] = stop
		}
	case "stop_times.txt":
		tID := idx("trip_id")
		sID := idx("stop_id")
		sq := idx("stop_sequence")
		arrTime := idx("arrival_time")
		depTime := idx("departure_time")
		if tID < 0 || sID < 0 || sq < 0 {
			return fmt.Errorf("missing trip_id, stop_id or stop_sequence column")
		}
		for _, row := range rec[1:] {
			seq, err := strconv.Atoi(cell(row, sq))
			if err != nil {
				continue
			}
			trip := cell(row, tID)
			g.tripStopTimes[trip] = append(g.tripStopTimes[trip], stopTime{
				stop:      cell(row, sID),
				seq:       seq,
				arrival:   cell(row, arrTime),
				departure: cell(row, depTime),
			})
		}
		for _, arr := range g.tripStopTimes {
			sort.SliceStable(arr, func(i, j int) bool { return arr[i].seq < arr[j].seq })
		}
	}
	return nil
}

// parseGTFSTime converts HH:MM:SS (hours may exceed 23) to seconds after
// midnight of the service day
func parseGTFSTime(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid GTFS time %q", s)
	}
	var hms [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid GTFS time %q", s)
		}
		hms[i] = v
	}
	if hms[1] > 59 || hms[2] > 59 {
		return 0, fmt.Errorf("invalid GTFS time %q", s)
	}
	return hms[0]*3600 + hms[1]*60 + hms[2], nil
}
