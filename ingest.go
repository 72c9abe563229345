// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/arbor/store"
)

// Column positions in the census export.
const (
	colTreeID    = 0
	colDiameter  = 3
	colStatus    = 6
	colHealth    = 7
	colSpecies   = 9
	colAddress   = 24
	colZipCode   = 25
	colBorough   = 29
	colLatitude  = 37
	colLongitude = 38

	minColumns = colLongitude + 1
)

var (
	ErrNoDataFile = errors.New("data file not found")
	errBadRow     = errors.New("bad data")
)

// IngestStats summarizes one load of the census file.
type IngestStats struct {
	Rows       int
	Added      int
	Duplicates int
	Rejected   int
}

type ingestOptions struct {
	ShowProgress bool
	SkipInvalid  bool
	Logger       zerolog.Logger
}

// parseRecord converts one CSV row into a record. Rows without a positive
// tree id are rejected, which also drops the header line.
func parseRecord(fields []string) (store.Record, error) {
	if len(fields) < minColumns {
		return store.Record{}, fmt.Errorf("%w: %d columns, want at least %d", errBadRow, len(fields), minColumns)
	}

	var r store.Record
	var err error
	field := func(i int) string { return strings.TrimSpace(fields[i]) }

	if r.ID, err = strconv.Atoi(field(colTreeID)); err != nil || r.ID <= 0 {
		return store.Record{}, fmt.Errorf("%w: tree id %q", errBadRow, field(colTreeID))
	}
	if r.Diameter, err = strconv.Atoi(field(colDiameter)); err != nil {
		return store.Record{}, fmt.Errorf("%w: diameter %q", errBadRow, field(colDiameter))
	}
	if r.ZipCode, err = strconv.Atoi(field(colZipCode)); err != nil || r.ZipCode < 0 || r.ZipCode > 99999 {
		return store.Record{}, fmt.Errorf("%w: zip code %q", errBadRow, field(colZipCode))
	}
	if r.Latitude, err = strconv.ParseFloat(field(colLatitude), 64); err != nil {
		return store.Record{}, fmt.Errorf("%w: latitude %q", errBadRow, field(colLatitude))
	}
	if r.Longitude, err = strconv.ParseFloat(field(colLongitude), 64); err != nil {
		return store.Record{}, fmt.Errorf("%w: longitude %q", errBadRow, field(colLongitude))
	}

	r.Status = field(colStatus)
	r.Health = field(colHealth)
	r.Species = field(colSpecies)
	r.Address = field(colAddress)
	r.Borough = field(colBorough)
	return r, nil
}

// loadRecords reads census rows from r into s.
func loadRecords(r io.Reader, s *store.RecordStore, opts ingestOptions) (IngestStats, error) {
	var stats IngestStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		stats.Rows++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && opts.SkipInvalid {
				stats.Rejected++
				opts.Logger.Debug().Int("row", stats.Rows).Err(err).Msg("unreadable row")
				continue
			}
			return stats, fmt.Errorf("row %d: %w", stats.Rows, err)
		}

		record, err := parseRecord(fields)
		if err != nil {
			if !opts.SkipInvalid && stats.Rows > 1 {
				return stats, fmt.Errorf("row %d: %w", stats.Rows, err)
			}
			stats.Rejected++
			opts.Logger.Debug().Int("row", stats.Rows).Err(err).Msg("rejected row")
			continue
		}

		if s.Add(record) {
			stats.Added++
		} else {
			stats.Duplicates++
		}
	}

	return stats, nil
}

// loadDataFile populates s from the census CSV at path.
func loadDataFile(path string, s *store.RecordStore, opts ingestOptions) (IngestStats, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return IngestStats{}, fmt.Errorf("%w: %s", ErrNoDataFile, path)
		}
		return IngestStats{}, err
	}
	defer file.Close()

	var input io.Reader = file
	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		var size int64 = -1
		if stat, err := file.Stat(); err == nil {
			size = stat.Size()
		}
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Loading trees..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		pr := progressbar.NewReader(file, bar)
		input = &pr
	}

	stats, err := loadRecords(input, s, opts)
	if bar != nil {
		bar.Finish()
	}

	opts.Logger.Info().
		Str("file", path).
		Int("rows", stats.Rows).
		Int("added", stats.Added).
		Int("duplicates", stats.Duplicates).
		Int("rejected", stats.Rejected).
		Msg("census loaded")
	return stats, err
}
