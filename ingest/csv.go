package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// ReadCSV parses a header-rowed CSV stream into rows keyed by column name.
// A structurally malformed file aborts with a single error and nothing is
// ingested.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // vendor exports pad rows inconsistently

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row %d: %w", len(rows)+2, err)
		}
		row := make(Row, len(header))
		empty := true
		for i, h := range header {
			if i >= len(rec) {
				break
			}
			row[h] = rec[i]
			if strings.TrimSpace(rec[i]) != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// blastHeaderLine reports whether a raw line looks like the real Blast
// header row. Blast exports prepend several non-tabular metadata lines; the
// header is the first line naming both a date column and a bat-speed column,
// in either language.
func blastHeaderLine(line string) bool {
	hasDate := strings.Contains(line, "Date") || strings.Contains(line, "日付")
	hasSpeed := strings.Contains(line, "Bat Speed") ||
		strings.Contains(line, "スイング") ||
		strings.Contains(line, "バットスピード")
	return hasDate && hasSpeed
}

// ReadBlastCSV parses a Blast export: decodes the legacy Shift_JIS encoding
// the Japanese app emits, skips the metadata preamble by locating the header
// row within the first 20 lines, and parses the remainder as ordinary CSV.
func ReadBlastCSV(r io.Reader) ([]Row, error) {
	raw, err := io.ReadAll(transform.NewReader(r, japanese.ShiftJIS.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("decoding blast export: %w", err)
	}

	lines := strings.Split(string(raw), "\n")
	headerIdx := 0
	limit := len(lines)
	if limit > 20 {
		limit = 20
	}
	for i := 0; i < limit; i++ {
		if blastHeaderLine(lines[i]) {
			headerIdx = i
			break
		}
	}

	return ReadCSV(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
}
