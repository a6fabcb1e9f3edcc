// Package refdata reads the static reference tables (historical crop yields
// and pesticide usage). Tables are read per call so edits to the files show
// up without a restart; nothing here is cached.
package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"agroyield-server/entities"
)

// Source is the reference-table contract the use cases depend on. The CSV
// implementation is the production one; tests substitute in-memory tables.
type Source interface {
	// YieldValues returns every historical per-acre yield value recorded
	// for the crop, matched case-insensitively. Empty means unknown crop.
	YieldValues(crop string) ([]float64, error)
	// Pesticides returns matching rows in table order. Empty is valid.
	Pesticides(crop string) ([]entities.PesticideEntry, error)
}

type csvSource struct {
	yieldPath     string
	pesticidePath string
}

func NewCSVSource(yieldPath, pesticidePath string) Source {
	return &csvSource{yieldPath: yieldPath, pesticidePath: pesticidePath}
}

func (s *csvSource) YieldValues(crop string) ([]float64, error) {
	rows, header, err := readTable(s.yieldPath)
	if err != nil {
		return nil, err
	}

	itemIdx, ok := header["item"]
	valueIdx, ok2 := header["value"]
	if !ok || !ok2 {
		return nil, fmt.Errorf("yield table %s is missing Item/Value columns", s.yieldPath)
	}

	want := strings.ToLower(strings.TrimSpace(crop))
	var values []float64
	for _, row := range rows {
		if len(row) <= itemIdx || len(row) <= valueIdx {
			continue
		}
		if strings.ToLower(strings.TrimSpace(row[itemIdx])) != want {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[valueIdx]), 64)
		if err != nil {
			continue // skip unparseable rows rather than failing the table
		}
		values = append(values, v)
	}
	return values, nil
}

func (s *csvSource) Pesticides(crop string) ([]entities.PesticideEntry, error) {
	rows, header, err := readTable(s.pesticidePath)
	if err != nil {
		return nil, err
	}

	cropIdx, ok := header["crop"]
	if !ok {
		return nil, fmt.Errorf("pesticide table %s is missing crop column", s.pesticidePath)
	}

	col := func(row []string, name string) string {
		idx, ok := header[name]
		if !ok || len(row) <= idx {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	want := strings.ToLower(strings.TrimSpace(crop))
	var entries []entities.PesticideEntry
	for _, row := range rows {
		if len(row) <= cropIdx {
			continue
		}
		if strings.ToLower(strings.TrimSpace(row[cropIdx])) != want {
			continue
		}
		entries = append(entries, entities.PesticideEntry{
			Crop:        strings.TrimSpace(row[cropIdx]),
			Pesticide:   col(row, "pesticide"),
			Dosage:      col(row, "dosage"),
			Application: col(row, "application"),
		})
	}
	return entries, nil
}

// readTable loads a whole CSV and returns its data rows plus a normalized
// header index (lowercased, BOM stripped).
func readTable(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open reference table: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read reference table header: %w", err)
	}

	header := map[string]int{}
	for i, h := range head {
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		header[strings.ToLower(h)] = i
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read reference table: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, header, nil
}
