package logfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// CSVTimeFormat is the layout of the first column of a CSV log.
const CSVTimeFormat = "2006-01-02T15:04:05.999-0700"

type CSVLogfile struct {
	baseLogfile
}

func NewFromCSVLogfile(filename string) (Logfile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	records, err := parseCSVRows(rows)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	csvlog := &CSVLogfile{baseLogfile{records: records, pos: -1}}
	csvlog.setDelays()
	return csvlog, nil
}

func parseCSVRows(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return nil, errors.New("no header")
	}
	header := rows[0]
	recs := make([]Record, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		ts, err := time.Parse(CSVTimeFormat, rows[i][0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rec := NewRecord(ts)
		for j := 1; j < len(rows[i]) && j < len(header); j++ {
			if rows[i][j] == "" {
				continue
			}
			val, err := strconv.ParseFloat(rows[i][j], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d %s: %w", i+1, header[j], err)
			}
			rec.SetValue(header[j], val)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
