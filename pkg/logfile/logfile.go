package logfile

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type Logfile interface {
	Next() Record
	Prev() Record
	Seek(int) Record
	Pos() int
	Len() int
	Start() time.Time
	End() time.Time
	Close()
}

type Record struct {
	Time          time.Time
	DelayTillNext int64
	Values        map[string]float64
	Keys          []string // value names in the order they were set
	EOF           bool
}

func NewRecord(t time.Time) Record {
	return Record{
		Time:   t,
		Values: make(map[string]float64),
	}
}

func (r *Record) SetValue(key string, value float64) {
	if _, ok := r.Values[key]; !ok {
		r.Keys = append(r.Keys, key)
	}
	r.Values[key] = value
}

// Open picks a parser based on the file extension.
func Open(filename string) (Logfile, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return NewFromCSVLogfile(filename)
	case ".t5l", ".t7l", ".t8l", ".txl":
		return NewFromTxLogfile(filename)
	default:
		return nil, fmt.Errorf("unsupported log format %q", filepath.Ext(filename))
	}
}

// Series turns the records of lf into one slice per value name, suitable for
// plotting. Records missing a value repeat the previous one. The order follows
// the first appearance of each name.
func Series(lf Logfile) (map[string][]float64, []string) {
	values := make(map[string][]float64)
	var order []string
	n := lf.Len()
	for i := 0; i < n; i++ {
		rec := lf.Seek(i)
		if rec.EOF {
			break
		}
		for _, k := range rec.Keys {
			if _, ok := values[k]; !ok {
				values[k] = make([]float64, i, n)
				order = append(order, k)
			}
		}
		for _, k := range order {
			v, ok := rec.Values[k]
			if !ok && i > 0 {
				v = values[k][i-1]
			}
			values[k] = append(values[k], v)
		}
	}
	return values, order
}
