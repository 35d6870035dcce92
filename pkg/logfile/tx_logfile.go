package logfile

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// TxLogfile reads pipe separated logs: "time|name=value|name=value|".
type TxLogfile struct {
	baseLogfile
}

func NewFromTxLogfile(filename string) (Logfile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 4*1024), bufio.MaxScanTokenSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	records, err := parseTxLines(lines)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	txlog := &TxLogfile{baseLogfile{records: records, pos: -1}}
	txlog.setDelays()
	return txlog, nil
}

var timeFormats = []string{
	`02/01/2006 15:04:05.999`,
	`2006/01/02 15:04:05.999`,
	`02-01-2006 15:04:05.999`,
	`2006-01-02 15:04:05.999`,
	`02.01.2006 15:04:05.999`,
}

func detectTimeFormat(text string) (string, error) {
	text = strings.Split(strings.TrimSuffix(text, "|"), "|")[0]
	for _, format := range timeFormats {
		if _, err := time.Parse(format, text); err == nil {
			return format, nil
		}
	}
	return "", errors.New("could not detect time format")
}

func parseTxLines(lines []string) ([]Record, error) {
	if len(lines) == 0 {
		return nil, errors.New("no lines in file")
	}
	timeFormat, err := detectTimeFormat(lines[0])
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(lines))
	for n, line := range lines {
		record, err := parseLine(line, timeFormat)
		if err != nil {
			log.Printf("line %d: %v", n+1, err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func parseLine(line, timeFormat string) (Record, error) {
	tuples := strings.Split(strings.TrimSuffix(line, "|"), "|")
	parsedTime, err := time.Parse(timeFormat, tuples[0])
	if err != nil {
		return Record{}, err
	}
	record := NewRecord(parsedTime)
	for _, kv := range tuples[1:] {
		if strings.HasPrefix(kv, "IMPORTANTLINE") {
			continue
		}
		key, value, err := parseCommaValue(kv)
		if err != nil {
			return Record{}, err
		}
		record.SetValue(key, value)
	}
	return record, nil
}

// parseCommaValue parses "name=1,5" and "name=1.5" alike.
func parseCommaValue(valueString string) (string, float64, error) {
	key, raw, ok := strings.Cut(valueString, "=")
	if !ok {
		return "", -1, fmt.Errorf("missing value in %q", valueString)
	}
	val, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return "", -1, err
	}
	return key, val, nil
}
