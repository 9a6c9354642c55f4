package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

var errBadRecord = errors.New("csv record could not be parsed")

// LoadCSV reads a bar series from a CSV file with columns
// time,open,high,low,close,volume. Timestamps may be RFC3339 or unix seconds.
// A header row is skipped automatically
func LoadCSV(path string) ([]Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV reads bar records from r, see LoadCSV for the expected layout
func ParseCSV(r io.Reader) ([]Bar, error) {
	c := csv.NewReader(r)
	c.FieldsPerRecord = 6
	var bars []Bar
	for line := 1; ; line++ {
		record, err := c.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		b, err := parseRecord(record)
		if err != nil {
			if line == 1 {
				// header row
				continue
			}
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		bars = append(bars, b)
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	return bars, nil
}

func parseRecord(record []string) (Bar, error) {
	t, err := parseTime(record[0])
	if err != nil {
		return Bar{}, err
	}
	vals := make([]decimal.Decimal, 5)
	for i := range vals {
		vals[i], err = decimal.NewFromString(record[i+1])
		if err != nil {
			return Bar{}, fmt.Errorf("%w: field %v %q", errBadRecord, i+1, record[i+1])
		}
	}
	return Bar{
		Time:   t,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	unix, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q", errBadRecord, s)
	}
	return time.Unix(unix, 0).UTC(), nil
}
