package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"

	"purpleairdb/internal/dataset"
)

// Column layout of the PurpleAir CSV export.
const (
	colZip   = 1
	colTime  = 4
	colValue = 5
)

// zipMarker labels the pseudo-header rows interleaved in the export.
// Rows carrying it in the zip column are excluded before parsing.
const zipMarker = "Approximate Zip Code"

var validate = validator.New()

// FileSource reads readings from a PurpleAir CSV export on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path. The file is
// opened on each Rows call, not here, so a missing file only fails loads.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return s.path
}

// rawRow holds the unparsed fields of one data row for validation.
type rawRow struct {
	ZipCode       string `validate:"required"`
	TimeOfDay     string `validate:"required"`
	Concentration string `validate:"required,numeric"`
}

// Rows parses the file into readings. Marker rows are excluded; any
// malformed data row fails the whole load with its line number, so the
// dataset engine only ever receives pre-validated rows.
func (s *FileSource) Rows() ([]dataset.Reading, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// The export mixes marker rows with data rows; record widths vary.
	r.FieldsPerRecord = -1

	var rows []dataset.Reading
	line := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", s.path, err)
		}
		line++

		if len(record) <= colValue {
			return nil, fmt.Errorf("%s line %d: expected at least %d columns, got %d",
				s.path, line, colValue+1, len(record))
		}
		if record[colZip] == zipMarker {
			continue
		}

		raw := rawRow{
			ZipCode:       record[colZip],
			TimeOfDay:     record[colTime],
			Concentration: record[colValue],
		}
		if err := validate.Struct(raw); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.path, line, err)
		}

		value, err := strconv.ParseFloat(raw.Concentration, 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad concentration %q: %w",
				s.path, line, raw.Concentration, err)
		}

		rows = append(rows, dataset.Reading{
			ZipCode:       raw.ZipCode,
			TimeOfDay:     raw.TimeOfDay,
			Concentration: value,
		})
	}

	return rows, nil
}
