package dataset

import (
	"errors"
	"fmt"
)

// Cell is one cross-table entry. OK is false when no readings exist for
// the cell's zip/time pair; such cells render as a not-applicable marker.
type Cell struct {
	Value float64
	OK    bool
}

// TableRow is one cross-table row: a zip code and one cell per time label.
type TableRow struct {
	ZipCode string
	Cells   []Cell
}

// Table is a rendered-but-unformatted cross table: active zips as rows,
// time-of-day labels as columns, the selected statistic in each cell.
// Formatting (column widths, precision) is the caller's concern.
type Table struct {
	Statistic Statistic
	Times     []string
	Rows      []TableRow
}

// CrossTable builds the cross table for the selected statistic. Inactive
// zips are skipped entirely; row order is first-seen zip order and column
// order is the time-label order fixed at load time. It fails with
// ErrEmptyDataset when the dataset is unloaded or empty.
func (d *DataSet) CrossTable(stat Statistic) (*Table, error) {
	if !stat.Valid() {
		return nil, fmt.Errorf("unknown statistic %q", stat)
	}
	if !d.loaded || len(d.readings) == 0 {
		return nil, ErrEmptyDataset
	}

	table := &Table{
		Statistic: stat,
		Times:     d.Times(),
	}

	for _, zip := range d.zipOrder {
		if !d.zipActive[zip] {
			continue
		}

		row := TableRow{
			ZipCode: zip,
			Cells:   make([]Cell, 0, len(table.Times)),
		}

		for _, timeOfDay := range table.Times {
			summary, err := d.CrossTabStatistics(zip, timeOfDay)
			if err != nil {
				if errors.Is(err, ErrNoMatchingItems) {
					row.Cells = append(row.Cells, Cell{})
					continue
				}
				return nil, err
			}

			value, err := summary.Value(stat)
			if err != nil {
				return nil, err
			}
			row.Cells = append(row.Cells, Cell{Value: value, OK: true})
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
