package menu

import (
	"errors"
	"fmt"
	"strings"

	"purpleairdb/internal/dataset"
)

// noDataMessage is shown whenever an operation needs a loaded dataset.
const noDataMessage = "No data is loaded. Please load the data set."

// displayCrossTable prints the cross table for one statistic: time labels
// right-aligned in 8-character columns over a 7-character row gutter, one
// row per active zip with values shown to 2 decimals and N/A for cells
// without readings.
func (m *Menu) displayCrossTable(stat dataset.Statistic) {
	table, err := m.ds.CrossTable(stat)
	if err != nil {
		if errors.Is(err, dataset.ErrEmptyDataset) {
			fmt.Fprintln(m.out, noDataMessage)
			return
		}
		m.log.Error("cross table failed", "statistic", string(stat), "err", err)
		return
	}

	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, strings.Repeat(" ", 7))
	for _, timeOfDay := range table.Times {
		fmt.Fprintf(m.out, "%8s", timeOfDay)
	}
	fmt.Fprintln(m.out)

	for _, row := range table.Rows {
		fmt.Fprintf(m.out, "%-7s", row.ZipCode)
		for _, cell := range row.Cells {
			if cell.OK {
				fmt.Fprintf(m.out, "%8.2f", cell.Value)
			} else {
				fmt.Fprintf(m.out, "%8s", "N/A")
			}
		}
		fmt.Fprintln(m.out)
	}
}
