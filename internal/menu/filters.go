package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// manageFilters runs the filter-editing loop: list zips with a 1-based
// index and their flag, toggle on a number, finish on an empty line.
func (m *Menu) manageFilters() {
	if _, ok := m.ds.Readings(); !ok {
		fmt.Fprintln(m.out, noDataMessage)
		return
	}

	for {
		fmt.Fprintln(m.out, "The following labels are in the data set:")
		zips := m.ds.Zips()
		flags := m.ds.ZipFilters()
		for i, zip := range zips {
			state := "ACTIVE"
			if !flags[zip] {
				state = "INACTIVE"
			}
			fmt.Fprintf(m.out, "%d: %-11s%s\n", i+1, zip, state)
		}

		input := m.prompt("Please select an item to toggle or press enter/return when you are finished.")
		if m.eof || input == "" {
			return
		}

		index, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a number next time.")
			continue
		}
		if index < 1 || index > len(zips) {
			fmt.Fprintln(m.out, "That is not a valid selection. Please choose something else.")
			continue
		}

		if err := m.ds.ToggleZip(zips[index-1]); err != nil {
			m.log.Error("toggle failed", "zip", zips[index-1], "err", err)
			fmt.Fprintln(m.out, "That is not a valid selection. Please choose something else.")
		}
	}
}
