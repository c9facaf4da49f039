package dataset

import "fmt"

// CrossTabStatistics reduces the readings that match both descriptors
// exactly (case-sensitive, no normalization) to their minimum, arithmetic
// mean, and maximum concentration.
//
// It fails with ErrEmptyDataset when no load has occurred or the dataset
// is empty, and with ErrNoMatchingItems when the dataset has rows but
// none for this zip/time pair.
func (d *DataSet) CrossTabStatistics(zip, timeOfDay string) (Summary, error) {
	if !d.loaded || len(d.readings) == 0 {
		return Summary{}, ErrEmptyDataset
	}

	var (
		count           int
		sum             float64
		lowest, highest float64
	)

	for _, r := range d.readings {
		if r.ZipCode != zip || r.TimeOfDay != timeOfDay {
			continue
		}
		v := r.Concentration
		if count == 0 {
			lowest, highest = v, v
		} else {
			if v < lowest {
				lowest = v
			}
			if v > highest {
				highest = v
			}
		}
		sum += v
		count++
	}

	if count == 0 {
		return Summary{}, fmt.Errorf("%w: zip %q at %q", ErrNoMatchingItems, zip, timeOfDay)
	}

	return Summary{
		Min: lowest,
		Avg: sum / float64(count),
		Max: highest,
	}, nil
}
