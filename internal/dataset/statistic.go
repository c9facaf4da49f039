package dataset

import "fmt"

// Statistic selects which summary value a cross table displays.
type Statistic string

const (
	StatMin Statistic = "min"
	StatAvg Statistic = "avg"
	StatMax Statistic = "max"
)

// Valid reports whether s is one of the three known statistics.
func (s Statistic) Valid() bool {
	switch s {
	case StatMin, StatAvg, StatMax:
		return true
	}
	return false
}

// Summary holds the three cross-table statistics for one zip/time pair.
type Summary struct {
	Min float64
	Avg float64
	Max float64
}

// Value returns the summary field selected by stat.
func (s Summary) Value(stat Statistic) (float64, error) {
	switch stat {
	case StatMin:
		return s.Min, nil
	case StatAvg:
		return s.Avg, nil
	case StatMax:
		return s.Max, nil
	default:
		return 0, fmt.Errorf("unknown statistic %q", stat)
	}
}
