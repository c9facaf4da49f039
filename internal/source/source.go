package source

import "purpleairdb/internal/dataset"

// Source abstracts where dataset rows come from (a data file on disk, or
// the built-in fixture).
type Source interface {
	Name() string
	Rows() ([]dataset.Reading, error)
}

// FixtureSource serves the built-in demonstration readings.
type FixtureSource struct{}

func (FixtureSource) Name() string {
	return "builtin fixture"
}

func (FixtureSource) Rows() ([]dataset.Reading, error) {
	return dataset.DefaultData(), nil
}
