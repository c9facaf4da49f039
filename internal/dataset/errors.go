package dataset

import "errors"

var (
	// ErrEmptyDataset is returned when no load has occurred yet, or the
	// last load produced zero rows.
	ErrEmptyDataset = errors.New("no data loaded")

	// ErrNoMatchingItems is returned when the dataset has rows but none
	// match a requested zip/time pair.
	ErrNoMatchingItems = errors.New("no readings match")

	// ErrHeaderTooLong is returned when a header exceeds MaxHeaderLen.
	ErrHeaderTooLong = errors.New("header too long")

	// ErrUnknownZip is returned when a toggle targets a zip code that is
	// not present in the filter mapping.
	ErrUnknownZip = errors.New("zip code not in dataset")
)
