package dataset

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MaxHeaderLen is the longest display header a DataSet accepts.
const MaxHeaderLen = 30

var (
	validate   = validator.New()
	headerRule = fmt.Sprintf("max=%d", MaxHeaderLen)
)

// Reading is a single air quality observation: a zip code, a time-of-day
// bucket, and a particulate concentration. Readings are never mutated
// after loading.
type Reading struct {
	ZipCode       string
	TimeOfDay     string
	Concentration float64
}

// DataSet holds loaded readings together with the labels derived from
// them: the distinct zip codes (each with an active filter flag) and the
// distinct time-of-day buckets. A DataSet distinguishes "never loaded"
// from "loaded with zero rows".
type DataSet struct {
	header    string
	loaded    bool
	readings  []Reading
	zipOrder  []string // first-seen order across readings
	zipActive map[string]bool
	times     []string // first-seen order, fixed for the lifetime of a load
}

// New creates an unloaded DataSet with an empty header.
func New() *DataSet {
	return &DataSet{
		zipActive: make(map[string]bool),
	}
}

// Load replaces all readings with the given rows and recomputes the zip
// filter mapping and time labels from scratch. Every zip starts active;
// filter flags from a previous load do not survive. The input slice is
// copied, so the caller may reuse it.
func (d *DataSet) Load(rows []Reading) {
	d.readings = make([]Reading, len(rows))
	copy(d.readings, rows)
	d.loaded = true
	d.initializeLabels()
}

func (d *DataSet) initializeLabels() {
	zipOrder := make([]string, 0, len(d.zipOrder))
	zipActive := make(map[string]bool, len(d.zipActive))
	times := make([]string, 0, len(d.times))
	seenTimes := make(map[string]struct{}, len(d.times))

	for _, r := range d.readings {
		if _, ok := zipActive[r.ZipCode]; !ok {
			zipActive[r.ZipCode] = true
			zipOrder = append(zipOrder, r.ZipCode)
		}
		if _, ok := seenTimes[r.TimeOfDay]; !ok {
			seenTimes[r.TimeOfDay] = struct{}{}
			times = append(times, r.TimeOfDay)
		}
	}

	d.zipOrder = zipOrder
	d.zipActive = zipActive
	d.times = times
}

// SetHeader stores the display header. Headers longer than MaxHeaderLen
// are rejected with ErrHeaderTooLong and the previous header is kept.
func (d *DataSet) SetHeader(text string) error {
	if err := validate.Var(text, headerRule); err != nil {
		return fmt.Errorf("%w: got %d characters, max %d",
			ErrHeaderTooLong, utf8.RuneCountInString(text), MaxHeaderLen)
	}
	d.header = text
	return nil
}

// Header returns the stored display header.
func (d *DataSet) Header() string {
	return d.header
}

// Readings returns a copy of the loaded readings and whether a load has
// ever occurred. (nil, false) means never loaded; an empty slice with
// true means a load produced zero rows.
func (d *DataSet) Readings() ([]Reading, bool) {
	if !d.loaded {
		return nil, false
	}
	out := make([]Reading, len(d.readings))
	copy(out, d.readings)
	return out, true
}

// ZipFilters returns a copy of the zip code to active-flag mapping.
func (d *DataSet) ZipFilters() map[string]bool {
	out := make(map[string]bool, len(d.zipActive))
	for zip, active := range d.zipActive {
		out[zip] = active
	}
	return out
}

// Zips returns the zip codes in first-seen order. This is the row order
// of rendered cross tables and the order the filter menu numbers.
func (d *DataSet) Zips() []string {
	out := make([]string, len(d.zipOrder))
	copy(out, d.zipOrder)
	return out
}

// Times returns the time-of-day labels in first-seen order, the column
// order of rendered cross tables.
func (d *DataSet) Times() []string {
	out := make([]string, len(d.times))
	copy(out, d.times)
	return out
}

// ToggleZip flips the active flag for the given zip code. Toggling a zip
// that is not in the filter mapping fails with ErrUnknownZip and changes
// nothing.
func (d *DataSet) ToggleZip(zip string) error {
	if _, ok := d.zipActive[zip]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownZip, zip)
	}
	d.zipActive[zip] = !d.zipActive[zip]
	return nil
}
