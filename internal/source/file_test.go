package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purpleairdb/internal/dataset"
)

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "purple_air.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleExport = `Sensor,Approximate Zip Code,Lat,Lon,Time of Day,Concentration
pa-1,94022,37.4,-122.1,Morning,2.2
pa-2,94040,37.3,-122.0,Morning,3.0
Sensor,Approximate Zip Code,Lat,Lon,Time of Day,Concentration
pa-1,94022,37.4,-122.1,Midday,1.0
pa-3,12345,37.5,-122.2,Evening,3.2
`

func TestFileSourceRows(t *testing.T) {
	path := writeDataFile(t, sampleExport)
	src := NewFileSource(path)

	rows, err := src.Rows()
	require.NoError(t, err)

	assert.Equal(t, []dataset.Reading{
		{ZipCode: "94022", TimeOfDay: "Morning", Concentration: 2.2},
		{ZipCode: "94040", TimeOfDay: "Morning", Concentration: 3.0},
		{ZipCode: "94022", TimeOfDay: "Midday", Concentration: 1.0},
		{ZipCode: "12345", TimeOfDay: "Evening", Concentration: 3.2},
	}, rows, "marker rows must be excluded, data rows kept in file order")
}

func TestFileSourceBadConcentration(t *testing.T) {
	path := writeDataFile(t, "pa-1,94022,37.4,-122.1,Morning,not-a-number\n")
	src := NewFileSource(path)

	_, err := src.Rows()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestFileSourceMissingField(t *testing.T) {
	path := writeDataFile(t, "pa-1,94022,37.4,-122.1,,2.2\n")
	src := NewFileSource(path)

	_, err := src.Rows()
	assert.Error(t, err, "an empty time-of-day column must fail validation")
}

func TestFileSourceShortRow(t *testing.T) {
	path := writeDataFile(t, "pa-1,94022,Morning\n")
	src := NewFileSource(path)

	_, err := src.Rows()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope.csv"))
	_, err := src.Rows()
	assert.Error(t, err)
}

func TestFileSourceEmptyFile(t *testing.T) {
	path := writeDataFile(t, "")
	src := NewFileSource(path)

	rows, err := src.Rows()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFixtureSource(t *testing.T) {
	src := FixtureSource{}

	rows, err := src.Rows()
	require.NoError(t, err)
	assert.Equal(t, dataset.DefaultData(), rows)
	assert.Len(t, rows, 6)
	assert.Equal(t, "builtin fixture", src.Name())
}
