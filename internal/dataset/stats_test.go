package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossTabStatisticsScenario(t *testing.T) {
	d := loadedFixture(t)

	got, err := d.CrossTabStatistics("94040", "Morning")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.Min, 1e-9)
	assert.InDelta(t, 2.0, got.Avg, 1e-9)
	assert.InDelta(t, 3.0, got.Max, 1e-9)
}

func TestCrossTabStatisticsSingleReading(t *testing.T) {
	d := loadedFixture(t)

	got, err := d.CrossTabStatistics("94022", "Midday")
	require.NoError(t, err)
	assert.Equal(t, Summary{Min: 1.0, Avg: 1.0, Max: 1.0}, got)
}

func TestCrossTabStatisticsOrdering(t *testing.T) {
	d := loadedFixture(t)

	for _, zip := range d.Zips() {
		for _, timeOfDay := range d.Times() {
			got, err := d.CrossTabStatistics(zip, timeOfDay)
			if err != nil {
				continue
			}
			assert.LessOrEqual(t, got.Min, got.Avg, "%s/%s", zip, timeOfDay)
			assert.LessOrEqual(t, got.Avg, got.Max, "%s/%s", zip, timeOfDay)
		}
	}
}

func TestCrossTabStatisticsUnloaded(t *testing.T) {
	d := New()

	_, err := d.CrossTabStatistics("94040", "Morning")
	assert.ErrorIs(t, err, ErrEmptyDataset)
	assert.NotErrorIs(t, err, ErrNoMatchingItems)
}

func TestCrossTabStatisticsLoadedEmpty(t *testing.T) {
	d := New()
	d.Load(nil)

	_, err := d.CrossTabStatistics("94040", "Morning")
	assert.ErrorIs(t, err, ErrEmptyDataset)
	assert.NotErrorIs(t, err, ErrNoMatchingItems)
}

func TestCrossTabStatisticsNoMatch(t *testing.T) {
	d := loadedFixture(t)

	// Zip and time both exist in the data, just never together.
	_, err := d.CrossTabStatistics("12345", "Evening")
	assert.ErrorIs(t, err, ErrNoMatchingItems)
	assert.NotErrorIs(t, err, ErrEmptyDataset)
}

func TestCrossTabStatisticsIsExactMatch(t *testing.T) {
	d := loadedFixture(t)

	_, err := d.CrossTabStatistics("94040", "morning")
	assert.ErrorIs(t, err, ErrNoMatchingItems, "matching is case-sensitive")

	_, err = d.CrossTabStatistics(" 94040", "Morning")
	assert.ErrorIs(t, err, ErrNoMatchingItems, "no trimming or normalization")
}

func TestSummaryValue(t *testing.T) {
	s := Summary{Min: 1, Avg: 2, Max: 3}

	tests := []struct {
		stat Statistic
		want float64
	}{
		{StatMin, 1},
		{StatAvg, 2},
		{StatMax, 3},
	}
	for _, tc := range tests {
		got, err := s.Value(tc.stat)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := s.Value(Statistic("median"))
	assert.Error(t, err)
}

func TestStatisticValid(t *testing.T) {
	assert.True(t, StatMin.Valid())
	assert.True(t, StatAvg.Valid())
	assert.True(t, StatMax.Valid())
	assert.False(t, Statistic("").Valid())
	assert.False(t, Statistic("median").Valid())
}
