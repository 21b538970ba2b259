package csvsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/config"
	"bikeshare/recordstore"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Customer,,
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
`

func newTestSource(t *testing.T) *CSVSource {
	t.Helper()
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "chicago.csv"), []byte(chicagoCSV), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "washington.csv"), []byte(washingtonCSV), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "broken.csv"), []byte(",Start Time,Trip Duration,Start Station,End Station,User Type\n0,not a date,10,A,B,Subscriber\n"), 0o600))

	return NewCSVSource(&config.Config{
		DataSource: config.DataSourceConfig{Type: "csv", DataDir: dataDir},
		Cities: map[string]string{
			"chicago":    "chicago.csv",
			"washington": "washington.csv",
			"broken":     "broken.csv",
			"missing":    "missing.csv",
		},
		Columns: config.ColumnsConfig{
			StartTime:    "Start Time",
			EndTime:      "End Time",
			Duration:     "Trip Duration",
			StartStation: "Start Station",
			EndStation:   "End Station",
			UserType:     "User Type",
			Gender:       "Gender",
			BirthYear:    "Birth Year",
		},
		TimeLayouts: []string{"2006-01-02 15:04:05"},
	})
}

func TestLoad(t *testing.T) {
	source := newTestSource(t)

	dataset, err := source.Load(context.Background(), "Chicago")
	require.NoError(t, err)
	assert.Equal(t, "chicago", dataset.City)
	assert.True(t, dataset.Schema.HasGender)
	assert.True(t, dataset.Schema.HasBirthYear)
	require.Equal(t, 3, dataset.Len())

	assert.Equal(t, "955915", dataset.Records[1].ID)
	assert.Equal(t, "Female", dataset.Records[1].Gender)
	assert.Equal(t, 5, dataset.Records[1].Month)
	assert.Equal(t, 1610.0, dataset.Records[1].Duration)
	assert.False(t, dataset.Records[2].HasGender())
	assert.False(t, dataset.Records[2].HasBirthYear())
}

func TestLoadWithoutOptionalColumns(t *testing.T) {
	dataset, err := newTestSource(t).Load(context.Background(), "washington")
	require.NoError(t, err)
	assert.False(t, dataset.Schema.HasGender)
	assert.False(t, dataset.Schema.HasBirthYear)
	assert.Equal(t, 489.066, dataset.Records[0].Duration)
}

func TestLoadErrors(t *testing.T) {
	source := newTestSource(t)

	_, err := source.Load(context.Background(), "boston")
	assert.ErrorIs(t, err, recordstore.ErrCityNotFound)

	_, err = source.Load(context.Background(), "broken")
	assert.ErrorIs(t, err, recordstore.ErrMalformedData)

	_, err = source.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestSource(t).Load(ctx, "chicago")
	assert.ErrorIs(t, err, context.Canceled)
}
