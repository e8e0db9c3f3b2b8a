package datasets

import (
	"go-ml.dev/pkg/periodic/tables"
	"gotest.tools/assert"
	"io"
	"math"
	"strings"
	"testing"
)

func Test_Cities(t *testing.T) {
	c := Cities()
	assert.Equal(t, c.Len(), 3)
	assert.DeepEqual(t, c.Names(), []string{CityName, Population, Area, Density, WideAndSaint})
	assert.Assert(t, math.Abs(c.Col(Density).Float(1)-1015785/176.53) < 1e-9)
	assert.DeepEqual(t, c.Col(WideAndSaint).Bools(), []bool{false, true, false})
}

const housingCSV = `total_rooms,population,median_house_value
5612,1015,66900
7650,1129,80100
720,100,85700
`

type stringSource string

func (s stringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(s))), nil
}

func Test_Housing(t *testing.T) {
	h, err := LoadHousing(stringSource(housingCSV), 1)
	assert.NilError(t, err)
	assert.Equal(t, h.Len(), 3)
	sum := 0.0
	for _, v := range h.Col(MedianHouseValue).Floats() {
		sum += v
	}
	assert.Assert(t, math.Abs(sum-232.7) < 1e-9)

	r, err := WithRoomsPerPerson(h, 0)
	assert.NilError(t, err)
	assert.Equal(t, r.Width(), 4)
	assert.Assert(t, r.Col(RoomsPerPerson).Float(0) > 0)

	clipped, err := WithRoomsPerPerson(h, 5)
	assert.NilError(t, err)
	for _, v := range clipped.Col(RoomsPerPerson).Floats() {
		assert.Assert(t, v <= 5)
	}
	found := false
	for _, v := range clipped.Col(RoomsPerPerson).Floats() {
		found = found || v == 5
	}
	assert.Assert(t, found)
}

func Test_HousingMissingColumns(t *testing.T) {
	q, err := tables.New([]string{"a"}, tables.Col([]int{1}))
	assert.NilError(t, err)
	_, err = PrepareHousing(q, 0)
	assert.ErrorContains(t, err, MedianHouseValue)
	_, err = WithRoomsPerPerson(q, 5)
	assert.ErrorContains(t, err, TotalRooms)
}
