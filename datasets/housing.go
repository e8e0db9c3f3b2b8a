package datasets

import (
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/periodic/tables"
	"go-ml.dev/pkg/zorros/zorros"
	"math"
	"path/filepath"
)

const HousingURL = "https://storage.googleapis.com/mledu-datasets/california_housing_train.csv"

const (
	MedianHouseValue = "median_house_value"
	TotalRooms       = "total_rooms"
	HousePopulation  = "population"
	RoomsPerPerson   = "rooms_per_person"
)

/*
HousingSource returns the cached remote housing CSV
*/
func HousingSource() tables.Source {
	return iokit.Url(HousingURL, iokit.Cache(filepath.Join("go-ml", "Datasets", "california_housing_train.csv")))
}

/*
LoadHousing reads the housing CSV, shuffles rows and scales median house value to thousands
*/
func LoadHousing(source tables.Source, seed int64) (*tables.Table, error) {
	t, err := tables.ReadCSV(source)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to load housing dataset: %v", err.Error())
	}
	return PrepareHousing(t, seed)
}

/*
PrepareHousing shuffles rows and scales median house value to thousands
*/
func PrepareHousing(t *tables.Table, seed int64) (*tables.Table, error) {
	if _, err := t.Lookup(MedianHouseValue); err != nil {
		return nil, err
	}
	t = t.Shuffle(seed)
	return t.With(t.Col(MedianHouseValue).Scale(1/1000.0), MedianHouseValue), nil
}

/*
WithRoomsPerPerson derives rooms per person feature, values are clipped to maximum if it is positive
*/
func WithRoomsPerPerson(t *tables.Table, maximum float64) (*tables.Table, error) {
	rooms, err := t.Lookup(TotalRooms)
	if err != nil {
		return nil, err
	}
	people, err := t.Lookup(HousePopulation)
	if err != nil {
		return nil, err
	}
	c := rooms.Div(people)
	if maximum > 0 {
		c = c.Map(func(x float64) float64 { return math.Min(x, maximum) })
	}
	return t.With(c, RoomsPerPerson), nil
}
