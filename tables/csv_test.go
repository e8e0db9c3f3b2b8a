package tables

import (
	"bytes"
	"github.com/ulikunitz/xz"
	"gotest.tools/assert"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const housingCSV = `longitude,latitude,total_rooms,population,median_house_value
-114.31,34.19,5612,1015,66900
-114.47,34.4,7650,1129,80100
-114.56,33.69,720,333,85700
-114.57,33.64,1501,515,73400
`

func Test_DecodeCSV(t *testing.T) {
	q, err := DecodeCSV(strings.NewReader(housingCSV))
	assert.NilError(t, err)
	assert.Equal(t, q.Len(), 4)
	assert.Equal(t, q.Width(), 5)
	assert.Equal(t, q.Col("total_rooms").Kind(), Float)
	assert.Equal(t, q.Col("median_house_value").Float(2), 85700.0)
}

func Test_DecodeXzCSV(t *testing.T) {
	bf := &bytes.Buffer{}
	w, err := xz.NewWriter(bf)
	assert.NilError(t, err)
	_, err = w.Write([]byte(housingCSV))
	assert.NilError(t, err)
	assert.NilError(t, w.Close())

	q, err := DecodeCSV(bf)
	assert.NilError(t, err)
	assert.Equal(t, q.Len(), 4)
	assert.Equal(t, q.Col("population").Float(3), 515.0)
}

func Test_StringColumnAndComma(t *testing.T) {
	q, err := DecodeCSV(strings.NewReader("name;size\nSan Jose;1.5\nSacramento;2\n"), Comma(';'))
	assert.NilError(t, err)
	assert.Equal(t, q.Col("name").Kind(), String)
	assert.Equal(t, q.Col("size").Float(1), 2.0)
}

func Test_ReadWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "housing.csv")
	q, err := DecodeCSV(strings.NewReader(housingCSV))
	assert.NilError(t, err)
	f, err := os.Create(path)
	assert.NilError(t, err)
	assert.NilError(t, q.WriteCSV(f))
	assert.NilError(t, f.Close())

	r, err := ReadCSVFile(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, r.Names(), q.Names())
	assert.DeepEqual(t, r.Col("latitude").Floats(), q.Col("latitude").Floats())
}

func Test_Describe(t *testing.T) {
	q, err := New([]string{"x", "s"}, Col([]float64{1, 2, 3, 4, 5}), Col([]string{"a", "b", "c", "d", "e"}))
	assert.NilError(t, err)
	d, err := q.Describe()
	assert.NilError(t, err)
	assert.DeepEqual(t, d.Names(), []string{"stat", "x"})
	x := d.Col("x")
	assert.Equal(t, x.Float(0), 5.0)
	assert.Equal(t, x.Float(1), 3.0)
	assert.Assert(t, math.Abs(x.Float(2)-math.Sqrt(2.5)) < 1e-12)
	assert.Equal(t, x.Float(3), 1.0)
	assert.Equal(t, x.Float(5), 3.0)
	assert.Equal(t, x.Float(7), 5.0)

	_, err = q.Describe("y")
	assert.ErrorContains(t, err, "unknown column")
}

func Test_MissingNumbers(t *testing.T) {
	q, err := DecodeCSV(strings.NewReader("total_rooms,population,note\n5612,1015,\n,1129,\n"))
	assert.NilError(t, err)
	assert.Equal(t, q.Col("total_rooms").Kind(), Float)
	assert.Equal(t, q.Col("total_rooms").Float(0), 5612.0)
	assert.Assert(t, math.IsNaN(q.Col("total_rooms").Float(1)))
	assert.Equal(t, q.Col("population").Float(1), 1129.0)
	assert.Equal(t, q.Col("note").Kind(), String)

	d, err := q.Describe("total_rooms")
	assert.NilError(t, err)
	assert.Equal(t, d.Col("total_rooms").Float(0), 1.0)
}
