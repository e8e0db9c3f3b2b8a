package tables

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros/zorros"
	"io"
	"math"
	"strconv"
	"strings"
)

/*
Source is anything able to open a stream, iokit.File and iokit.Url are sources
*/
type Source interface {
	Open() (io.ReadCloser, error)
}

var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

/*
Comma is an option of ReadCSV specifying the field separator
*/
type Comma rune

/*
ReadCSV reads a table from CSV source with header row.
Columns containing only numbers become float columns, others are strings.
Xz compressed streams are decompressed transparently
*/
func ReadCSV(source Source, opts ...interface{}) (t *Table, err error) {
	rd, err := source.Open()
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer rd.Close()
	return DecodeCSV(rd, opts...)
}

/*
ReadCSVFile reads CSV table from the local file
*/
func ReadCSVFile(path string, opts ...interface{}) (*Table, error) {
	return ReadCSV(iokit.File(path), opts...)
}

/*
DecodeCSV reads a table from the CSV stream
*/
func DecodeCSV(r io.Reader, opts ...interface{}) (*Table, error) {
	br := bufio.NewReader(r)
	var rd io.Reader = br
	if magic, _ := br.Peek(len(xzMagic)); bytes.Equal(magic, xzMagic) {
		x, err := xz.NewReader(br)
		if err != nil {
			return nil, zorros.Wrapf(err, "failed to open xz stream: %v", err.Error())
		}
		rd = x
	}
	cr := csv.NewReader(rd)
	for _, o := range opts {
		if c, ok := o.(Comma); ok {
			cr.Comma = rune(c)
		}
	}
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to read CSV header: %v", err.Error())
	}
	cells := make([][]string, len(header))
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, zorros.Trace(err)
		}
		for j := range header {
			cells[j] = append(cells[j], row[j])
		}
	}
	cols := make([]*Column, len(header))
	for j, v := range cells {
		cols[j] = parseColumn(v)
		header[j] = strings.TrimSpace(header[j])
	}
	return New(header, cols...)
}

func parseColumn(v []string) *Column {
	f := make([]float64, len(v))
	numbers := 0
	for i, s := range v {
		s = strings.TrimSpace(s)
		if s == "" {
			f[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Col(v)
		}
		f[i] = x
		numbers++
	}
	if numbers == 0 && len(v) > 0 {
		return Col(v)
	}
	return Col(f)
}

/*
WriteCSV writes the table as CSV with header row
*/
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return zorros.Trace(err)
	}
	row := make([]string, t.Width())
	for i := 0; i < t.Len(); i++ {
		for j, c := range t.columns {
			if c.kind == Float {
				row[j] = strconv.FormatFloat(c.floats[i], 'g', -1, 64)
			} else {
				row[j] = c.String(i)
			}
		}
		if err := cw.Write(row); err != nil {
			return zorros.Trace(err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return zorros.Trace(err)
	}
	return nil
}
