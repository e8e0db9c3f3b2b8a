/*
Package tables implements a small immutable column-oriented table
used to hold and slice datasets
*/
package tables

import (
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
	"math/rand"
)

var ErrUnknownColumn = xerrors.New("unknown column")

/*
Table is an immutable set of equal length named columns
*/
type Table struct {
	names   []string
	columns []*Column
}

/*
NewEmpty creates an empty table
*/
func NewEmpty() *Table {
	return &Table{}
}

/*
New creates a table from names and columns in the same order
*/
func New(names []string, columns ...*Column) (*Table, error) {
	if len(names) != len(columns) {
		return nil, zorros.Errorf("have %d names but %d columns", len(names), len(columns))
	}
	t := NewEmpty()
	for i, c := range columns {
		if t.Width() > 0 && c.Len() != t.Len() {
			return nil, zorros.Errorf("column `%v` has %d rows, expected %d", names[i], c.Len(), t.Len())
		}
		t = t.with(c, names[i])
	}
	return t, nil
}

/*
Len returns the count of rows
*/
func (t *Table) Len() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// Width returns the count of columns
func (t *Table) Width() int {
	return len(t.columns)
}

func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

func (t *Table) index(name string) int {
	for i, n := range t.names {
		if n == name {
			return i
		}
	}
	return -1
}

/*
Lookup returns the named column or an error wrapping ErrUnknownColumn
*/
func (t *Table) Lookup(name string) (*Column, error) {
	if j := t.index(name); j >= 0 {
		return t.columns[j], nil
	}
	return nil, xerrors.Errorf("column `%v`: %w", name, ErrUnknownColumn)
}

/*
Col returns the named column and panics if it does not exist
*/
func (t *Table) Col(name string) *Column {
	c, err := t.Lookup(name)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return c
}

func (t *Table) with(c *Column, name string) *Table {
	r := &Table{names: t.Names(), columns: append([]*Column(nil), t.columns...)}
	if j := r.index(name); j >= 0 {
		r.columns[j] = c
	} else {
		r.names = append(r.names, name)
		r.columns = append(r.columns, c)
	}
	return r
}

/*
With returns a new table with the column added or replaced
*/
func (t *Table) With(c *Column, name string) *Table {
	if t.Width() > 0 && c.Len() != t.Len() {
		panic(zorros.Panic(zorros.Errorf("column `%v` has %d rows, expected %d", name, c.Len(), t.Len())))
	}
	return t.with(c, name)
}

/*
Except returns a new table without the named columns
*/
func (t *Table) Except(names ...string) *Table {
	r := &Table{}
	for i, n := range t.names {
		skip := false
		for _, x := range names {
			if x == n {
				skip = true
				break
			}
		}
		if !skip {
			r.names = append(r.names, n)
			r.columns = append(r.columns, t.columns[i])
		}
	}
	return r
}

/*
Only returns a new table with the named columns in the given order
*/
func (t *Table) Only(names ...string) (*Table, error) {
	r := &Table{}
	for _, n := range names {
		c, err := t.Lookup(n)
		if err != nil {
			return nil, err
		}
		r.names = append(r.names, n)
		r.columns = append(r.columns, c)
	}
	return r, nil
}

/*
Reindex returns a new table with rows at positions idx.
Positions out of range become rows of NaN/empty values
*/
func (t *Table) Reindex(idx []int) *Table {
	r := &Table{names: t.Names()}
	for _, c := range t.columns {
		r.columns = append(r.columns, c.Index(idx))
	}
	return r
}

/*
Slice returns rows in the range [from,to)
*/
func (t *Table) Slice(from, to int) *Table {
	if to > t.Len() {
		to = t.Len()
	}
	if from > to {
		from = to
	}
	idx := make([]int, to-from)
	for i := range idx {
		idx[i] = from + i
	}
	return t.Reindex(idx)
}

func (t *Table) Head(n int) *Table {
	return t.Slice(0, n)
}

/*
Permutation returns a random permutation of row indexes
*/
func (t *Table) Permutation(seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(t.Len())
}

/*
Shuffle returns the table with rows in random order
*/
func (t *Table) Shuffle(seed int64) *Table {
	return t.Reindex(t.Permutation(seed))
}

/*
Sample returns n randomly selected rows, or all rows shuffled if n >= Len
*/
func (t *Table) Sample(n int, seed int64) *Table {
	p := t.Permutation(seed)
	if n < len(p) {
		p = p[:n]
	}
	return t.Reindex(p)
}

/*
Filter returns rows where mask is true
*/
func (t *Table) Filter(mask *Column) *Table {
	if mask.Len() != t.Len() {
		panic(zorros.Panic(zorros.Errorf("mask has %d rows, expected %d", mask.Len(), t.Len())))
	}
	idx := []int{}
	for i := 0; i < mask.Len(); i++ {
		if mask.Bool(i) {
			idx = append(idx, i)
		}
	}
	return t.Reindex(idx)
}

/*
Row returns i-th row as a map of column name to value
*/
func (t *Table) Row(i int) map[string]interface{} {
	r := make(map[string]interface{}, len(t.names))
	for j, n := range t.names {
		r[n] = t.columns[j].Value(i)
	}
	return r
}
