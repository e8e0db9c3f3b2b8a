package tables

import (
	"fmt"
	"go-ml.dev/pkg/periodic/fu"
	"go-ml.dev/pkg/zorros/zorros"
	"math"
	"strconv"
)

/*
Kind is a type of column values
*/
type Kind int

const (
	Float Kind = iota
	String
	Bool
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case String:
		return "string"
	case Bool:
		return "bool"
	}
	return "unknown"
}

/*
Column is an immutable sequence of values of the same kind
*/
type Column struct {
	kind    Kind
	floats  []float64
	strings []string
	bools   []bool
}

/*
Col creates a column from []float64, []int, []string or []bool
*/
func Col(a interface{}) *Column {
	switch v := a.(type) {
	case []float64:
		return &Column{kind: Float, floats: append([]float64(nil), v...)}
	case []int:
		f := make([]float64, len(v))
		for i, x := range v {
			f[i] = float64(x)
		}
		return &Column{kind: Float, floats: f}
	case []string:
		return &Column{kind: String, strings: append([]string(nil), v...)}
	case []bool:
		return &Column{kind: Bool, bools: append([]bool(nil), v...)}
	}
	panic(zorros.Panic(zorros.Errorf("unsupported column type %T", a)))
}

func (c *Column) Kind() Kind {
	return c.kind
}

func (c *Column) Len() int {
	switch c.kind {
	case String:
		return len(c.strings)
	case Bool:
		return len(c.bools)
	}
	return len(c.floats)
}

func (c *Column) Float(i int) float64 {
	switch c.kind {
	case Float:
		return c.floats[i]
	case Bool:
		if c.bools[i] {
			return 1
		}
		return 0
	}
	f, err := strconv.ParseFloat(c.strings[i], 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func (c *Column) String(i int) string {
	switch c.kind {
	case String:
		return c.strings[i]
	case Bool:
		return strconv.FormatBool(c.bools[i])
	}
	return fmt.Sprint(c.floats[i])
}

func (c *Column) Bool(i int) bool {
	switch c.kind {
	case Bool:
		return c.bools[i]
	case String:
		return c.strings[i] != ""
	}
	return c.floats[i] != 0
}

/*
Floats returns a copy of column values converted to float64
*/
func (c *Column) Floats() []float64 {
	r := make([]float64, c.Len())
	for i := range r {
		r[i] = c.Float(i)
	}
	return r
}

func (c *Column) Strings() []string {
	r := make([]string, c.Len())
	for i := range r {
		r[i] = c.String(i)
	}
	return r
}

func (c *Column) Bools() []bool {
	r := make([]bool, c.Len())
	for i := range r {
		r[i] = c.Bool(i)
	}
	return r
}

/*
Value returns the i-th value as interface{}
*/
func (c *Column) Value(i int) interface{} {
	switch c.kind {
	case String:
		return c.strings[i]
	case Bool:
		return c.bools[i]
	}
	return c.floats[i]
}

/*
Map applies f to every value of a numeric column
*/
func (c *Column) Map(f func(float64) float64) *Column {
	r := c.Floats()
	for i, x := range r {
		r[i] = f(x)
	}
	return &Column{kind: Float, floats: r}
}

func (c *Column) Scale(k float64) *Column {
	return c.Map(func(x float64) float64 { return x * k })
}

/*
Clip limits values to the range [lo,hi]
*/
func (c *Column) Clip(lo, hi float64) *Column {
	return c.Map(func(x float64) float64 { return fu.Clamp(x, lo, hi) })
}

/*
Div divides column by other column elementwise
*/
func (c *Column) Div(o *Column) *Column {
	c.mustMatch(o)
	r := c.Floats()
	for i := range r {
		r[i] /= o.Float(i)
	}
	return &Column{kind: Float, floats: r}
}

/*
Greater returns a boolean column, true where the value is greater than x
*/
func (c *Column) Greater(x float64) *Column {
	r := make([]bool, c.Len())
	for i := range r {
		r[i] = c.Float(i) > x
	}
	return &Column{kind: Bool, bools: r}
}

/*
Matches returns a boolean column, true where f reports true for the string value
*/
func (c *Column) Matches(f func(string) bool) *Column {
	r := make([]bool, c.Len())
	for i := range r {
		r[i] = f(c.String(i))
	}
	return &Column{kind: Bool, bools: r}
}

func (c *Column) And(o *Column) *Column {
	c.mustMatch(o)
	r := make([]bool, c.Len())
	for i := range r {
		r[i] = c.Bool(i) && o.Bool(i)
	}
	return &Column{kind: Bool, bools: r}
}

/*
Index returns a new column with values at positions idx.
Positions out of range become NaN, empty string or false
*/
func (c *Column) Index(idx []int) *Column {
	r := &Column{kind: c.kind}
	n := c.Len()
	for _, j := range idx {
		ok := j >= 0 && j < n
		switch c.kind {
		case Float:
			v := math.NaN()
			if ok {
				v = c.floats[j]
			}
			r.floats = append(r.floats, v)
		case String:
			v := ""
			if ok {
				v = c.strings[j]
			}
			r.strings = append(r.strings, v)
		case Bool:
			r.bools = append(r.bools, ok && c.bools[j])
		}
	}
	return r
}

func (c *Column) mustMatch(o *Column) {
	if c.Len() != o.Len() {
		panic(zorros.Panic(zorros.Errorf("column length mismatch: %d != %d", c.Len(), o.Len())))
	}
}
