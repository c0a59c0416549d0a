package convert

import (
	"strconv"

	"github.com/gogf/gf/util/gconv"
)

type StrTo string

func (s StrTo) String() string {
	return string(s)
}

func (s StrTo) Int() (int, error) {
	return strconv.Atoi(s.String())
}

func (s StrTo) MustInt() int {
	return gconv.Int(s.String())
}

func (s StrTo) Float64() (float64, error) {
	return strconv.ParseFloat(s.String(), 64)
}

func (s StrTo) MustFloat64() float64 {
	return gconv.Float64(s.String())
}

func (s StrTo) MustBool() bool {
	return gconv.Bool(s.String())
}
