package collections

import (
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Ranks used when compareLoose has to order values of unrelated kinds.
const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankTime
	rankOther
)

// compareLoose orders two dynamic values for SortBy.
func compareLoose(a, b any) int {
	if af, ok := looseNumber(a); ok {
		if bf, ok := looseNumber(b); ok {
			return cmp.Compare(af, bf)
		}
	}

	ra, rb := looseRank(a), looseRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankNil:
		return 0
	case rankBool:
		ab, bb := a.(bool), b.(bool)
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		}
		return 1
	case rankString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case rankTime:
		return a.(time.Time).Compare(b.(time.Time))
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func looseRank(v any) int {
	switch v.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case time.Time:
		return rankTime
	case json.Number:
		return rankNumber
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rankNumber
	case reflect.String:
		return rankString
	}
	return rankOther
}

// looseNumber reports the numeric value of numbers and numeric strings.
func looseNumber(v any) (float64, bool) {
	if looseRank(v) == rankNumber {
		rv := reflect.ValueOf(v)
		switch {
		case rv.CanInt():
			return float64(rv.Int()), true
		case rv.CanUint():
			return float64(rv.Uint()), true
		case rv.CanFloat():
			return rv.Float(), true
		}
	}
	var s string
	switch n := v.(type) {
	case json.Number:
		s = n.String()
	default:
		if looseRank(v) != rankString {
			return 0, false
		}
		s = strings.TrimSpace(reflect.ValueOf(v).String())
	}
	if s == "" {
		return 0, false
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, false
	}
	return f, true
}
