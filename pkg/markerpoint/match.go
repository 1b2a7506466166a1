package markerpoint

import (
	"reflect"

	"github.com/plotmark/plotmark/pkg/chart"
)

// matchDatum finds the first mapped datum whose origin record is a
// superset of target: every field present in target must exist in the
// origin with an equal value. First match in array order wins; a target
// with no match is reported as not found, never as an error, since
// upstream data and overlay targets may legitimately diverge during
// transient redraw states.
func matchDatum(data []chart.MappedDatum, target chart.Record) (chart.MappedDatum, bool) {
	for _, d := range data {
		if supersetMatch(d.Origin, target) {
			return d, true
		}
	}
	return chart.MappedDatum{}, false
}

// supersetMatch reports whether every field of target equals the
// corresponding field of origin.
func supersetMatch(origin, target chart.Record) bool {
	for k, want := range target {
		got, ok := origin[k]
		if !ok || !valueEqual(got, want) {
			return false
		}
	}
	return true
}

// valueEqual compares record fields across the numeric type variety
// that decoding produces (TOML yields int64, JSON float64, Go literals
// int). Numeric values compare by magnitude; everything else compares
// by deep equality.
func valueEqual(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	if aok != bok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
