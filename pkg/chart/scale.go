package chart

// linearScale maps a numeric domain onto a pixel range. The range may
// be inverted (r0 > r1), which is how y axes map larger values higher
// on screen.
type linearScale struct {
	d0, d1 float64 // domain
	r0, r1 float64 // range (pixels)
}

func newLinearScale(d0, d1, r0, r1 float64) linearScale {
	if d0 == d1 {
		d1 = d0 + 1 // avoid a degenerate domain
	}
	return linearScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Map converts a domain value to a pixel position.
func (s linearScale) Map(v float64) float64 {
	t := (v - s.d0) / (s.d1 - s.d0)
	return s.r0 + t*(s.r1-s.r0)
}

// bandScale assigns each of n ordinal positions an equal-width band
// across the pixel range and maps indexes to band centers.
type bandScale struct {
	n      int
	r0, r1 float64
}

func newBandScale(n int, r0, r1 float64) bandScale {
	if n < 1 {
		n = 1
	}
	return bandScale{n: n, r0: r0, r1: r1}
}

// Center returns the pixel center of band i.
func (s bandScale) Center(i int) float64 {
	w := (s.r1 - s.r0) / float64(s.n)
	return s.r0 + w*(float64(i)+0.5)
}

// Width returns the band width in pixels.
func (s bandScale) Width() float64 {
	return (s.r1 - s.r0) / float64(s.n)
}

// numbers coerces a record field into a slice of float64 values.
// Scalars yield one element; slices yield one element per entry.
// Non-numeric values yield nil. TOML and JSON decoding produce int64
// and float64 respectively, so both are handled.
func numbers(v any) []float64 {
	switch n := v.(type) {
	case float64:
		return []float64{n}
	case float32:
		return []float64{float64(n)}
	case int:
		return []float64{float64(n)}
	case int64:
		return []float64{float64(n)}
	case []float64:
		out := make([]float64, len(n))
		copy(out, n)
		return out
	case []int:
		out := make([]float64, len(n))
		for i, e := range n {
			out[i] = float64(e)
		}
		return out
	case []int64:
		out := make([]float64, len(n))
		for i, e := range n {
			out[i] = float64(e)
		}
		return out
	case []any:
		out := make([]float64, 0, len(n))
		for _, e := range n {
			if sub := numbers(e); len(sub) == 1 {
				out = append(out, sub[0])
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return nil
}
