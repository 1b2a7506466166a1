package chart

// Record is one source data row. Keys are field names; values are
// whatever the caller (or a decoded config file) supplies.
type Record map[string]any

// MappedDatum pairs an original record with its resolved screen
// coordinates. X and Y hold one value for point-like geometries and an
// ordered pair for range geometries; the first component is the
// position consumers anchor to.
type MappedDatum struct {
	X, Y   []float64
	Origin Record
}

// GeomKind selects how a geometry maps the y field.
type GeomKind int

const (
	// GeomColumn maps a scalar y value to a column from the zero line.
	GeomColumn GeomKind = iota
	// GeomRange maps a [low, high] y pair to a floating column.
	GeomRange
)

// Geometry holds the mapped data produced by the last render pass.
// The view rebuilds the mapping on every render, so the slice returned
// by Data is only valid until the next pass.
type Geometry struct {
	kind GeomKind
	data []MappedDatum
}

// Kind returns the geometry kind.
func (g *Geometry) Kind() GeomKind { return g.kind }

// Data returns the mapped data from the last render pass, one entry
// per plotted record, in record order.
func (g *Geometry) Data() []MappedDatum { return g.data }
