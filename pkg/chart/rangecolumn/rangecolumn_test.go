package rangecolumn

import (
	"testing"

	"github.com/plotmark/plotmark/pkg/chart"
)

func TestNew(t *testing.T) {
	c, err := New(Config{
		Width: 400, Height: 300,
		Data: []chart.Record{
			{"name": "a", "value": []float64{10, 40}},
			{"name": "b", "value": []float64{20, 60}},
		},
		XField: "name", YField: "value",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	geoms := c.Geometries()
	if len(geoms) != 1 {
		t.Fatalf("Geometries() = %d, want 1", len(geoms))
	}
	if geoms[0].Kind() != chart.GeomRange {
		t.Errorf("geometry kind = %v, want GeomRange", geoms[0].Kind())
	}
	if got := len(geoms[0].Data()); got != 2 {
		t.Errorf("mapped %d records, want 2", got)
	}
	for _, d := range geoms[0].Data() {
		if len(d.Y) != 2 {
			t.Errorf("range datum y = %v, want a pair", d.Y)
		}
	}
}

func TestNew_PropagatesValidation(t *testing.T) {
	if _, err := New(Config{Width: 400, Height: 300}); err == nil {
		t.Error("New() without field names should fail")
	}
}
