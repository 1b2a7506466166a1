package chart

import (
	"testing"

	"github.com/plotmark/plotmark/pkg/scene"
)

func testRecords() []Record {
	return []Record{
		{"name": "a", "value": []float64{50, 100}},
		{"name": "b", "value": []float64{25, 75}},
	}
}

func newRangeView(t *testing.T) *View {
	t.Helper()
	v, err := NewView(Config{
		Width: 440, Height: 320,
		Data:   testRecords(),
		XField: "name", YField: "value",
		Kind: GeomRange,
	})
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	return v
}

func TestNewView_Validation(t *testing.T) {
	if _, err := NewView(Config{Width: 0, Height: 100, XField: "x", YField: "y"}); err != ErrInvalidSize {
		t.Errorf("zero width error = %v, want ErrInvalidSize", err)
	}
	if _, err := NewView(Config{Width: 100, Height: 100, XField: "", YField: "y"}); err != ErrMissingField {
		t.Errorf("missing x field error = %v, want ErrMissingField", err)
	}
}

func TestView_MapDataRange(t *testing.T) {
	v := newRangeView(t)
	data := v.Geometries()[0].Data()

	if len(data) != 2 {
		t.Fatalf("mapped %d records, want 2", len(data))
	}

	// Bands span [20, 420] with two 200px bands.
	if got := data[0].X[0]; got != 120 {
		t.Errorf("record 0 x = %v, want 120", got)
	}
	if got := data[1].X[0]; got != 320 {
		t.Errorf("record 1 x = %v, want 320", got)
	}

	// y domain [0, 100] maps onto [300, 20]; the high end comes first.
	if got := data[0].Y; got[0] != 20 || got[1] != 160 {
		t.Errorf("record 0 y = %v, want [20 160]", got)
	}
	if got := data[1].Y; got[0] != 90 || got[1] != 230 {
		t.Errorf("record 1 y = %v, want [90 230]", got)
	}

	if data[0].Origin["name"] != "a" {
		t.Errorf("record 0 origin = %v, want the source record", data[0].Origin)
	}
}

func TestView_MapDataSwapsInvertedPair(t *testing.T) {
	v, err := NewView(Config{
		Width: 440, Height: 320,
		Data:   []Record{{"name": "a", "value": []float64{100, 50}}},
		XField: "name", YField: "value",
		Kind: GeomRange,
	})
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}

	d := v.Geometries()[0].Data()[0]
	if d.Y[0] != 20 || d.Y[1] != 160 {
		t.Errorf("inverted pair mapped to %v, want [20 160]", d.Y)
	}
}

func TestView_MapDataColumn(t *testing.T) {
	v, err := NewView(Config{
		Width: 440, Height: 320,
		Data:   []Record{{"name": "a", "value": 100.0}},
		XField: "name", YField: "value",
		Kind: GeomColumn,
	})
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}

	d := v.Geometries()[0].Data()[0]
	if len(d.Y) != 1 || d.Y[0] != 20 {
		t.Errorf("column y = %v, want [20]", d.Y)
	}
}

func TestView_SkipsNonNumericRecords(t *testing.T) {
	v, err := NewView(Config{
		Width: 440, Height: 320,
		Data: []Record{
			{"name": "a", "value": []float64{50, 100}},
			{"name": "bad", "value": "not a number"},
		},
		XField: "name", YField: "value",
		Kind: GeomRange,
	})
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}

	if got := len(v.Geometries()[0].Data()); got != 1 {
		t.Errorf("mapped %d records, want 1 (bad record skipped)", got)
	}
}

func TestView_DrawsColumns(t *testing.T) {
	v := newRangeView(t)

	var plot *scene.Group
	for _, n := range v.Canvas().Root().Children() {
		if g, ok := n.(*scene.Group); ok && g.Name() == "plot" {
			plot = g
		}
	}
	if plot == nil {
		t.Fatal("no plot layer in the scene")
	}

	if got := len(plot.Children()); got != 2 {
		t.Fatalf("plot holds %d shapes, want 2", got)
	}

	col, ok := plot.Children()[0].(*scene.Shape)
	if !ok {
		t.Fatal("plot child is not a shape")
	}
	if col.Name != "column-0" {
		t.Errorf("column name = %q, want %q", col.Name, "column-0")
	}
	if col.W != 100 { // half the 200px band
		t.Errorf("column width = %v, want 100", col.W)
	}
	if col.Y != 20 || col.H != 140 {
		t.Errorf("column box = (y=%v, h=%v), want (20, 140)", col.Y, col.H)
	}
}

func TestView_RenderOrder(t *testing.T) {
	v := newRangeView(t)

	// The subscriber must observe freshly mapped geometry.
	var seen []MappedDatum
	v.OnBeforeRender(func() {
		seen = v.Geometries()[0].Data()
	})

	v.ChangeData([]Record{{"name": "c", "value": []float64{10, 40}}})

	if len(seen) != 1 {
		t.Fatalf("subscriber saw %d mapped records, want 1", len(seen))
	}
	if seen[0].Origin["name"] != "c" {
		t.Errorf("subscriber saw origin %v, want the new record", seen[0].Origin)
	}
}

func TestView_OnBeforeRenderCancel(t *testing.T) {
	v := newRangeView(t)

	calls := 0
	cancel := v.OnBeforeRender(func() { calls++ })

	v.Render()
	cancel()
	v.Render()

	if calls != 1 {
		t.Errorf("subscriber ran %d times, want 1 (canceled before second render)", calls)
	}
}

func TestView_RenderFlushesCanvas(t *testing.T) {
	v := newRangeView(t)

	before := v.Canvas().Draws()
	v.Render()

	if got := v.Canvas().Draws(); got != before+1 {
		t.Errorf("Draws() = %d after render, want %d", got, before+1)
	}
}

func TestView_ClickStream(t *testing.T) {
	v := newRangeView(t)

	var hits []scene.Node
	cancel := v.OnClick(func(ev *scene.Event) { hits = append(hits, ev.Target) })

	v.Canvas().Dispatch(scene.Click, 120, 100) // inside column-0
	v.Canvas().Dispatch(scene.Click, 1, 1)     // empty corner

	if len(hits) != 2 {
		t.Fatalf("click handler fired %d times, want 2", len(hits))
	}
	if hits[0] == nil {
		t.Error("click on a column should carry its target")
	}
	if hits[1] != nil {
		t.Error("click on empty canvas should carry a nil target")
	}

	cancel()
	v.Canvas().Dispatch(scene.Click, 120, 100)
	if len(hits) != 2 {
		t.Errorf("cancelled click handler fired, %d hits total", len(hits))
	}
}
