package scene

import "testing"

func TestPath_Builders(t *testing.T) {
	var p Path
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.CubicTo(5, 6, 7, 8, 9, 10)
	p.Close()

	wantOps := []Op{OpMoveTo, OpLineTo, OpCubicTo, OpClose}
	if len(p) != len(wantOps) {
		t.Fatalf("path has %d commands, want %d", len(p), len(wantOps))
	}
	for i, op := range wantOps {
		if p[i].Op != op {
			t.Errorf("command %d op = %c, want %c", i, p[i].Op, op)
		}
	}
	if p[2].X1 != 5 || p[2].Y2 != 8 || p[2].X != 9 {
		t.Errorf("cubic command = %+v, want control points (5,6,7,8) endpoint (9,10)", p[2])
	}
}

func TestCirclePath(t *testing.T) {
	p := CirclePath(10, 20, 3)

	// One move, four quadrant curves, one close.
	if len(p) != 6 {
		t.Fatalf("circle path has %d commands, want 6", len(p))
	}
	if p[0].Op != OpMoveTo || p[0].X != 13 || p[0].Y != 20 {
		t.Errorf("circle starts at (%v, %v), want (13, 20)", p[0].X, p[0].Y)
	}
	for i := 1; i <= 4; i++ {
		if p[i].Op != OpCubicTo {
			t.Errorf("command %d op = %c, want C", i, p[i].Op)
		}
	}
	if p[5].Op != OpClose {
		t.Errorf("circle does not close, last op = %c", p[5].Op)
	}
	// The last curve returns to the start point.
	if p[4].X != 13 || p[4].Y != 20 {
		t.Errorf("circle ends at (%v, %v), want (13, 20)", p[4].X, p[4].Y)
	}
}

func TestRectPath(t *testing.T) {
	p := RectPath(1, 2, 10, 20)

	if len(p) != 5 {
		t.Fatalf("rect path has %d commands, want 5", len(p))
	}
	if p[2].X != 11 || p[2].Y != 22 {
		t.Errorf("far corner = (%v, %v), want (11, 22)", p[2].X, p[2].Y)
	}
	if p[4].Op != OpClose {
		t.Errorf("rect does not close, last op = %c", p[4].Op)
	}
}

func TestPaintStyle_IsZero(t *testing.T) {
	if !(PaintStyle{}).IsZero() {
		t.Error("zero PaintStyle should report IsZero")
	}
	if (PaintStyle{Fill: "#FCC509"}).IsZero() {
		t.Error("filled PaintStyle should not report IsZero")
	}
}
