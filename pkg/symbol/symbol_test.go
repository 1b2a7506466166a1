package symbol

import (
	"testing"

	"github.com/plotmark/plotmark/pkg/scene"
)

func TestKnown(t *testing.T) {
	for _, name := range []string{"circle", "square", "diamond", "triangle", "cross"} {
		if !Known(name) {
			t.Errorf("Known(%q) = false, want true", name)
		}
	}
	if Known("star") {
		t.Error(`Known("star") = true, want false`)
	}
}

func TestSymbol_ResolveFallsBackToCircle(t *testing.T) {
	want := Circle(10, 20, 3)

	for _, s := range []Symbol{{}, Named("nosuch")} {
		got := s.Resolve()(10, 20, 3)
		if len(got) != len(want) {
			t.Fatalf("fallback path has %d commands, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("fallback command %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	}
}

func TestSymbol_Custom(t *testing.T) {
	called := false
	s := Custom(func(x, y, r float64) scene.Path {
		called = true
		return scene.RectPath(x-r, y-r, 2*r, 2*r)
	})

	p := s.Resolve()(5, 5, 2)

	if !called {
		t.Fatal("custom function was not invoked")
	}
	if len(p) == 0 {
		t.Error("custom symbol produced an empty path")
	}
	if s.Name() != "" {
		t.Errorf("custom symbol Name() = %q, want empty", s.Name())
	}
}

func TestSymbol_NamedShapes(t *testing.T) {
	tests := []struct {
		name     string
		wantCmds int
	}{
		{"circle", 6},
		{"square", 5},
		{"diamond", 5},
		{"triangle", 4},
		{"cross", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Named(tt.name).Resolve()(0, 0, 1)
			if len(p) != tt.wantCmds {
				t.Errorf("%s path has %d commands, want %d", tt.name, len(p), tt.wantCmds)
			}
		})
	}
}
