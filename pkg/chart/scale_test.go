package chart

import "testing"

func TestLinearScale_Map(t *testing.T) {
	s := newLinearScale(0, 100, 280, 20) // inverted range, like a y axis

	tests := []struct {
		v    float64
		want float64
	}{
		{0, 280},
		{100, 20},
		{50, 150},
	}
	for _, tt := range tests {
		if got := s.Map(tt.v); got != tt.want {
			t.Errorf("Map(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestLinearScale_DegenerateDomain(t *testing.T) {
	s := newLinearScale(0, 0, 0, 100)
	if got := s.Map(0); got != 0 {
		t.Errorf("Map(0) on a degenerate domain = %v, want 0", got)
	}
}

func TestBandScale(t *testing.T) {
	s := newBandScale(4, 0, 400)

	if got := s.Width(); got != 100 {
		t.Errorf("Width() = %v, want 100", got)
	}
	if got := s.Center(0); got != 50 {
		t.Errorf("Center(0) = %v, want 50", got)
	}
	if got := s.Center(3); got != 350 {
		t.Errorf("Center(3) = %v, want 350", got)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []float64
	}{
		{"float64", 3.5, []float64{3.5}},
		{"int", 7, []float64{7}},
		{"int64", int64(7), []float64{7}},
		{"float slice", []float64{1, 2}, []float64{1, 2}},
		{"int slice", []int{1, 2}, []float64{1, 2}},
		{"any slice from toml", []any{int64(76), int64(100)}, []float64{76, 100}},
		{"string", "nope", nil},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numbers(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("numbers(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("numbers(%v)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}
