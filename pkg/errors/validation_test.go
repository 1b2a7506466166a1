package errors

import (
	"strings"
	"testing"
)

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "chart.svg", false},
		{"nested path", "out/charts/range.png", false},
		{"empty", "", true},
		{"traversal", "../secrets/chart.svg", true},
		{"null byte", "chart\x00.svg", true},
		{"control character", "chart\n.svg", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidPath {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{"six digit hex", "#FCC509", false},
		{"three digit hex", "#FFF", false},
		{"rgba", "rgba(0,0,0,0.85)", false},
		{"rgb", "rgb(24,144,255)", false},
		{"transparent", "transparent", false},
		{"white", "white", false},
		{"empty", "", true},
		{"bad hex length", "#FFFF", true},
		{"bad hex digit", "#GGHHII", true},
		{"unknown keyword", "chartreuse", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidColor {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidColor)
			}
		})
	}
}
