package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates a user-supplied output file path.
// It rejects paths that could escape the working tree or smuggle
// control characters into shell output.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - No path traversal sequences (..)
//   - Maximum length of 500 characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "output path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateColor validates a CSS color string against the subset the
// renderers understand: 3- or 6-digit hex, rgb()/rgba(), and the
// keywords transparent, white, and black.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}

	c := strings.ToLower(strings.TrimSpace(color))
	switch {
	case c == "transparent" || c == "white" || c == "black":
		return nil
	case strings.HasPrefix(c, "rgb(") && strings.HasSuffix(c, ")"):
		return nil
	case strings.HasPrefix(c, "rgba(") && strings.HasSuffix(c, ")"):
		return nil
	case strings.HasPrefix(c, "#"):
		hex := c[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return New(ErrCodeInvalidColor, "hex color must have 3 or 6 digits: %q", color)
		}
		for _, r := range hex {
			if !isHexDigit(r) {
				return New(ErrCodeInvalidColor, "invalid hex digit in color: %q", color)
			}
		}
		return nil
	}
	return New(ErrCodeInvalidColor, "unsupported color: %q", color)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
