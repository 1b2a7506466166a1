package sink

import (
	"strconv"
	"strings"
)

// parseColor parses the CSS color subset used by chart styles: 3- and
// 6-digit hex, rgb(...)/rgba(...), and "transparent". ok is false for
// transparent, empty, or unparseable values, which callers treat as
// "do not paint".
func parseColor(s string) (r, g, b, a float64, ok bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "transparent" || s == "none":
		return 0, 0, 0, 0, false
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGBA(s[5:len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBA(s[4:len(s)-1], false)
	case s == "white":
		return 1, 1, 1, 1, true
	case s == "black":
		return 0, 0, 0, 1, true
	}
	return 0, 0, 0, 0, false
}

func parseHex(s string) (r, g, b, a float64, ok bool) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, 0, false
	}
	r = float64(v>>16&0xFF) / 255
	g = float64(v>>8&0xFF) / 255
	b = float64(v&0xFF) / 255
	return r, g, b, 1, true
}

func parseRGBA(s string, withAlpha bool) (r, g, b, a float64, ok bool) {
	parts := strings.Split(s, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return 0, 0, 0, 0, false
	}
	channel := func(p string) (float64, bool) {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || n < 0 || n > 255 {
			return 0, false
		}
		return n / 255, true
	}
	var cok bool
	if r, cok = channel(parts[0]); !cok {
		return 0, 0, 0, 0, false
	}
	if g, cok = channel(parts[1]); !cok {
		return 0, 0, 0, 0, false
	}
	if b, cok = channel(parts[2]); !cok {
		return 0, 0, 0, 0, false
	}
	a = 1
	if withAlpha {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || n < 0 || n > 1 {
			return 0, 0, 0, 0, false
		}
		a = n
	}
	return r, g, b, a, true
}
