package excel

import "strconv"

// FormatPair renders two comparison values. When both are numeric they are
// printed with two decimals and ok is true; otherwise their raw text is
// returned unchanged.
func FormatPair(a, b Value) (string, string, bool) {
	if a.IsNumber && b.IsNumber {
		return formatFixed2(a.Number), formatFixed2(b.Number), true
	}
	return a.String(), b.String(), false
}

func formatFixed2(n float64) string {
	return strconv.FormatFloat(n, 'f', 2, 64)
}
