package cli

import "strconv"

// formatPrice группирует разряды: 52000000 -> "52 000 000 RUB"
func formatPrice(price int64) string {
	s := strconv.FormatInt(price, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, digit)
	}

	result := string(out)
	if neg {
		result = "-" + result
	}
	return result + " RUB"
}
