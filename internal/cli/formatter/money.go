package formatter

import (
	"fmt"
	"math"
	"strconv"
)

// FormatTRY renders an amount in Turkish lira with dot-grouped thousands
// and no decimals, e.g. 245000 -> "₺245.000". Fractional amounts keep two
// comma-separated decimals, matching the tr-TR locale.
func FormatTRY(amount float64) string {
	neg := amount < 0
	amount = math.Abs(amount)

	whole := int64(amount)
	frac := amount - float64(whole)

	grouped := groupThousands(whole)
	out := "₺" + grouped
	if frac > 0.004 {
		cents := int(math.Round(frac * 100))
		if cents == 100 {
			grouped = groupThousands(whole + 1)
			out = "₺" + grouped
		} else {
			out += fmt.Sprintf(",%02d", cents)
		}
	}
	if neg {
		out = "-" + out
	}
	return out
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
