package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatPrice renders an amount with the configured currency symbol.
// Whole amounts drop the decimals ("$120"), others keep two ("$80.50").
func FormatPrice(symbol string, amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if amount == math.Trunc(amount) {
		return sign + symbol + formatThousand(int64(amount))
	}
	whole := math.Trunc(amount)
	cents := int64(math.Round((amount - whole) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	return sign + symbol + formatThousand(int64(whole)) + "." + leftPad2(cents)
}

func formatThousand(n int64) string {
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}

func leftPad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
