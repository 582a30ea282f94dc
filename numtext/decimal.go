// Exact-decimal input path built on github.com/govalues/decimal.
package numtext

import (
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

var bigOne = big.NewInt(1)

// convertDecimal converts an exact decimal to Danish text with the same
// floor-then-read-digits rule as convertFloat. The radix split operates
// on the decimal's exact textual form, so shortest-float rendering
// artifacts cannot occur. Trailing fractional zeros are significant to
// the written form and are read out: "3.10" ends in nul.
func convertDecimal(d decimal.Decimal) string {
	s := d.String()

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	frac := ""
	if dot := strings.IndexByte(s, '.'); dot != -1 {
		s, frac = s[:dot], s[dot+1:]
	}

	whole, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return ""
	}
	if neg {
		whole.Neg(whole)
		// Mathematical floor: a negative value with a nonzero fraction
		// rounds away from zero.
		if !allZeros(frac) {
			whole.Sub(whole, bigOne)
		}
	}

	wholeText := convertBig(whole)
	if frac == "" {
		return wholeText
	}
	return joinFraction(wholeText, frac)
}

// allZeros reports whether s consists entirely of '0' characters.
func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
