// Unexported conversion functions for Danish number-to-text conversion.
package numtext

import (
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"
)

const (
	growGroup   = 48  // estimated bytes for a single 0-999 group
	growConvert = 96  // estimated bytes for a full cardinal conversion
	growFloat   = 160 // estimated bytes for a decimal conversion
)

// maxGroups is the number of thousand-groups the magnitude ladder can
// name: the 0-999 group plus one group per ladder entry.
const maxGroups = len(magnitudes) + 1

var bigThousand = big.NewInt(1000)

// convert converts an int64 to Danish cardinal text.
func convert(n int64) string {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = -u // two's complement negation, correct for math.MinInt64 too
	}

	var b strings.Builder
	b.Grow(growConvert)

	if neg {
		b.WriteString(wordMinus)
		b.WriteByte(' ')
	}

	if u < 1000 {
		writeGroup(&b, uint(u))
		return b.String()
	}

	var groups []uint
	for u > 0 {
		groups = append(groups, uint(u%1000))
		u /= 1000
	}
	writeGroups(&b, groups)
	return b.String()
}

// convertBig converts an arbitrary-precision integer to Danish cardinal
// text. Returns "" when |n| needs more thousand-groups than the ladder
// names.
func convertBig(n *big.Int) string {
	if n == nil {
		return ""
	}
	if n.IsInt64() {
		return convert(n.Int64())
	}

	// |n| exceeds the int64 range, so there are at least seven groups.
	q := new(big.Int).Abs(n)
	m := new(big.Int)
	var groups []uint
	for q.Sign() > 0 {
		if len(groups) == maxGroups {
			return ""
		}
		q.QuoRem(q, bigThousand, m)
		groups = append(groups, uint(m.Uint64()))
	}

	var b strings.Builder
	b.Grow(growConvert)
	if n.Sign() < 0 {
		b.WriteString(wordMinus)
		b.WriteByte(' ')
	}
	writeGroups(&b, groups)
	return b.String()
}

// writeGroups assembles thousand-groups into b. groups is ordered least
// significant first, holds values in [0, 999], and must have at least
// two entries.
func writeGroups(b *strings.Builder, groups []uint) {
	parts := make([]string, 0, len(groups))

	for i, g := range groups {
		if g == 0 {
			continue
		}

		var s string
		if i > 1 && g == 1 {
			// Only tusind takes neuter agreement; million and above
			// pair with the common-gender form ("en million").
			s = ones[1]
		} else {
			s = groupText(g)
		}

		if i == 0 && (g < 100 || groups[1] == 0) {
			// Keep the connective alive across a zero thousands-group,
			// as in "en million og én".
			if g == 1 {
				s = wordEmphOne
			}
			s = wordAnd + " " + s
		}

		if i > 0 {
			s += " " + magnitudes[i-1]
			if i > 1 && g > 1 {
				// tusind is invariant; higher magnitudes pluralize.
				s += pluralSuffix
			}
		}

		parts = append(parts, s)
	}

	// Built least significant first; the written order is the reverse.
	slices.Reverse(parts)
	b.WriteString(strings.Join(parts, " "))
}

// groupText returns the Danish text for n in [0, 999].
func groupText(n uint) string {
	var b strings.Builder
	b.Grow(growGroup)
	writeGroup(&b, n)
	return b.String()
}

// writeGroup writes a number in [0, 999] as Danish text into b.
func writeGroup(b *strings.Builder, n uint) {
	if n < 10 {
		// A bare quantity takes the neuter form of one.
		if n == 1 {
			b.WriteString(wordNeuterOne)
		} else {
			b.WriteString(ones[n])
		}
		return
	}

	h := n / 100
	t := n / 10 % 10
	o := n % 10

	if h > 0 {
		if h == 1 {
			b.WriteString(wordNeuterOne)
		} else {
			b.WriteString(ones[h])
		}
		b.WriteByte(' ')
		b.WriteString(wordHundred)
		if t+o > 0 {
			b.WriteByte(' ')
			b.WriteString(wordAnd)
			b.WriteByte(' ')
		}
	}

	switch {
	case t == 0 && o == 0:
	case t == 0 && o == 1:
		b.WriteString(wordEmphOne)
	case t == 0:
		b.WriteString(ones[o])
	case t == 1:
		b.WriteString(teens[o])
	case o == 0:
		b.WriteString(tens[t-2])
	default:
		// Ones-og-decade compounds join without spaces: "tooghalvfjerds".
		b.WriteString(ones[o])
		b.WriteString(wordAnd)
		b.WriteString(tens[t-2])
	}
}

// convertFloat converts a float64 to Danish text. The whole part is the
// mathematical floor of f; fractional digits are located in the shortest
// decimal rendering of f and read out one digit at a time.
func convertFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}

	whole, _ := big.NewFloat(math.Floor(f)).Int(nil)
	wholeText := convertBig(whole)
	if wholeText == "" {
		return ""
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot == -1 {
		return wholeText
	}
	return joinFraction(wholeText, s[dot+1:])
}

// joinFraction appends the decimal-separator word and the digit-by-digit
// reading of frac to wholeText. frac must be non-empty and hold ASCII
// digits only. Fractional digits use the raw digit names with no gender
// or emphasis adjustment.
func joinFraction(wholeText, frac string) string {
	var b strings.Builder
	b.Grow(growFloat)

	b.WriteString(wholeText)
	b.WriteByte(' ')
	b.WriteString(wordDecimalSep)

	for i := 0; i < len(frac); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteString(ones[frac[i]-'0'])
	}
	return b.String()
}
