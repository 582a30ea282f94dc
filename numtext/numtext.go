// Package numtext converts numbers into written Danish numeral names.
//
// The package provides four input paths:
//
//   - Convert turns an int64 into cardinal Danish text.
//   - ConvertBig handles integers beyond the int64 range, up to the
//     largest named magnitude.
//   - ConvertFloat renders a float64, reading fractional digits one at
//     a time after "komma".
//   - ConvertDecimal renders an exact decimal the same way, free of
//     binary floating-point rounding.
//
// Danish grammar shows through in three places: "one" is spelled "et"
// (neuter) before hundrede and tusind, "én" (emphasized) when it stands
// alone as the final quantity word, and "en" (common gender) before
// million and higher magnitudes. Magnitudes above tusind pluralize
// ("to millioner"); tusind never does.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - The magnitude ladder ends at sekstillion (10^36), so values with
//     absolute value of 10^39 or more return an empty string.
//   - ConvertFloat splits the value at the radix point of its shortest
//     decimal rendering; for values with inexact binary representations
//     the digits read are those of that rendering. Use ConvertDecimal
//     where the written digits must match a source decimal exactly.
//   - Cardinal numbers only; ordinals are not supported.
package numtext

import (
	"math/big"

	"github.com/govalues/decimal"
)

// Convert returns the Danish cardinal text for n.
// Zero returns "nul". Negative numbers are prefixed with "minus".
func Convert(n int64) string {
	return convert(n)
}

// ConvertBig returns the Danish cardinal text for n.
// Numbers with absolute value of 10^39 or more exceed the magnitude
// ladder and return an empty string, as does a nil argument.
func ConvertBig(n *big.Int) string {
	return convertBig(n)
}

// ConvertFloat returns the Danish text for f.
//
// The whole part is the mathematical floor of f, rendered as a cardinal.
// If f has fractional digits in its shortest decimal rendering, they are
// appended after "komma" and read individually, separated by ", ":
// 3.14 becomes "tre komma en, fire". Because the whole part floors and
// the digits come from the rendering of f itself, a negative non-integer
// reads one below its truncation: -3.5 becomes "minus fire komma fem".
//
// NaN and infinities return an empty string.
func ConvertFloat(f float64) string {
	return convertFloat(f)
}

// ConvertDecimal returns the Danish text for the exact decimal d,
// following the same rules as ConvertFloat. Trailing fractional zeros
// are preserved and read out.
func ConvertDecimal(d decimal.Decimal) string {
	return convertDecimal(d)
}
