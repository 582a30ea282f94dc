// Word tables for Danish number-to-text conversion.
package numtext

const (
	wordMinus      = "minus"
	wordAnd        = "og"
	wordHundred    = "hundrede"
	wordDecimalSep = "komma"

	// Danish spells "one" three ways depending on its grammatical role.
	// The three forms are independent lexicon entries; none is derived
	// from another.
	wordNeuterOne = "et" // neuter gender, used for a bare quantity and before "hundrede"/"tusind"
	wordEmphOne   = "én" // emphasized, distinguishes a final standalone "one" from the article "en"

	// Magnitude words above tusind pluralize with this suffix; tusind
	// itself is invariant.
	pluralSuffix = "er"
)

var ones = [10]string{
	"nul",
	"en",
	"to",
	"tre",
	"fire",
	"fem",
	"seks",
	"syv",
	"otte",
	"ni",
}

// teens is indexed by the ones digit: teens[3] is 13.
var teens = [10]string{
	"ti",
	"elleve",
	"tolv",
	"tretten",
	"fjorten",
	"femten",
	"seksten",
	"sytten",
	"atten",
	"nitten",
}

// tens is indexed by the tens digit minus 2: tens[0] is 20.
// The forms from halvtreds upward are vigesimal remnants and cannot be
// composed from smaller words.
var tens = [8]string{
	"tyve",
	"tredive",
	"fyrre",
	"halvtreds",
	"tres",
	"halvfjerds",
	"firs",
	"halvfems",
}

// magnitudes lists named powers of one thousand, indexed by
// thousand-group position minus 1: magnitudes[0] is 1000^1.
// The ladder ends at sekstillion (1000^12), so the largest nameable
// value is 10^39 - 1.
var magnitudes = [12]string{
	"tusind",
	"million",
	"milliard",
	"billion",
	"billiard",
	"trillion",
	"trilliard",
	"kvadrillion",
	"kvadrilliard",
	"kvintillion",
	"kvintilliard",
	"sekstillion",
}
