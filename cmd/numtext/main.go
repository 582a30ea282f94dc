// Command numtext prints the written Danish name of numbers.
//
// With arguments, each argument is converted and printed on its own line.
// Without arguments it reads numbers from standard input, one per line,
// until EOF.
//
// The -exact flag parses input as an exact decimal, so the digits read
// after "komma" are exactly the digits typed, including trailing zeros.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/govalues/decimal"

	"github.com/FuTTiiZ/danish-numbers/numtext"
)

const invalidInput = "ugyldigt input: forventede et tal"

var exact = flag.Bool("exact", false, "parse input as an exact decimal instead of a float64")

func main() {
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		for _, arg := range args {
			text, ok := name(arg)
			if !ok {
				fmt.Fprintf(os.Stderr, "%s: %q\n", invalidInput, arg)
				os.Exit(1)
			}
			fmt.Println(text)
		}
		return
	}

	fmt.Println("Skriv et tal pr. linje:")
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		text, ok := name(line)
		if !ok {
			fmt.Println(invalidInput)
			continue
		}
		fmt.Println(text)
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "reading input:", err)
		os.Exit(1)
	}
}

// name converts one raw token, honoring the -exact flag. Reports false
// for input that does not parse as a number or has no name in the
// magnitude ladder.
func name(s string) (string, bool) {
	if *exact {
		d, err := decimal.Parse(s)
		if err != nil {
			return "", false
		}
		return numtext.ConvertDecimal(d), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", false
	}
	text := numtext.ConvertFloat(f)
	return text, text != ""
}
