package median

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidNumber = errors.New("invalid number")

// ParseNumbers splits every argument on commas and whitespace and parses
// each token as a float64. Any token that is not a finite number fails the
// whole call.
func ParseNumbers(args []string) ([]float64, error) {
	var tokens []string
	for _, arg := range args {
		tokens = append(tokens, strings.FieldsFunc(arg, isSeparator)...)
	}

	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	numbers := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		value, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("%w %q", ErrInvalidNumber, token)
		}
		numbers = append(numbers, value)
	}

	return numbers, nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// FormatNumber renders a value in its shortest exact form: plain decimal
// for everyday magnitudes, exponent notation below 1e-6 or from 1e21 up.
func FormatNumber(value float64) string {
	if abs := math.Abs(value); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatSequence renders numbers as a bracketed, comma-separated list.
func FormatSequence(numbers []float64) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = FormatNumber(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
