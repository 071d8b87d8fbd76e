package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize bounds a single command line. Commands are short.
	DefaultMaxInputSize = 256
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "SPLITCALC_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeInput cleans one line of user input: it enforces a size limit,
// validates UTF-8, turns tabs into spaces and strips other control characters
// (ANSI escapes, NUL, BEL) so they never reach the terminal or the logs.
func SanitizeInput(input string) (string, error) {
	limit := getMaxInputSize()
	if len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	clean := true
	for _, r := range input {
		if unicode.IsControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return strings.TrimSpace(input), nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case r == '\t':
			b.WriteRune(' ')
		case unicode.IsControl(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
