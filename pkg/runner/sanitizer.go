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

// DefaultMaxLineSize bounds a single answer. Override with FUNDFLOW_MAX_INPUT_SIZE.
const DefaultMaxLineSize = 4096

// EnvMaxLineSize names the override variable.
const EnvMaxLineSize = "FUNDFLOW_MAX_INPUT_SIZE"

var (
	ErrLineTooLong = errors.New("answer exceeds maximum allowed size")
	ErrInvalidUTF8 = errors.New("answer contains invalid UTF-8 sequences")
)

// CleanLine prepares a typed line for the engine. The line ending is
// dropped, oversized or malformed lines are rejected and control characters
// other than tab are removed so answers cannot corrupt the terminal or logs.
func CleanLine(line string) (string, error) {
	line = strings.TrimRight(line, "\r\n")

	if limit := maxLineSize(); len(line) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrLineTooLong, len(line), limit)
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' {
			return -1
		}
		return r
	}, line), nil
}

func maxLineSize() int {
	if val := os.Getenv(EnvMaxLineSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxLineSize
}
