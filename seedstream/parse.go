package seedstream

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrSeedParse indicates seed text that is not a 64-bit integer.
var ErrSeedParse = errors.New("seedstream: malformed seed")

// ParseSeed converts seed text into the internal 64-bit seed. Accepted forms:
// unsigned decimal, negative decimal (two's complement), and hex, octal or
// binary with an explicit 0x, 0o or 0b prefix. Leading zeros never switch the
// base: "0042" is 42. Surrounding spaces are ignored.
func ParseSeed(text string) (uint64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrSeedParse)
	}
	digits, neg := s, false
	switch digits[0] {
	case '-':
		digits, neg = digits[1:], true
	case '+':
		digits = digits[1:]
	}
	// Leading zeros are decimal padding; only an explicit prefix picks a base.
	base := 10
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			digits = digits[2:]
		}
	}
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, fmt.Errorf("%w: %q", ErrSeedParse, text)
	}
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSeedParse, text)
	}
	if !neg {
		return u, nil
	}
	if u > 1<<63 {
		return 0, fmt.Errorf("%w: %q below int64 range", ErrSeedParse, text)
	}
	return -u, nil
}

// FormatSeed renders a seed in the decimal form ParseSeed reads back.
func FormatSeed(seed uint64) string {
	return strconv.FormatUint(seed, 10)
}

// TimeSeed derives a seed from a wall-clock instant. Callers use it as the
// fallback when seed text does not parse.
func TimeSeed(t time.Time) uint64 {
	return mix(uint64(t.UnixNano()) + golden)
}
