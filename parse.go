package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
)

const (
	valueSep = ';'
	endLine  = '\n'
)

var (
	ErrMalformedLine = errors.New("malformed line")
	ErrInvalidNumber = errors.New("invalid numeric literal")
)

// ParseError reports a line that could not be parsed. Offset is the
// position of the line in the whole input. Line is a copy, so it stays
// valid after the input is closed.
type ParseError struct {
	Offset int
	Line   []byte
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse line %q at offset %d: %v", e.Line, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// exact powers of ten representable as float64
var pow10 = [...]float64{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15}

// parseFast handles plain decimals such as 12.3 or -7 without going
// through strconv. The mantissa stays below 2^53 and the divisor is an
// exact power of ten, so the single division rounds exactly like
// strconv.ParseFloat does.
func parseFast(value []byte) (float64, bool) {
	i := 0
	neg := false
	switch {
	case len(value) == 0:
		return 0, false
	case value[0] == '-':
		neg = true
		i++
	case value[0] == '+':
		i++
	}

	var mant uint64
	digits, frac := 0, -1
	for ; i < len(value); i++ {
		c := value[i]
		switch {
		case c >= '0' && c <= '9':
			mant = mant*10 + uint64(c-'0')
			digits++
			if frac >= 0 {
				frac++
			}
		case c == '.' && frac < 0:
			frac = 0
		default:
			return 0, false
		}
	}
	if digits == 0 || digits > 15 || frac == 0 {
		return 0, false
	}

	f := float64(mant)
	if frac > 0 {
		f /= pow10[frac]
	}
	if neg {
		f = -f
	}
	return f, true
}

// ParseValue parses a finite decimal float. NaN, infinities, hex and
// out of range literals are rejected.
func ParseValue(value []byte) (float64, error) {
	if f, ok := parseFast(value); ok {
		return f, nil
	}
	if bytes.ContainsAny(value, "xX_") {
		return 0, ErrInvalidNumber
	}
	f, err := strconv.ParseFloat(string(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidNumber
	}
	return f, nil
}

// ParseLine splits line at the first separator. The returned key is a
// view into line.
func ParseLine(line []byte) (key []byte, value float64, err error) {
	sep := bytes.IndexByte(line, valueSep)
	if sep == -1 {
		return nil, 0, fmt.Errorf("%w: missing delimiter", ErrMalformedLine)
	}
	raw := line[sep+1:]
	if len(raw) == 0 {
		return nil, 0, fmt.Errorf("%w: empty value", ErrMalformedLine)
	}
	value, err = ParseValue(raw)
	if err != nil {
		return nil, 0, err
	}
	return line[:sep], value, nil
}

// lines between context checks
const checkEvery = 1 << 14

// ParseChunk folds every line of data[r.Start:r.End+1] into a new Table.
func ParseChunk(ctx context.Context, data []byte, r Range) (*Table, error) {
	table := NewTable()
	if r.Empty() {
		return table, nil
	}

	buf := data[r.Start : r.End+1]
	consumed := 0
	for n := 1; consumed < len(buf); n++ {
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		le := bytes.IndexByte(buf[consumed:], endLine)
		if le == -1 {
			le = len(buf) - consumed
		}
		line := buf[consumed : consumed+le]
		if k := len(line); k > 0 && line[k-1] == '\r' {
			line = line[:k-1]
		}

		key, value, err := ParseLine(line)
		if err != nil {
			return nil, &ParseError{Offset: r.Start + consumed, Line: bytes.Clone(line), Err: err}
		}
		table.Get(key).Add(value)
		consumed += le + 1
	}
	return table, nil
}
