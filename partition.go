package main

import (
	"bytes"
	"errors"
)

var ErrEmptyInput = errors.New("empty input")

// Range is an inclusive byte range of the input. A range with Start
// greater than End is empty.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

func (r Range) Empty() bool {
	return r.End < r.Start
}

// Partition splits data into exactly p contiguous ranges. Every range
// ends on a line terminator or at the last byte of data, so no line is
// shared between two ranges. Ranges that start past the end of data are
// empty. Chunk sizes are approximate: a range always extends to the next
// terminator after its nominal end.
func Partition(data []byte, p int) ([]Range, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if p < 1 {
		p = 1
	}

	size := len(data) / p
	last := len(data) - 1
	ranges := make([]Range, 0, p)
	start := 0
	for i := 0; i < p; i++ {
		if start > last {
			ranges = append(ranges, Range{Start: len(data), End: last})
			continue
		}
		end := min(start+size, last)
		if n := bytes.IndexByte(data[end:], endLine); n != -1 {
			end += n
		} else {
			end = last
		}
		ranges = append(ranges, Range{Start: start, End: end})
		start = end + 1
	}
	return ranges, nil
}
