package main

import (
	"bufio"
	"io"
	"strconv"
)

// Report writes t as {key=min/avg/max, ...} followed by a newline. Keys
// are sorted by their bytes and every number has one fractional digit.
func Report(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	bw.WriteByte('{')
	first := true
	for _, key := range t.SortedKeys() {
		s, _ := t.Lookup(key)
		if s.Empty() {
			continue
		}
		if !first {
			bw.WriteString(", ")
		}
		first = false

		buf = append(buf[:0], key...)
		buf = append(buf, '=')
		buf = strconv.AppendFloat(buf, s.Min, 'f', 1, 64)
		buf = append(buf, '/')
		buf = strconv.AppendFloat(buf, s.Average(), 'f', 1, 64)
		buf = append(buf, '/')
		buf = strconv.AppendFloat(buf, s.Max, 'f', 1, 64)
		bw.Write(buf)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}
