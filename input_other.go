//go:build !unix

package main

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// Input is the whole input file copied into memory. The mapping is only
// used to read the file and is closed before OpenInput returns.
type Input struct {
	data []byte
}

func OpenInput(filename string) (*Input, error) {
	r, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ErrIO, err)
	}
	defer r.Close()

	if r.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyInput)
	}
	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to read file: %w", ErrIO, err)
	}
	return &Input{data: data}, nil
}

func (in *Input) Bytes() []byte {
	return in.data
}

func (in *Input) Close() error {
	in.data = nil
	return nil
}
