//go:build unix

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Input is the whole input file mapped read-only into memory.
type Input struct {
	data []byte
}

func OpenInput(filename string) (*Input, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ErrIO, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat file: %w", ErrIO, err)
	}
	size := info.Size()
	if size == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyInput)
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("%w: file too large to map: %d bytes", ErrIO, size)
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to map file: %w", ErrIO, err)
	}
	adviseSequential(file, data)
	return &Input{data: data}, nil
}

// Bytes must not be used after Close.
func (in *Input) Bytes() []byte {
	return in.data
}

func (in *Input) Close() error {
	if in.data == nil {
		return nil
	}
	err := unix.Munmap(in.data)
	in.data = nil
	return err
}
