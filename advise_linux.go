package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential hints the kernel that the mapping is read once from
// start to end. Errors are ignored.
func adviseSequential(file *os.File, data []byte) {
	fd := int(file.Fd())
	_ = unix.Fadvise(fd, 0, 0, unix.FADV_SEQUENTIAL)
	_ = unix.Fadvise(fd, 0, 0, unix.FADV_WILLNEED)
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
