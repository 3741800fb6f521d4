package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes formatted output to a file descriptor using writev.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return NewFileWriter(os.Stdout)
}

// NewFileWriter creates a Writer for an open file.
func NewFileWriter(f *os.File) *Writer {
	return &Writer{fd: int(f.Fd())}
}

// Write writes the given bytes using writev for scatter-gather I/O.
func (w *Writer) Write(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	for len(data) > 0 {
		iovs := [][]byte{data}
		n, err := unix.Writev(w.fd, iovs)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return err
		}
		data = data[n:]
	}
	return nil
}
