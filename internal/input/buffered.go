package input

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// BufferedReader reads a file into memory with unix.Pread after a single
// fstat. The buffer is owned by the caller and lives as long as the text
// buffer built on it.
type BufferedReader struct{}

// NewBufferedReader creates a new BufferedReader.
func NewBufferedReader() *BufferedReader {
	return &BufferedReader{}
}

func (r *BufferedReader) Read(path string) (ReadResult, error) {
	fd, size, err := openSized(path)
	if err != nil {
		return ReadResult{}, err
	}
	if size == 0 {
		unix.Close(fd)
		return ReadResult{Data: nil, Closer: noopCloser}, nil
	}
	return readBuffered(fd, size, path)
}

// readBuffered reads size bytes from an already-open fd and closes it.
// A file that shrank since fstat yields what is there.
func readBuffered(fd int, size int64, path string) (ReadResult, error) {
	defer unix.Close(fd)

	buf := make([]byte, size)
	var total int
	for total < len(buf) {
		n, err := unix.Pread(fd, buf[total:], int64(total))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return ReadResult{}, fmt.Errorf("read %s: %w", path, err)
		}
		if n == 0 {
			break
		}
		total += n
	}
	return ReadResult{Data: buf[:total], Closer: noopCloser}, nil
}

// openSized opens path and returns the fd with the file size.
func openSized(path string) (int, int64, error) {
	fd, err := openFile(path)
	if err != nil {
		return -1, 0, fmt.Errorf("open %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return -1, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.Mode&unix.S_IFMT == unix.S_IFDIR {
		unix.Close(fd)
		return -1, 0, fmt.Errorf("%s: is a directory", path)
	}
	return fd, stat.Size, nil
}

// openFile opens a file with O_NOATIME, falling back without it.
func openFile(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME|unix.O_CLOEXEC, 0)
	if err != nil {
		fd, err = unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	}
	return fd, err
}
