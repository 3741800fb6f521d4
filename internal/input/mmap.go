package input

import (
	"golang.org/x/sys/unix"
)

// DefaultMmapThreshold is the file size from which the adaptive reader maps
// files instead of reading them.
const DefaultMmapThreshold = 1 << 20

// MmapReader reads files by memory-mapping them read-only. The mapping stays
// valid until the ReadResult is closed.
type MmapReader struct{}

// NewMmapReader creates a new MmapReader.
func NewMmapReader() *MmapReader {
	return &MmapReader{}
}

func (r *MmapReader) Read(path string) (ReadResult, error) {
	fd, size, err := openSized(path)
	if err != nil {
		return ReadResult{}, err
	}
	if size == 0 {
		unix.Close(fd)
		return ReadResult{Data: nil, Closer: noopCloser}, nil
	}
	return readMmap(fd, size, path)
}

// readMmap maps an already-open fd of known size and closes the fd. It falls
// back to a buffered read when the mapping fails.
func readMmap(fd int, size int64, path string) (ReadResult, error) {
	// Whole-buffer scans and line indexing read front to back.
	unix.Fadvise(fd, 0, size, unix.FADV_SEQUENTIAL)

	data, err := unix.Mmap(fd, 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE|unix.MAP_POPULATE)
	if err != nil {
		return readBuffered(fd, size, path)
	}
	unix.Close(fd)
	unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return ReadResult{
		Data: data,
		Closer: func() error {
			return unix.Munmap(data)
		},
	}, nil
}

// NewAdaptiveReader returns a Reader that opens the file once, stats it via fstat,
// then selects between buffered and mmap based on size. A threshold <= 0
// always uses the buffered path.
func NewAdaptiveReader(mmapThreshold int64) Reader {
	return &adaptiveReader{
		threshold: mmapThreshold,
	}
}

type adaptiveReader struct {
	threshold int64
}

func (r *adaptiveReader) Read(path string) (ReadResult, error) {
	fd, size, err := openSized(path)
	if err != nil {
		return ReadResult{}, err
	}
	if size == 0 {
		unix.Close(fd)
		return ReadResult{Data: nil, Closer: noopCloser}, nil
	}

	if r.threshold > 0 && size >= r.threshold {
		return readMmap(fd, size, path)
	}
	return readBuffered(fd, size, path)
}
