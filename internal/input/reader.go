package input

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrBinary is returned by ReadText for content that looks binary.
var ErrBinary = errors.New("binary file")

// ReadResult holds the data read from a file and a cleanup function.
type ReadResult struct {
	Data   []byte
	Closer func() error
}

// Close releases the underlying buffer. Safe to call on a zero ReadResult.
func (r ReadResult) Close() error {
	if r.Closer == nil {
		return nil
	}
	return r.Closer()
}

// noopCloser is a package-level no-op closer to avoid allocating a func literal per file.
func noopCloser() error { return nil }

// Reader reads file content into a byte slice.
type Reader interface {
	Read(path string) (ReadResult, error)
}

// ReadText reads path with r and refuses binary content.
// The caller owns the returned ReadResult and must Close it.
func ReadText(r Reader, path string) (ReadResult, error) {
	res, err := r.Read(path)
	if err != nil {
		return ReadResult{}, err
	}
	if IsBinary(res.Data) {
		res.Close()
		return ReadResult{}, fmt.Errorf("%s: %w", path, ErrBinary)
	}
	return res, nil
}

// IsBinary checks if data appears to be binary by scanning for NUL bytes
// in the first 8KB, matching GNU grep behavior.
func IsBinary(data []byte) bool {
	limit := 8192
	if len(data) < limit {
		limit = len(data)
	}
	return bytes.IndexByte(data[:limit], 0) >= 0
}
