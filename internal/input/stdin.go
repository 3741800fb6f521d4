package input

import (
	"io"
	"os"
)

// StdinReader reads everything from a stream, standard input by default.
// The path passed to Read is ignored.
type StdinReader struct {
	r io.Reader
}

// NewStdinReader creates a StdinReader over r, or os.Stdin when r is nil.
func NewStdinReader(r io.Reader) *StdinReader {
	if r == nil {
		r = os.Stdin
	}
	return &StdinReader{r: r}
}

func (s *StdinReader) Read(_ string) (ReadResult, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return ReadResult{}, err
	}
	return ReadResult{Data: data, Closer: noopCloser}, nil
}
