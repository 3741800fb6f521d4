package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// linePrompter asks on out and reads one line from in. End of input
// cancels the prompt.
type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{in: bufio.NewReader(in), out: out}
}

func (p *linePrompter) Prompt(message, initial string, done func(string)) {
	fmt.Fprintf(p.out, "%s ", message)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		line = initial
	}
	done(line)
}

// textSelector supplies search text given on the command line as if it
// were the one selection of the view.
type textSelector string

func (s textSelector) SelectionText() (string, bool) {
	return string(s), s != ""
}
