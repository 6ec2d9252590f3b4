// Package terminal reads prompt answers from a line-oriented input and
// prints status lines for the shopping session.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Console struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewConsole wraps in and out. When in is a terminal, secrets are read
// without echo.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.fd = int(f.Fd())
		c.tty = true
	}
	return c
}

// Ask returns io.EOF only when the input is exhausted before any character
// of the answer was read.
func (c *Console) Ask(label string) (string, error) {
	fmt.Fprint(c.out, label)

	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) AskSecret(label string) (string, error) {
	if !c.tty {
		return c.Ask(label)
	}

	fmt.Fprint(c.out, label)
	b, err := term.ReadPassword(c.fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}
