package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/napalu/ngx-i18n-scan/errors"
	"golang.org/x/term"
)

// Terminal reports whether a file descriptor is attached to a terminal
type Terminal interface {
	IsTerminal(fd int) bool
}

type osTerminal struct{}

func (osTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// DefaultTerminal queries the real terminal
var DefaultTerminal Terminal = osTerminal{}

// IsInteractive reports whether both in and out are terminals
func IsInteractive(t Terminal, in, out *os.File) bool {
	if in == nil || out == nil {
		return false
	}
	return t.IsTerminal(int(in.Fd())) && t.IsTerminal(int(out.Fd()))
}

// ReadChoice writes prompt to out and reads a number in [1, n] from in
func ReadChoice(out io.Writer, in io.Reader, prompt string, n int) (int, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		fmt.Fprintln(out)
		return 0, errors.ErrInvalidSelection.WithArgs("").Wrap(err)
	}
	answer := strings.TrimSpace(line)
	choice, err := strconv.Atoi(answer)
	if err != nil || choice < 1 || choice > n {
		return 0, errors.ErrInvalidSelection.WithArgs(answer)
	}
	return choice, nil
}
