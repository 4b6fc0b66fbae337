// Package iocli wraps terminal I/O behind a mockable interface.
package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio is the real-terminal implementation of IO. Output goes to out,
// input comes from in; пароль читается без эха только когда stdin —
// настоящий терминал.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdio() IO {
	return &Stdio{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

func (s *Stdio) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	return s.readLine()
}

// ReadPassword читает пароль без эха в терминале. Если stdin не
// терминал (pipe в скрипте), читается обычная строка.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return s.readLine()
	}

	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(s.out)
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

// readLine принимает и строку с \n, и последнюю строку без него (EOF)
func (s *Stdio) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
