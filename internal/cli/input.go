package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// linePump is the single owner of the interactive input stream. One
// goroutine reads lines and feeds them through an unbuffered channel, so a
// screen that stops waiting for another reason (job finished, push channel
// dropped) never swallows a line: whatever the user types next stays queued
// for the REPL prompt.
type linePump struct {
	lines chan string
}

func newLinePump(r io.Reader) *linePump {
	p := &linePump{lines: make(chan string)}
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			p.lines <- sc.Text()
		}
		close(p.lines)
	}()
	return p
}

// Lines exposes the channel for select-based waiting. Receiving from it
// consumes the line.
func (p *linePump) Lines() <-chan string { return p.lines }

// Next blocks for the next line; ok is false once the input stream ends.
func (p *linePump) Next() (line string, ok bool) {
	line, ok = <-p.lines
	return line, ok
}

func GetSimpleText(input *linePump, prompt string) (string, error) {
	fmt.Println(prompt)
	line, ok := input.Next()
	if !ok {
		return "", io.EOF
	}
	return strings.TrimSpace(line), nil
}

func GetPassword() (string, error) {
	fmt.Println("-Enter password")
	pw, err := readPassword()
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
