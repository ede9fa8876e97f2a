package csh

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\033[H\033[2J"

// Terminal is the line-oriented console the shell talks to.
type Terminal interface {
	io.Writer

	// ReadLine shows prompt and blocks for one line of input without its
	// line terminator. It returns io.EOF at end of input and ErrInterrupt
	// when the user aborts the line.
	ReadLine(prompt string) (string, error)

	// Clear erases the display.
	Clear() error

	Close() error
}

// LineTerminal reads plain lines from any reader. It serves piped input and tests.
type LineTerminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineTerminal creates a terminal over in and out.
func NewLineTerminal(in io.Reader, out io.Writer) *LineTerminal {
	return &LineTerminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (t *LineTerminal) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(t.out, prompt); err != nil {
		return "", err
	}

	line, err := t.in.ReadString('\n')
	if err != nil {
		// A last line without a terminator still counts.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (t *LineTerminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *LineTerminal) Clear() error {
	_, err := io.WriteString(t.out, clearSequence)
	return err
}

func (t *LineTerminal) Close() error {
	return nil
}

// ReadlineTerminal is the interactive console backed by readline.
type ReadlineTerminal struct {
	rl *readline.Instance
}

// NewReadlineTerminal creates an interactive console completing the given verbs.
func NewReadlineTerminal(verbs []string) (*ReadlineTerminal, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "",
		HistoryFile:            "",
		HistoryLimit:           -1, // no history
		DisableAutoSaveHistory: true,
		AutoComplete:           createCompleter(verbs),
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		VimMode:                false,
	})
	if err != nil {
		return nil, err
	}

	return &ReadlineTerminal{rl: rl}, nil
}

func (t *ReadlineTerminal) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)

	line, err := t.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", ErrInterrupt
		}
		return "", err
	}

	return line, nil
}

func (t *ReadlineTerminal) Write(p []byte) (int, error) {
	return t.rl.Write(p)
}

func (t *ReadlineTerminal) Clear() error {
	_, err := io.WriteString(t.rl.Stdout(), clearSequence)
	return err
}

func (t *ReadlineTerminal) Close() error {
	return t.rl.Close()
}

// createCompleter completes the first word against the known verbs.
func createCompleter(verbs []string) readline.AutoCompleter {
	items := make([]readline.PrefixCompleterInterface, len(verbs))
	for i, verb := range verbs {
		items[i] = readline.PcItem(verb)
	}

	return readline.NewPrefixCompleter(items...)
}
