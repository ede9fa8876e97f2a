package csh

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mako10k/csh/internal/vfs"
)

// Handler runs one built-in verb.
type Handler func(env *Env, args []string) error

// Env is what a handler may touch: the session, the filesystem and the terminal.
type Env struct {
	Session *Session
	FS      *vfs.Gateway
	Term    Terminal
	Help    *HelpSystem
	Now     func() time.Time
}

// Println writes a line to the terminal.
func (e *Env) Println(a ...any) {
	fmt.Fprintln(e.Term, a...)
}

// Printf writes formatted output to the terminal.
func (e *Env) Printf(format string, a ...any) {
	fmt.Fprintf(e.Term, format, a...)
}

// CommandLine is one tokenized input line.
type CommandLine struct {
	Verb string
	Args []string
}

// Tokenize splits line on whitespace runs. The verb is lower-cased, the
// arguments are kept verbatim. ok is false for a blank line.
func Tokenize(line string) (cl CommandLine, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return CommandLine{}, false
	}

	return CommandLine{
		Verb: strings.ToLower(fields[0]),
		Args: fields[1:],
	}, true
}

// Registry maps verbs to their handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns the registry of all built-in verbs.
func NewRegistry() *Registry {
	return &Registry{
		handlers: map[string]Handler{
			"whoami": cmdWhoami,
			"pwd":    cmdPwd,
			"ls":     cmdLs,
			"cd":     cmdCd,
			"mkdir":  cmdMkdir,
			"rm":     cmdRm,
			"cp":     cmdCp,
			"mv":     cmdMv,
			"cat":    cmdCat,
			"touch":  cmdTouch,
			"clear":  cmdClear,
			"help":   cmdHelp,
			"exit":   cmdExit,
		},
	}
}

// Lookup returns the handler bound to verb, case-insensitively.
func (r *Registry) Lookup(verb string) (Handler, error) {
	verb = strings.ToLower(verb)

	handler, ok := r.handlers[verb]
	if !ok {
		return nil, &UnknownCommandError{Verb: verb}
	}

	return handler, nil
}

// Dispatch runs the handler for cl.
func (r *Registry) Dispatch(env *Env, cl CommandLine) error {
	handler, err := r.Lookup(cl.Verb)
	if err != nil {
		return err
	}

	return handler(env, cl.Args)
}

// Names returns the sorted list of verbs.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Verbs returns the sorted list of built-in verbs.
func Verbs() []string {
	return NewRegistry().Names()
}
