package csh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mako10k/csh/internal/vfs"
)

// Config holds the collaborators of a shell
type Config struct {
	// Filesystem the commands operate on
	FS vfs.FileSystem

	// Owner names files in long listings (nil: user database lookup)
	Owner vfs.OwnerFunc

	// Process facts the session starts from
	Env Environment

	// Console for prompts, input and output
	Terminal Terminal

	// Structured logger (nil: discard)
	Logger *slog.Logger

	// Clock used by touch and the login banner (nil: time.Now)
	Now func() time.Time
}

// Shell represents the main shell instance
type Shell struct {
	session  *Session
	env      *Env
	registry *Registry
	log      *slog.Logger
}

// NewShell creates a new shell instance
func NewShell(config *Config) (*Shell, error) {
	if config == nil || config.FS == nil || config.Env == nil || config.Terminal == nil {
		return nil, errors.New("shell requires a filesystem, an environment and a terminal")
	}

	session, err := NewSession(config.Env)
	if err != nil {
		return nil, err
	}

	gateway := vfs.NewGateway(config.FS, config.Owner)
	if !gateway.DirExists(session.Cwd) {
		return nil, fmt.Errorf("working directory %s is not a directory", session.Cwd)
	}

	log := config.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Shell{
		session: session,
		env: &Env{
			Session: session,
			FS:      gateway,
			Term:    config.Terminal,
			Help:    NewHelpSystem(),
			Now:     now,
		},
		registry: NewRegistry(),
		log:      log.With("session", session.ID),
	}, nil
}

// Session returns the state of the running session.
func (s *Shell) Session() *Session {
	return s.session
}

// Prompt renders "user@host dir % ".
func (s *Shell) Prompt() string {
	return fmt.Sprintf("%s@%s %s %% ", s.session.User, s.session.Host,
		DirLabel(s.session.Cwd, s.session.Home, s.session.User))
}

// Run drives the read/dispatch loop until exit, end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	s.log.Info("session started", "cwd", s.session.Cwd, "user", s.session.User)
	s.env.Println("Login:", s.env.Now().Format(time.ANSIC))

	for s.session.Running {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.env.Term.ReadLine(s.Prompt())
		if err != nil {
			if errors.Is(err, ErrInterrupt) {
				continue
			}
			if !errors.Is(err, io.EOF) {
				s.log.Warn("reading input failed", "error", err)
			}
			// End of input behaves like exit.
			s.session.Running = false
			break
		}

		s.Execute(line)
	}

	s.log.Info("session ended", "cwd", s.session.Cwd)
	return nil
}

// Execute runs a single input line and reports any error on the terminal.
// It returns the handler error so callers can inspect it.
func (s *Shell) Execute(line string) error {
	cl, ok := Tokenize(line)
	if !ok {
		return nil
	}

	err := s.registry.Dispatch(s.env, cl)
	if err != nil {
		s.report(cl.Verb, err)
	}

	return err
}

func (s *Shell) report(verb string, err error) {
	s.env.Println(err.Error())

	var ioErr *IOError
	if errors.As(err, &ioErr) {
		s.log.Warn("command failed", "cmd", verb, "error", ioErr.Err)
		return
	}

	s.log.Debug("command rejected", "cmd", verb, "error", err)
}
