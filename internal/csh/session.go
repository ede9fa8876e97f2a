package csh

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/google/uuid"
)

// Environment provides the process facts a session starts from.
type Environment interface {
	Getwd() (string, error)
	UserName() string
	HostName() string
	HomeDir() (string, error)
}

// OSEnvironment reads the environment of the running process.
type OSEnvironment struct{}

func (OSEnvironment) Getwd() (string, error) {
	return os.Getwd()
}

func (OSEnvironment) UserName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

func (OSEnvironment) HostName() string {
	host, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return host
}

func (OSEnvironment) HomeDir() (string, error) {
	return os.UserHomeDir()
}

// Session is the mutable state of one shell invocation.
type Session struct {
	ID      string
	Cwd     string
	User    string
	Host    string
	Home    string
	Running bool
}

// NewSession seeds a session from env.
func NewSession(env Environment) (*Session, error) {
	cwd, err := env.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cwd, err = filepath.Abs(cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	home, err := env.HomeDir()
	if err != nil {
		// cd without arguments falls back to the start directory
		home = cwd
	}

	return &Session{
		ID:      uuid.NewString(),
		Cwd:     cwd,
		User:    env.UserName(),
		Host:    env.HostName(),
		Home:    filepath.Clean(home),
		Running: true,
	}, nil
}

// Abs returns name joined under the working directory unless it is absolute.
func (s *Session) Abs(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(s.Cwd, name)
}
