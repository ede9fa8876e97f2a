package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/mako10k/csh/internal/cli"
	"github.com/mako10k/csh/internal/csh"
	"github.com/mako10k/csh/internal/logger"
	"github.com/mako10k/csh/internal/vfs"
)

func main() {
	root := cli.NewRootCommand(run)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cli.Name, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, config *cli.Config) error {
	log, closer, err := logger.Init(config.LogLevel, config.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	terminal, err := openTerminal()
	if err != nil {
		return err
	}
	defer terminal.Close()

	log.Debug("starting", "version", cli.Version, "commit", cli.BuildCommit)

	shell, err := csh.NewShell(&csh.Config{
		FS:       vfs.OS{},
		Env:      csh.OSEnvironment{},
		Terminal: terminal,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	return shell.Run(ctx)
}

// openTerminal uses line editing on a TTY and plain line reads otherwise.
func openTerminal() (csh.Terminal, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		rl, err := csh.NewReadlineTerminal(csh.Verbs())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize readline: %w", err)
		}
		return rl, nil
	}
	return csh.NewLineTerminal(os.Stdin, os.Stdout), nil
}
