package csh

import (
	"fmt"
	"strings"
)

// CommandHelp is the reference entry of one command.
type CommandHelp struct {
	Name        string
	Usage       string
	Description string
	Options     []Option
	Examples    []Example
}

// Option documents one flag of a command.
type Option struct {
	Flag        string
	Description string
}

// Example is a sample invocation with what it does.
type Example struct {
	Command     string
	Description string
}

// HelpSystem serves the command reference in the order it was registered.
type HelpSystem struct {
	topics map[string]*CommandHelp
	order  []string
}

// NewHelpSystem indexes the reference of the built-in commands.
func NewHelpSystem() *HelpSystem {
	h := &HelpSystem{topics: make(map[string]*CommandHelp, len(builtinHelp))}
	for _, entry := range builtinHelp {
		h.topics[entry.Name] = entry
		h.order = append(h.order, entry.Name)
	}
	return h
}

// Lookup returns the reference entry of command.
func (h *HelpSystem) Lookup(command string) (*CommandHelp, error) {
	entry, ok := h.topics[command]
	if !ok {
		return nil, fmt.Errorf("no help available for command: %s", command)
	}
	return entry, nil
}

// ListCommands returns the documented commands, basic ones first.
func (h *HelpSystem) ListCommands() []string {
	return append([]string(nil), h.order...)
}

// FormatHelp renders the usage, options and examples of one command.
func (h *HelpSystem) FormatHelp(command string) (string, error) {
	entry, err := h.Lookup(command)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s\n\n    %s\n", entry.Usage, entry.Description)

	if len(entry.Options) > 0 {
		b.WriteString("\nOptions:\n")
		for _, opt := range entry.Options {
			fmt.Fprintf(&b, "    %-4s %s\n", opt.Flag, opt.Description)
		}
	}

	if len(entry.Examples) > 0 {
		b.WriteString("\nExamples:\n")
		for _, ex := range entry.Examples {
			fmt.Fprintf(&b, "    %-16s # %s\n", ex.Command, ex.Description)
		}
	}

	return b.String(), nil
}

// FormatCommandList renders one line per command.
func (h *HelpSystem) FormatCommandList() string {
	var b strings.Builder

	b.WriteString("Available commands:\n\n")
	for _, name := range h.ListCommands() {
		entry := h.topics[name]
		fmt.Fprintf(&b, "%-27s - %s\n", entry.Usage, entry.Description)
	}
	b.WriteString("\nType 'help <command>' for details on a single command.\n")

	return b.String()
}

var builtinHelp = []*CommandHelp{
	{
		Name:        "whoami",
		Usage:       "whoami",
		Description: "Print the current user name",
	},
	{
		Name:        "pwd",
		Usage:       "pwd",
		Description: "Print the current directory",
	},
	{
		Name:        "ls",
		Usage:       "ls [-a] [-l] [directory]",
		Description: "List directory contents, directories first",
		Options: []Option{
			{Flag: "-a", Description: "Include entries starting with ."},
			{Flag: "-l", Description: "Long listing: permissions, owner, size, modification time"},
		},
		Examples: []Example{
			{Command: "ls -la", Description: "Long listing including hidden entries"},
		},
	},
	{
		Name:        "cd",
		Usage:       "cd [directory]",
		Description: "Change directory (.. = up, ~ = home)",
		Examples: []Example{
			{Command: "cd ..", Description: "Go to the parent directory"},
			{Command: "cd", Description: "Go to the home directory"},
		},
	},
	{
		Name:        "mkdir",
		Usage:       "mkdir <name>",
		Description: "Create a new directory",
	},
	{
		Name:        "rm",
		Usage:       "rm [-r|-f] <name>",
		Description: "Remove a file or a directory with its contents",
		Options: []Option{
			{Flag: "-r", Description: "Remove directories recursively"},
			{Flag: "-f", Description: "Same as -r"},
		},
	},
	{
		Name:        "cp",
		Usage:       "cp <source> <destination>",
		Description: "Copy a file, overwriting the destination",
	},
	{
		Name:        "mv",
		Usage:       "mv <source> <destination>",
		Description: "Move or rename a file",
		Examples: []Example{
			{Command: "mv a.txt docs", Description: "Move a.txt into the existing directory docs"},
		},
	},
	{
		Name:        "cat",
		Usage:       "cat <file>",
		Description: "Print the contents of a file",
	},
	{
		Name:        "touch",
		Usage:       "touch <file>",
		Description: "Create an empty file or update its modification time",
	},
	{
		Name:        "clear",
		Usage:       "clear",
		Description: "Clear the screen",
	},
	{
		Name:        "help",
		Usage:       "help [command]",
		Description: "Show this help",
	},
	{
		Name:        "exit",
		Usage:       "exit",
		Description: "Quit the shell",
	},
}
