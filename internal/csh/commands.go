package csh

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mako10k/csh/internal/vfs"
)

func cmdWhoami(env *Env, _ []string) error {
	env.Println(env.Session.User)
	return nil
}

func cmdPwd(env *Env, _ []string) error {
	env.Println(env.Session.Cwd)
	return nil
}

// cmdCd is the only handler that moves the working directory. A target that
// is not an existing directory leaves the session untouched.
func cmdCd(env *Env, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}

	target, err := Resolve(env.Session.Cwd, env.Session.Home, arg)
	if err != nil {
		return err
	}

	if !env.FS.DirExists(target) {
		return notFound(target, "cd: No such file or directory: %s", arg)
	}

	env.Session.Cwd = target
	return nil
}

func cmdMkdir(env *Env, args []string) error {
	if len(args) == 0 {
		return missingOperand("mkdir")
	}

	name := args[0]
	path := env.Session.Abs(name)

	if env.FS.DirExists(path) || env.FS.FileExists(path) {
		return exists(path, "mkdir: cannot create directory '%s': File exists", name)
	}

	return ioError("mkdir", env.FS.CreateDir(path))
}

// isRmFlag reports whether arg is one of the accepted rm options.
// -r and -f are interchangeable: both allow removing directories.
func isRmFlag(arg string) bool {
	switch arg {
	case "-r", "-f", "-rf", "-fr":
		return true
	}
	return false
}

func cmdRm(env *Env, args []string) error {
	var name string
	for _, arg := range args {
		if isRmFlag(arg) {
			continue
		}
		name = arg
		break
	}

	if name == "" {
		return missingOperand("rm")
	}

	path := env.Session.Abs(name)

	switch {
	case env.FS.DirExists(path):
		if within(env.Session.Cwd, path) {
			return &RefusedError{
				Cmd: "rm",
				Msg: fmt.Sprintf("refusing to remove '%s': contains the current directory", name),
			}
		}
		return ioError("rm", env.FS.DeleteDirAll(path))
	case env.FS.FileExists(path):
		return ioError("rm", env.FS.DeleteFile(path))
	default:
		return notFound(path, "rm: cannot remove '%s': No such file", name)
	}
}

// within reports whether path is dir or one of its descendants.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// cmdCp copies a file. The destination is used exactly as typed.
func cmdCp(env *Env, args []string) error {
	if len(args) != 2 {
		return missingOperand("cp")
	}

	src := env.Session.Abs(args[0])
	dst := args[1]

	if !env.FS.FileExists(src) {
		return notFound(src, "cp: cannot stat '%s': No such file", src)
	}

	err := env.FS.CopyFile(src, dst, true)

	var same *vfs.SameFileError
	if errors.As(err, &same) {
		return &RefusedError{Cmd: "cp", Msg: same.Error()}
	}

	return ioError("cp", err)
}

// cmdMv moves a file, into dst when dst is a directory. It never overwrites.
func cmdMv(env *Env, args []string) error {
	if len(args) != 2 {
		return missingOperand("mv")
	}

	src := env.Session.Abs(args[0])
	dst := env.Session.Abs(args[1])

	if !env.FS.FileExists(src) {
		return notFound(src, "mv: cannot stat '%s': No such file", src)
	}

	if env.FS.DirExists(dst) {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	if env.FS.FileExists(dst) {
		return exists(dst, "The file '%s' already exists.", dst)
	}

	return ioError("mv", env.FS.MoveFile(src, dst))
}

// cmdCat prints a file. A missing file prints nothing.
func cmdCat(env *Env, args []string) error {
	if len(args) == 0 {
		return missingOperand("cat")
	}

	path := env.Session.Abs(args[0])
	if !env.FS.FileExists(path) {
		return nil
	}

	text, err := env.FS.ReadAllText(path)
	if err != nil {
		return ioError("cat", err)
	}

	env.Println(text)
	return nil
}

func cmdTouch(env *Env, args []string) error {
	if len(args) == 0 {
		return missingOperand("touch")
	}

	path := env.Session.Abs(args[0])
	if env.FS.FileExists(path) {
		return ioError("touch", env.FS.SetModTime(path, env.Now()))
	}

	return ioError("touch", env.FS.CreateEmptyFile(path))
}

func cmdClear(env *Env, _ []string) error {
	return ioError("clear", env.Term.Clear())
}

func cmdHelp(env *Env, args []string) error {
	if len(args) == 0 {
		env.Printf("%s", env.Help.FormatCommandList())
		return nil
	}

	text, err := env.Help.FormatHelp(strings.ToLower(args[0]))
	if err != nil {
		return &UsageError{Cmd: "help", Msg: err.Error()}
	}

	env.Printf("%s", text)
	return nil
}

func cmdExit(env *Env, _ []string) error {
	env.Session.Running = false
	return nil
}
