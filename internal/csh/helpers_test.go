package csh

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/avfs/avfs/vfs/orefafs"
	"github.com/stretchr/testify/require"

	"github.com/mako10k/csh/internal/vfs"
)

const (
	testUser = "alice"
	testHost = "box"
	testHome = "/home/alice"
)

var fixedNow = time.Date(2024, 5, 17, 9, 45, 0, 0, time.UTC)

type fakeEnv struct {
	cwd  string
	home string
}

func (e fakeEnv) Getwd() (string, error) { return e.cwd, nil }
func (e fakeEnv) UserName() string       { return testUser }
func (e fakeEnv) HostName() string       { return testHost }
func (e fakeEnv) HomeDir() (string, error) {
	return e.home, nil
}

type harness struct {
	sh  *Shell
	fs  *orefafs.OrefaFS
	out *bytes.Buffer
}

func fixedOwner(fs.FileInfo) string { return testUser }

// newHarness starts a shell in cwd over an in-memory tree holding /home/alice.
func newHarness(t *testing.T, cwd string) *harness {
	t.Helper()

	mfs := orefafs.New()
	require.NoError(t, mfs.MkdirAll(testHome, 0o755))

	return newHarnessFS(t, mfs, mfs, cwd, "")
}

func newHarnessFS(t *testing.T, mfs *orefafs.OrefaFS, fsys vfs.FileSystem, cwd, input string) *harness {
	t.Helper()

	out := &bytes.Buffer{}
	sh, err := NewShell(&Config{
		FS:       fsys,
		Owner:    fixedOwner,
		Env:      fakeEnv{cwd: cwd, home: testHome},
		Terminal: NewLineTerminal(strings.NewReader(input), out),
		Now:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	return &harness{sh: sh, fs: mfs, out: out}
}

// run executes one line and returns what it printed.
func (h *harness) run(line string) string {
	h.out.Reset()
	_ = h.sh.Execute(line)
	return h.out.String()
}

func (h *harness) writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, h.fs.WriteFile(path, []byte(content), 0o644))
}

func (h *harness) mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, h.fs.MkdirAll(path, 0o755))
}

func (h *harness) isDir(path string) bool {
	info, err := h.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (h *harness) isFile(path string) bool {
	info, err := h.fs.Stat(path)
	return err == nil && !info.IsDir()
}
