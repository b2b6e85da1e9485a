package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/memok/internal/paths"
	"github.com/mesh-intelligence/memok/pkg/types"
)

// testDirs isolates one test's config and data directories.
type testDirs struct {
	config string
	data   string
}

func newTestDirs(t *testing.T) testDirs {
	t.Helper()
	for _, key := range []string{paths.EnvConfigDir, paths.EnvDataDir, "MEMOK_BACKEND", "MEMOK_LOG_LEVEL", "MEMOK_LOG_FORMAT", "MEMOK_BIRTHDAY_WINDOW"} {
		t.Setenv(key, "")
	}
	root := t.TempDir()
	return testDirs{config: filepath.Join(root, "config"), data: filepath.Join(root, "data")}
}

// runMemok runs the CLI in-process with the test directories and the given
// standard input. It returns stdout, stderr and the exit code.
func runMemok(t *testing.T, dirs testDirs, stdin string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	full := append([]string{"--config-dir", dirs.config, "--data-dir", dirs.data}, args...)
	var outBuf, errBuf bytes.Buffer
	exitCode = Run(full, strings.NewReader(stdin), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), exitCode
}

func TestVersion(t *testing.T) {
	dirs := newTestDirs(t)
	out, _, code := runMemok(t, dirs, "", "version")
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "memok v")
	assert.Contains(t, out, modulePath)
}

func TestInitWritesConfig(t *testing.T) {
	dirs := newTestDirs(t)

	out, _, code := runMemok(t, dirs, "", "init")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "memok initialized successfully")

	data, err := os.ReadFile(filepath.Join(dirs.config, "config.yaml"))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, types.BackendJSONL, cfg.Backend)
	assert.Equal(t, dirs.data, cfg.DataDir)
	assert.Equal(t, 7, cfg.BirthdayWindow)

	// A second init keeps the existing file.
	require.NoError(t, os.WriteFile(filepath.Join(dirs.config, "config.yaml"), []byte("backend: sqlite\n"), 0o644))
	_, _, code = runMemok(t, dirs, "", "init")
	require.Equal(t, exitSuccess, code)
	data, err = os.ReadFile(filepath.Join(dirs.config, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "backend: sqlite\n", string(data))
	assert.FileExists(t, filepath.Join(dirs.data, "memok.db"))
}

func TestOneShotPersistsAcrossRuns(t *testing.T) {
	dirs := newTestDirs(t)

	out, _, code := runMemok(t, dirs, "", "add", "Ann", "050-123-45-67")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "Contact added.\n", out)

	out, _, code = runMemok(t, dirs, "", "add", "Ann", "0931112233")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "Contact updated.\n", out)

	out, _, code = runMemok(t, dirs, "", "phone", "Ann")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "Contact name: Ann, phones: 0501234567; 0931112233\n", out)

	assert.FileExists(t, filepath.Join(dirs.data, "contacts.jsonl"))
}

func TestOneShotExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "invalid phone",
			args:     []string{"add", "Ann", "123"},
			wantCode: exitUserError,
			wantErr:  `Validation error: invalid phone "123": phone number must contain exactly 10 digits`,
		},
		{
			name:     "unknown contact",
			args:     []string{"phone", "Ghost"},
			wantCode: exitUserError,
			wantErr:  "Not found: contact Ghost",
		},
		{
			name:     "missing arguments",
			args:     []string{"add", "Ann"},
			wantCode: exitUserError,
			wantErr:  "Please provide all required arguments",
		},
		{
			name:     "unknown backend",
			args:     []string{"--backend", "postgres", "all"},
			wantCode: exitSysError,
			wantErr:  "An error occurred:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dirs := newTestDirs(t)
			_, stderr, code := runMemok(t, dirs, "", tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestContactCommands(t *testing.T) {
	dirs := newTestDirs(t)
	steps := [][]string{
		{"add", "Ann", "0501234567"},
		{"add-email", "Ann", "ann@example.com"},
		{"add-address", "Ann", "Kyiv,", "Main", "st", "1"},
		{"add-birthday", "Ann", "06.06.1990"},
		{"change", "Ann", "0501234567", "0671234567"},
	}
	for _, args := range steps {
		_, stderr, code := runMemok(t, dirs, "", args...)
		require.Equal(t, exitSuccess, code, "%v: %s", args, stderr)
	}

	out, _, _ := runMemok(t, dirs, "", "phone", "Ann")
	assert.Equal(t,
		"Contact name: Ann, phones: 0671234567, email: ann@example.com, address: Kyiv, Main st 1, birthday: 06.06.1990\n",
		out)

	out, _, _ = runMemok(t, dirs, "", "show-birthday", "Ann")
	assert.Equal(t, "Ann's birthday: 06.06.1990\n", out)

	out, _, _ = runMemok(t, dirs, "", "find", "example")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "ann@example.com")

	out, _, _ = runMemok(t, dirs, "", "all")
	assert.Contains(t, out, "All contacts")
	assert.Contains(t, out, "0671234567")

	_, stderr, code := runMemok(t, dirs, "", "remove-phone", "Ann", "0501234567")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "Not found: phone 0501234567")

	out, _, code = runMemok(t, dirs, "", "delete-contact", "Ann")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "Contact Ann deleted.\n", out)

	out, _, code = runMemok(t, dirs, "", "delete-contact", "Ann")
	assert.Equal(t, exitSuccess, code, "deleting an absent contact succeeds")
	assert.Equal(t, "Contact Ann deleted.\n", out)

	out, _, _ = runMemok(t, dirs, "", "all")
	assert.Equal(t, "No contacts saved.\n", out)
}

func TestBirthdaysCommand(t *testing.T) {
	dirs := newTestDirs(t)

	out, _, code := runMemok(t, dirs, "", "birthdays")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "No upcoming birthdays.\n", out)

	_, stderr, code := runMemok(t, dirs, "", "birthdays", "soon")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "Validation error")

	_, _, code = runMemok(t, dirs, "", "add", "Bob", "0931112233")
	require.Equal(t, exitSuccess, code)
	_, _, code = runMemok(t, dirs, "", "add-birthday", "Bob", "01.01.2000")
	require.Equal(t, exitSuccess, code)

	out, _, code = runMemok(t, dirs, "", "birthdays", "366")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "Upcoming birthdays (next 366 days)")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "01.01.2000")
}

func TestNoteCommands(t *testing.T) {
	dirs := newTestDirs(t)
	steps := [][]string{
		{"add-note", "Plan", "write", "the", "tests"},
		{"add-tag", "Plan", "Work"},
		{"add-note", "Groceries", "milk"},
		{"add-tag", "Groceries", "home"},
		{"edit-note", "Groceries", "milk", "and", "bread"},
	}
	for _, args := range steps {
		_, stderr, code := runMemok(t, dirs, "", args...)
		require.Equal(t, exitSuccess, code, "%v: %s", args, stderr)
	}

	out, _, _ := runMemok(t, dirs, "", "show-note", "Plan")
	assert.Contains(t, out, "Title: Plan\nContent: write the tests\nTags: work\n")

	out, _, _ = runMemok(t, dirs, "", "search-tags", "WORK")
	assert.Contains(t, out, "Title: Plan")
	assert.NotContains(t, out, "Groceries")

	out, _, _ = runMemok(t, dirs, "", "search-notes", "BREAD")
	assert.Contains(t, out, "Content: milk and bread")

	out, _, _ = runMemok(t, dirs, "", "tags")
	assert.Equal(t, "home, work\n", out)

	_, stderr, code := runMemok(t, dirs, "", "add-note", "Plan", "again")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "already exists")

	_, _, code = runMemok(t, dirs, "", "remove-tag", "Plan", "work")
	require.Equal(t, exitSuccess, code)
	out, _, _ = runMemok(t, dirs, "", "search-tags", "work")
	assert.Equal(t, "No matching notes found.\n", out)

	_, _, code = runMemok(t, dirs, "", "delete-note", "Plan")
	require.Equal(t, exitSuccess, code)
	_, stderr, code = runMemok(t, dirs, "", "delete-note", "Plan")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "Not found:")

	out, _, _ = runMemok(t, dirs, "", "all-notes")
	assert.Contains(t, out, "Groceries")
	assert.NotContains(t, out, "Title: Plan")
}

func TestSQLiteBackendFromConfig(t *testing.T) {
	dirs := newTestDirs(t)
	require.NoError(t, os.MkdirAll(dirs.config, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dirs.config, "config.yaml"), []byte("backend: sqlite\n"), 0o644))

	_, stderr, code := runMemok(t, dirs, "", "add", "Ann", "0501234567")
	require.Equal(t, exitSuccess, code, stderr)
	assert.FileExists(t, filepath.Join(dirs.data, "memok.db"))
	assert.NoFileExists(t, filepath.Join(dirs.data, "contacts.jsonl"))

	out, _, _ := runMemok(t, dirs, "", "phone", "Ann")
	assert.Equal(t, "Contact name: Ann, phones: 0501234567\n", out)
}

func TestCorruptDataIsNotOverwritten(t *testing.T) {
	dirs := newTestDirs(t)
	require.NoError(t, os.MkdirAll(dirs.data, 0o755))
	corrupt := "{broken\n"
	path := filepath.Join(dirs.data, "contacts.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(corrupt), 0o644))

	_, stderr, code := runMemok(t, dirs, "", "add", "Ann", "0501234567")
	assert.Equal(t, exitSysError, code)
	assert.Contains(t, stderr, "Warning: loading contacts")
	assert.Contains(t, stderr, "read-only")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, corrupt, string(data))

	// Notes are unaffected.
	_, _, code = runMemok(t, dirs, "", "add-note", "Plan", "text")
	assert.Equal(t, exitSuccess, code)
}
