package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a1f/pyguard/internal/cli"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	cmd := cli.NewRootCommand(testBuildInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), err
}

const moduleMissingAnnotation = "def greet(name):\n    return name\n"

const moduleClean = "def greet(name: str) -> str:\n    return name\n"

// moduleFixable has a missing return annotation the TYP002 fixer can repair
// by inserting `-> None`.
const moduleFixable = "def helper(x: int) -> None:\n    print(x)\n\n\ndef setup():\n    print('ready')\n"

func TestLint_CleanFileExitsZero(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "clean.py", moduleClean)

	out, err := runCLI(t, "lint", dir, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found")
}

func TestLint_FlaggedFileReturnsLintIssuesError(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "bad.py", moduleMissingAnnotation)

	out, err := runCLI(t, "lint", dir, "--color", "never")
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Contains(t, out, "TYP001")
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
}

func TestLint_JSONFormat(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "bad.py", moduleMissingAnnotation)

	out, err := runCLI(t, "lint", dir, "--format", "json", "--color", "never")
	require.Error(t, err)
	assert.Contains(t, out, `"code"`)
	assert.Contains(t, out, `"TYP001"`)
}

func TestFix_DiffDoesNotWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "fixable.py", moduleFixable)

	out, err := runCLI(t, "fix", dir, "--diff", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "fixable.py")
	assert.Contains(t, out, "-> None")

	after, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, moduleFixable, string(after))
}

func TestFix_CheckReportsPendingWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "fixable.py", moduleFixable)

	_, err := runCLI(t, "fix", dir, "--check", "--color", "never")
	require.ErrorIs(t, err, cli.ErrPendingFixes)

	after, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, moduleFixable, string(after))
}

func TestFix_CheckCleanReturnsNil(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "clean.py", moduleClean)

	_, err := runCLI(t, "fix", dir, "--check", "--color", "never")
	require.NoError(t, err)
}

func TestConfig_PrintsDefaults(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "config", "--json")
	_ = dir
	require.NoError(t, err)
	assert.Contains(t, out, `"output_format"`)
}

func TestConfig_ValidateRejectsBadManifest(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "pyproject.toml", "[tool.pyguard]\ncolor = \"rainbow\"\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { require.NoError(t, os.Chdir(wd)) }()

	_, runErr := runCLI(t, "config", "--validate")
	require.Error(t, runErr)
}

func TestFlagsMutuallyExclusive(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "bad.py", moduleMissingAnnotation)

	_, err := runCLI(t, "fix", dir, "--diff", "--check")
	require.Error(t, err)
}
