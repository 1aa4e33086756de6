package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPhotoDir creates a directory with the canonical mixed listing.
func setupPhotoDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{
		"paris (1).jpg",
		"paris (9).jpg",
		"paris (10).jpg",
		"plain.jpg",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	return dir
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunWithYesRenamesFiles(t *testing.T) {
	dir := setupPhotoDir(t)

	out, err := execute(t, "", "run", dir, "--yes", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "paris (1).jpg -> paris (01).jpg")
	assert.Contains(t, out, "Renamed: 2")
	assert.Equal(t,
		[]string{"paris (01).jpg", "paris (09).jpg", "paris (10).jpg", "plain.jpg"},
		listNames(t, dir))
}

func TestRootCommandWithoutSubcommand(t *testing.T) {
	dir := setupPhotoDir(t)

	_, err := execute(t, "", dir, "--yes", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, listNames(t, dir), "paris (01).jpg")
}

func TestRunDecline(t *testing.T) {
	dir := setupPhotoDir(t)
	before := listNames(t, dir)

	// cmd.SetIn with a plain reader bypasses the TTY check and answers
	// the prompt with "n".
	out, err := execute(t, "n\n", "run", dir, "--no-color")
	require.NoError(t, err, "a declined run exits cleanly")

	assert.Contains(t, out, "[y/N]")
	assert.Contains(t, out, "Cancelled. No files were renamed.")
	assert.Equal(t, before, listNames(t, dir), "decline must not touch any file")
}

func TestRunConfirmYes(t *testing.T) {
	dir := setupPhotoDir(t)

	out, err := execute(t, "y\n", "run", dir, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed: 2")
	assert.Contains(t, listNames(t, dir), "paris (01).jpg")
}

func TestRunDryRun(t *testing.T) {
	dir := setupPhotoDir(t)
	before := listNames(t, dir)

	out, err := execute(t, "", "run", dir, "--dry-run", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run: no files were renamed.")
	assert.Equal(t, before, listNames(t, dir))
}

func TestRunNothingToDo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paris (734).jpg"), []byte("x"), 0644))

	out, err := execute(t, "", "run", dir, "--yes", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to rename.")
}

func TestRunUnreadableDirectoryFails(t *testing.T) {
	_, err := execute(t, "", "run", filepath.Join(t.TempDir(), "missing"), "--yes")
	require.Error(t, err)
}

func TestRunWritesRunLog(t *testing.T) {
	dir := setupPhotoDir(t)

	_, err := execute(t, "", "run", dir, "--yes", "--no-color")
	require.NoError(t, err)

	logDir := filepath.Join(dir, ".zeropad", "logs")
	entries, err := os.ReadDir(logDir)
	require.NoError(t, err, "run log directory must exist")

	var runLog string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "run-") {
			runLog = filepath.Join(logDir, e.Name())
		}
	}
	require.NotEmpty(t, runLog, "expected a run-*.log file in %s", logDir)

	data, err := os.ReadFile(runLog)
	require.NoError(t, err)
	assert.Contains(t, string(data), "renamed paris (1).jpg to paris (01).jpg")
}

func TestPlanSubcommandNeverMutates(t *testing.T) {
	dir := setupPhotoDir(t)
	before := listNames(t, dir)

	out, err := execute(t, "", "plan", dir, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "To rename (2):")
	assert.Contains(t, out, "paris (1).jpg -> paris (01).jpg")
	assert.Contains(t, out, "Skipped (1):")
	assert.Equal(t, before, listNames(t, dir))
}

func TestConfigFileDefaults(t *testing.T) {
	dir := setupPhotoDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".zeropad"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".zeropad", "config.yaml"),
		[]byte("assume_yes: true\nno_color: true\n"),
		0644))

	out, err := execute(t, "", "run", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed: 2", "assume_yes from config should skip the prompt")
	assert.Contains(t, listNames(t, dir), "paris (01).jpg")
}

func TestSkippedFilesAreReported(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"img (1).png",
		"img (2).png",
		"img (02).png",
		"invalid (100) (19231).jpg",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	out, err := execute(t, "", "plan", dir, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "exactly one numbered group; found 2")
	assert.Contains(t, out, "duplicate index 2")
	// The unambiguous file survives planning even though its group had
	// a conflict.
	assert.Contains(t, out, "img (1).png")
}
