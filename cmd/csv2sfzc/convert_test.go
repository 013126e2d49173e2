package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestConvertTreeWritesSiblingSFZFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "kick.csv"), "@header,key\n<region>,60\n")

	result := convertTree(dir, 2, false)
	require.Equal(t, 0, result.failures)
	require.Len(t, result.results, 1)

	out, err := os.ReadFile(filepath.Join(dir, "kick.sfz"))
	require.NoError(t, err)
	require.Equal(t, "<region> key=60\n", string(out))
}

func TestConvertTreeDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "kick.csv"), "@header,key\n<region>,60\n")

	result := convertTree(dir, 2, true)
	require.Equal(t, 0, result.failures)

	_, err := os.ReadFile(filepath.Join(dir, "kick.sfz"))
	require.Error(t, err, "dry-run must not write the output file")
}

func TestConvertTreeIsolatesPerFileFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.csv"), "key,group\n60,1\n") // missing @header
	writeFile(t, filepath.Join(dir, "good.csv"), "@header,key\n<region>,60\n")

	result := convertTree(dir, 2, false)
	require.Equal(t, 1, result.failures)
	require.Len(t, result.results, 2)

	_, err := os.ReadFile(filepath.Join(dir, "good.sfz"))
	require.NoError(t, err, "a sibling file's failure must not block this one")
}

func TestConvertTreeRecursesIntoSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "nested", "snare.csv"), "@header,key\n<region>,61\n")

	result := convertTree(dir, 1, false)
	require.Equal(t, 0, result.failures)

	out, err := os.ReadFile(filepath.Join(dir, "nested", "snare.sfz"))
	require.NoError(t, err)
	require.Equal(t, "<region> key=61\n", string(out))
}

func TestFindCSVFilesIsCaseInsensitiveOnExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"), "x")
	writeFile(t, filepath.Join(dir, "b.CSV"), "x")
	writeFile(t, filepath.Join(dir, "c.txt"), "x")

	paths, err := findCSVFiles(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
}
