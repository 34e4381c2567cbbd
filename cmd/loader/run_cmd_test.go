package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSheetsDirEmpty(t *testing.T) {
	dir := t.TempDir()

	empty, err := sheetsDirEmpty(dir)
	require.NoError(t, err)
	require.True(t, empty)

	empty, err = sheetsDirEmpty(filepath.Join(dir, "does-not-exist"))
	require.NoError(t, err)
	require.True(t, empty)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "schools.xlsx"), []byte("x"), 0o644))
	empty, err = sheetsDirEmpty(dir)
	require.NoError(t, err)
	require.False(t, empty)
}
