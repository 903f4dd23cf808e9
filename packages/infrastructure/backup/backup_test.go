package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path string, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
}

func TestRun(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "backup")

	write(t, filepath.Join(src, "notas.txt"), "notas", 0644)
	write(t, filepath.Join(src, "script.sh"), "#!/bin/sh", 0755)
	require.NoError(t, os.Mkdir(filepath.Join(src, "sub"), 0755))
	write(t, filepath.Join(src, "sub", "nested.txt"), "nested", 0644)

	report, err := Run(src, dst)
	require.NoError(t, err)

	assert.Equal(t, []string{"notas.txt", "script.sh"}, report.Copied)

	content, err := os.ReadFile(filepath.Join(dst, "notas.txt"))
	require.NoError(t, err)
	assert.Equal(t, "notas", string(content))

	info, err := os.Stat(filepath.Join(dst, "script.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	_, err = os.Stat(filepath.Join(dst, "sub"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	t.Run("repeated run overwrites", func(t *testing.T) {
		write(t, filepath.Join(src, "notas.txt"), "novas notas", 0644)

		_, err := Run(src, dst)
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dst, "notas.txt"))
		require.NoError(t, err)
		assert.Equal(t, "novas notas", string(content))
	})
}

func TestRunErrors(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	assert.ErrorIs(t, err, ErrSourceNotFound)

	file := filepath.Join(t.TempDir(), "file.txt")
	write(t, file, "x", 0644)

	_, err = Run(file, t.TempDir())
	assert.ErrorIs(t, err, ErrSourceNotDirectory)
}

func TestRunEmptySource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out")

	report, err := Run(t.TempDir(), dst)
	require.NoError(t, err)
	assert.Empty(t, report.Copied)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
