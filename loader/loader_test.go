package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arkbc/abcdis/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSmallFileReadsFully(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.abc")
	want := []byte("PANDA\x00\x00\x00rest-of-header")
	require.NoError(t, os.WriteFile(path, want, 0o600))

	buf, err := loader.Load(path)
	require.NoError(t, err)
	defer buf.Close()

	assert.Equal(t, want, buf.Bytes)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.abc"))
	assert.Error(t, err)
}
