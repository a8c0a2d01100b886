package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "token"))
	require.NoError(t, err)
	return s
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := newFileStore(t)

	tok, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	s := newFileStore(t)

	require.NoError(t, s.Save("abc.def.ghi"))

	tok, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)
}

func TestFileStore_SaveCreatesPrivateFile(t *testing.T) {
	s := newFileStore(t)
	require.NoError(t, s.Save("secret"))

	info, err := os.Stat(s.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_LoadTrimsWhitespace(t *testing.T) {
	s := newFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.path), 0o700))
	require.NoError(t, os.WriteFile(s.path, []byte("tok\n"), 0o600))

	tok, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	s := newFileStore(t)
	require.NoError(t, s.Save("tok"))

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	tok, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestMemStore(t *testing.T) {
	var s MemStore

	tok, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.Save("x"))
	tok, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "x", tok)

	require.NoError(t, s.Clear())
	tok, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}
