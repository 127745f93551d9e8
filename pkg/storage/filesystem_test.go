package storage

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("letters/case-1/decision.pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)
	require.Equal(t, "letters/case-1/decision.pdf", name)

	f, err := store.Open(name)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.Equal(t, "%PDF-1.3", string(data))

	n, err := store.SaveStream("documents/emp-1/id.png", bytes.NewReader([]byte("png")))
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	require.NoError(t, store.Delete(name))
	require.NoError(t, store.Delete(name))
	_, err = store.Open(name)
	require.Error(t, err)
}

func TestLocalStorageRejectsEscapingPaths(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("../outside.pdf", []byte("x"))
	require.Error(t, err)
	_, err = store.Save("/etc/passwd", []byte("x"))
	require.Error(t, err)
}
