package keystream

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.bin")
	store := NewFileStore(path)
	assert.Equal(t, path, store.Path())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoState)

	s := testState()
	require.NoError(t, store.Save(s))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(StateSize), info.Size())
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	s.Counter.Inc()
	require.NoError(t, store.Save(s))
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "Temporary files should be cleaned up")
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.bin")
	require.NoError(t, os.WriteFile(path, []byte{0, 0, 0, 32, 1, 2, 3}, 0600))
	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, ErrCorruptState)
}

func TestFileStore_Generator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.bin")
	g, err := New(NewFileStore(path))
	require.NoError(t, err)
	buf := make([]byte, 20)
	_, err = g.Read(buf)
	require.NoError(t, err)

	// Two blocks were produced after the baseline was written.
	persisted, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, g.state, persisted)

	resumed, err := New(NewFileStore(path))
	require.NoError(t, err)
	require.NoError(t, resumed.Init())
	expected := persisted.Counter
	expected.Inc()
	assert.Equal(t, expected, resumed.state.Counter)
	assert.Equal(t, persisted.Key, resumed.state.Key)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	_, ok := store.Snapshot()
	assert.False(t, ok)
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoState)

	store.Put(testState())
	s, ok := store.Snapshot()
	assert.True(t, ok)
	assert.Equal(t, testState(), s)
	assert.Equal(t, 0, store.Saves())

	store.PutRaw([]byte{1, 2, 3})
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrCorruptState)
}

func TestSynthesize(t *testing.T) {
	a := Synthesize()
	b := Synthesize()
	assert.NotEqual(t, a.Key, b.Key)
	assert.NotEqual(t, a.Counter, b.Counter)
	assert.NotEqual(t, a.Block, b.Block)
	assert.NotEqual(t, a.Key[:BlockSize], a.Block[:], "Fields should be drawn independently")
}

func TestSeedMaterial_Distinct(t *testing.T) {
	before := seedSequence.Load()
	a := seedMaterial(seedSequence.Add(1))
	b := seedMaterial(seedSequence.Add(1))
	assert.NotEqual(t, a, b)
	assert.Equal(t, before+2, seedSequence.Load())
}
