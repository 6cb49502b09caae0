package keystream

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store is durable storage for a single generator State.
// Load returns an error wrapping ErrNoState when nothing has been saved yet.
type Store interface {
	Load() (State, error)
	Save(State) error
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// FileStore keeps the State in a single file, rewritten in full on every Save.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Load() (State, error) {
	var s State
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("%w: %s", ErrNoState, f.path)
		}
		return s, err
	}
	if err := s.UnmarshalBinary(data); err != nil {
		return State{}, err
	}
	return s, nil
}

// Save writes to a temporary file in the same directory and renames it over the target, so readers never see a partial record.
func (f *FileStore) Save(s State) error {
	data, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		return err
	}
	return os.Rename(tmpName, f.path)
}

// MemoryStore keeps the encoded State in memory.
// It's mostly useful for injecting a known State in tests.
type MemoryStore struct {
	mux     sync.Mutex
	data    []byte
	saves   int
	saveErr error
}

// NewMemoryStore creates a MemoryStore, optionally holding an initial State.
func NewMemoryStore(initial ...State) *MemoryStore {
	m := new(MemoryStore)
	if len(initial) > 0 {
		m.Put(initial[0])
	}
	return m
}

func (m *MemoryStore) Load() (State, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	var s State
	if m.data == nil {
		return s, ErrNoState
	}
	if err := s.UnmarshalBinary(m.data); err != nil {
		return State{}, err
	}
	return s, nil
}

func (m *MemoryStore) Save(s State) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	m.data = data
	m.saves++
	return nil
}

// Put replaces the stored State without counting as a Save.
func (m *MemoryStore) Put(s State) {
	data, err := s.MarshalBinary()
	if err != nil {
		panic(err)
	}
	m.PutRaw(data)
}

// PutRaw replaces the stored record with arbitrary bytes, which may not be a valid State.
func (m *MemoryStore) PutRaw(data []byte) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.data = append([]byte(nil), data...)
}

// Snapshot returns the currently stored State, if any.
func (m *MemoryStore) Snapshot() (State, bool) {
	s, err := m.Load()
	return s, err == nil
}

// Saves returns the number of successful calls to Save.
func (m *MemoryStore) Saves() int {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.saves
}

// FailSaves makes every following Save return err. Passing nil restores normal behavior.
func (m *MemoryStore) FailSaves(err error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.saveErr = err
}
