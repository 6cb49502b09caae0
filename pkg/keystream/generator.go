package keystream

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/saylorsolutions/passgen/pkg/aes256"
)

var (
	ErrPersist = errors.New("failed to persist generator state")
)

// CipherFactory creates a keyed BlockEncrypter for the generator.
type CipherFactory = func(key []byte) (BlockEncrypter, error)

// Option configures a Generator in New.
type Option = func(*Generator) error

// WithLogger sets the logger used to report recovered state problems.
// By default, nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		g.log = logger
		return nil
	}
}

// WithCipher substitutes the block cipher. Any substitute must be AES-256 compatible to read existing state.
func WithCipher(factory CipherFactory) Option {
	return func(g *Generator) error {
		if factory == nil {
			return errors.New("nil cipher factory")
		}
		g.newCipher = factory
		return nil
	}
}

// RequirePersist makes a failed save an error instead of a logged warning.
// Bytes from a block are never handed out unless that block's State was saved.
func RequirePersist() Option {
	return func(g *Generator) error {
		g.requirePersist = true
		return nil
	}
}

func defaultCipher(key []byte) (BlockEncrypter, error) {
	return aes256.NewCipher(key)
}

var _ io.Reader = (*Generator)(nil)

// Generator emits keystream bytes, persisting its State to a Store after each new block.
// It loads or synthesizes its State on first use.
type Generator struct {
	mux            sync.Mutex
	store          Store
	newCipher      CipherFactory
	requirePersist bool
	log            *log.Logger

	ready  bool
	cipher BlockEncrypter
	state  State
	cursor int
}

// New creates a Generator backed by the given Store.
// The Store isn't read until the Generator is first used.
func New(store Store, opts ...Option) (*Generator, error) {
	if store == nil {
		return nil, errors.New("nil state store")
	}
	g := &Generator{
		store:     store,
		newCipher: defaultCipher,
		log:       log.New(io.Discard),
		cursor:    BlockSize,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Init loads the State, or synthesizes a new one, and produces the first block.
// It's called implicitly by the other methods, and does nothing once the Generator is ready.
func (g *Generator) Init() error {
	g.mux.Lock()
	defer g.mux.Unlock()
	return g.init()
}

func (g *Generator) init() error {
	if g.ready {
		return nil
	}
	s, err := g.store.Load()
	if err != nil {
		if errors.Is(err, ErrNoState) {
			g.log.Debug("No stored generator state, synthesizing a new one", "reason", err)
		} else {
			g.log.Warn("Discarding unusable generator state", "reason", err)
		}
		s = Synthesize()
		if err := g.persist(s); err != nil {
			return err
		}
	}
	enc, err := g.newCipher(s.Key[:])
	if err != nil {
		return fmt.Errorf("failed to key cipher: %w", err)
	}
	g.cipher = enc
	g.state = s
	g.cursor = BlockSize
	g.ready = true
	return g.advance()
}

func (g *Generator) persist(s State) error {
	if err := g.store.Save(s); err != nil {
		if g.requirePersist {
			return fmt.Errorf("%w: %v", ErrPersist, err)
		}
		g.log.Warn("Failed to persist generator state, keystream may repeat after a restart", "error", err)
	}
	return nil
}

// Advance discards whatever is left of the current block and produces a new one.
// On first use this follows the block produced by Init.
func (g *Generator) Advance() error {
	g.mux.Lock()
	defer g.mux.Unlock()
	if err := g.init(); err != nil {
		return err
	}
	return g.advance()
}

func (g *Generator) advance() error {
	_, next := NextBlock(g.cipher, g.state)
	if err := g.persist(next); err != nil {
		return err
	}
	g.state = next
	g.cursor = 0
	return nil
}

// NextByte returns the next keystream byte, producing a new block when the current one is used up.
// An error is only possible on first use, or when RequirePersist is set.
func (g *Generator) NextByte() (byte, error) {
	g.mux.Lock()
	defer g.mux.Unlock()
	return g.nextByte()
}

func (g *Generator) nextByte() (byte, error) {
	if err := g.init(); err != nil {
		return 0, err
	}
	if g.cursor >= BlockSize {
		if err := g.advance(); err != nil {
			return 0, err
		}
	}
	b := g.state.Block[g.cursor]
	g.cursor++
	return b, nil
}

// Read fills p with keystream bytes.
func (g *Generator) Read(p []byte) (int, error) {
	g.mux.Lock()
	defer g.mux.Unlock()
	for i := range p {
		b, err := g.nextByte()
		if err != nil {
			return i, err
		}
		p[i] = b
	}
	return len(p), nil
}
