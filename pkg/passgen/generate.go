package passgen

import (
	"fmt"
)

const baseSwaps = 128

// ByteSource supplies random bytes for assembling a password.
// *keystream.Generator satisfies this interface.
type ByteSource interface {
	NextByte() (byte, error)
	// Advance moves the source to a fresh block of output.
	Advance() error
}

// Assembler binds a ByteSource for repeated password generation.
type Assembler struct {
	src ByteSource
}

func NewAssembler(src ByteSource) *Assembler {
	return &Assembler{src: src}
}

// Generate creates a password from the stock with the given length, using the Assembler's ByteSource.
func (a *Assembler) Generate(stock CharacterStock, length int) (string, error) {
	return Generate(a.src, stock, length)
}

// Generate creates a password from the stock with the given length.
// The result has max(length, stock.MinLength()) characters.
func Generate(src ByteSource, stock CharacterStock, length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: negative length %d", ErrInvalidStock, length)
	}
	if err := stock.Validate(); err != nil {
		return "", err
	}
	if err := src.Advance(); err != nil {
		return "", err
	}

	var (
		pool     []rune
		password = make([]rune, 0, max(length, stock.MinLength()))
		minTotal int
	)
	for i, class := range stock {
		chars := []rune(class.Chars)
		pool = append(pool, chars...)
		minTotal += class.Min
		for j := 0; j < class.Min; j++ {
			c, err := pick(src, chars)
			if err != nil {
				return "", fmt.Errorf("class %d: %w", i, err)
			}
			password = append(password, c)
		}
	}
	for i := minTotal; i < length; i++ {
		c, err := pick(src, pool)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(src, password); err != nil {
		return "", err
	}
	return string(password), nil
}

func pick(src ByteSource, chars []rune) (rune, error) {
	if len(chars) == 0 {
		return 0, ErrEmptyPool
	}
	b, err := src.NextByte()
	if err != nil {
		return 0, err
	}
	return chars[int(b)%len(chars)], nil
}

// shuffle swaps 128 plus one random byte's worth of index pairs.
// Swaps of an index with itself are skipped, not redrawn.
func shuffle(src ByteSource, password []rune) error {
	if len(password) == 0 {
		return nil
	}
	extra, err := src.NextByte()
	if err != nil {
		return err
	}
	swaps := baseSwaps + int(extra)
	for i := 0; i < swaps; i++ {
		from, err := src.NextByte()
		if err != nil {
			return err
		}
		to, err := src.NextByte()
		if err != nil {
			return err
		}
		f, t := int(from)%len(password), int(to)%len(password)
		if f != t {
			password[f], password[t] = password[t], password[f]
		}
	}
	return nil
}
