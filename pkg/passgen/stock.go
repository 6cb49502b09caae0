package passgen

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	LowerCase = "abcdefghijklmnopqrstuvwxyz"
	UpperCase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numbers   = "0123456789"
	Special   = "!#$%&()*+,-./:;<=>?@[]^_{|}~"
)

var (
	ErrEmptyPool    = errors.New("no characters available to select from")
	ErrInvalidStock = errors.New("invalid character stock")
)

// CharacterClass is an alphabet paired with the minimum number of characters to draw from it.
type CharacterClass struct {
	Chars string
	Min   int
}

// CharacterStock is an ordered list of character classes.
// Order determines which class minimums are drawn first.
type CharacterStock []CharacterClass

// Add appends a class to the stock.
func (s *CharacterStock) Add(chars string, minLength int) {
	*s = append(*s, CharacterClass{Chars: chars, Min: minLength})
}

// MinLength is the sum of all class minimums.
func (s CharacterStock) MinLength() int {
	var total int
	for _, class := range s {
		total += class.Min
	}
	return total
}

func (s CharacterStock) Validate() error {
	for i, class := range s {
		if class.Min < 0 {
			return fmt.Errorf("%w: class %d has negative minimum %d", ErrInvalidStock, i, class.Min)
		}
		if !utf8.ValidString(class.Chars) {
			return fmt.Errorf("%w: class %d is not valid UTF-8", ErrInvalidStock, i)
		}
	}
	return nil
}
