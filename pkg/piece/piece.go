// Package piece defines the tetromino values moved between the next-piece
// queue and the reserve, and the generator that produces them.
package piece

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Symbol is the single-letter name of a tetromino.
type Symbol byte

const (
	I Symbol = 'I'
	O Symbol = 'O'
	T Symbol = 'T'
	L Symbol = 'L'
	S Symbol = 'S'
	Z Symbol = 'Z'
	J Symbol = 'J'
)

func (s Symbol) String() string {
	return string(rune(s))
}

// Alphabet is the fixed set of symbols a generator draws from.
type Alphabet []Symbol

var (
	// Classic is the four-piece set used by the queue and reserve variants.
	Classic = Alphabet{I, O, T, L}
	// Extended is the full seven-piece set.
	Extended = Alphabet{I, O, T, L, S, Z, J}
)

// Alphabet names accepted by ParseAlphabet.
const (
	AlphabetClassic  = "classic"
	AlphabetExtended = "extended"
)

// ErrUnknownAlphabet is returned by ParseAlphabet for unrecognised names.
var ErrUnknownAlphabet = errors.New("unknown alphabet")

// ParseAlphabet resolves an alphabet by name.
func ParseAlphabet(name string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case AlphabetClassic:
		return Classic, nil
	case AlphabetExtended:
		return Extended, nil
	default:
		return nil, errors.Wrapf(ErrUnknownAlphabet, "%q", name)
	}
}

// Contains reports whether s belongs to the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}
	return false
}

func (a Alphabet) String() string {
	var sb strings.Builder
	for _, s := range a {
		sb.WriteByte(byte(s))
	}
	return sb.String()
}

// Piece is an immutable symbol plus the identifier it was created with.
type Piece struct {
	Symbol Symbol
	ID     uint64
}

func (p Piece) String() string {
	return fmt.Sprintf("[%c %d]", p.Symbol, p.ID)
}
