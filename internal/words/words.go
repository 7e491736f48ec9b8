package words

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Normalize returns the canonical form of a word: surrounding whitespace
// removed and lowercased. Every commit hash and every guess goes through it.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Hash returns the keccak256 commitment of the normalized word.
func Hash(word string) common.Hash {
	return crypto.Keccak256Hash([]byte(Normalize(word)))
}

// Length is the number of characters in the normalized word.
func Length(word string) int {
	return utf8.RuneCountInString(Normalize(word))
}

// Guessable reports whether a word can be typed into the letter grid: not
// blank and letters only once normalized.
func Guessable(word string) bool {
	normalized := Normalize(word)
	if normalized == "" {
		return false
	}
	for _, r := range normalized {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func Matches(guess, word string) bool {
	return Normalize(guess) == Normalize(word)
}

// Hint shows the first and last letter with a dot for every letter in
// between. Words of two letters or fewer are returned as is.
func Hint(word string) string {
	runes := []rune(word)
	if len(runes) <= 2 {
		return word
	}

	return string(runes[0]) + strings.Repeat("•", len(runes)-2) + string(runes[len(runes)-1])
}

// Mask renders the middle word for display: typed letters first, then an
// underscore for every remaining slot. Input longer than length is cut.
func Mask(length int, input string) string {
	if length <= 0 {
		return ""
	}

	typed := []rune(strings.ToUpper(input))
	if len(typed) > length {
		typed = typed[:length]
	}

	var b strings.Builder
	for i := 0; i < length; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i < len(typed) {
			b.WriteRune(typed[i])
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
