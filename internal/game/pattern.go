// apps/go-solver/internal/game/pattern.go
//
// Pattern encoding for guess/secret pairs.
// Responsibilities:
//   - Encode a guess against a secret using the two-pass Wordle rule.
//   - Pack/unpack the five marks to and from a base-3 Pattern.
//   - Parse and render the c/m/w text form reported by players.

package game

import (
	"fmt"
	"strings"
)

// Encode implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) secret letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter, left to right: if there is remaining
//     count for that letter, mark Misplaced and decrement; otherwise Wrong.
//
// Both words must be WordLen lowercase letters; callers validate with IsWord.
func Encode(guess, secret string) Pattern {
	var marks [WordLen]Mark
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == secret[i] {
			marks[i] = MarkCorrect
		} else {
			counts[idx(secret[i])]++
		}
	}

	for i := 0; i < WordLen; i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			marks[i] = MarkMisplaced
			counts[j]--
		}
	}
	return FromMarks(marks)
}

// FromMarks packs five marks into a Pattern.
func FromMarks(marks [WordLen]Mark) Pattern {
	var p int
	for _, m := range marks {
		p = p*3 + int(m)
	}
	return Pattern(p)
}

// Marks unpacks the pattern into per-position marks.
func (p Pattern) Marks() [WordLen]Mark {
	var marks [WordLen]Mark
	v := int(p)
	for i := WordLen - 1; i >= 0; i-- {
		marks[i] = Mark(v % 3)
		v /= 3
	}
	return marks
}

// String renders the pattern as five c/m/w characters.
func (p Pattern) String() string {
	marks := p.Marks()
	b := make([]byte, WordLen)
	for i, m := range marks {
		b[i] = m.Byte()
	}
	return string(b)
}

// ParsePattern decodes a c/m/w string (case-insensitive).
func ParsePattern(s string) (Pattern, error) {
	if len(s) != WordLen {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidPattern, s)
	}
	var marks [WordLen]Mark
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'c', 'C':
			marks[i] = MarkCorrect
		case 'm', 'M':
			marks[i] = MarkMisplaced
		case 'w', 'W':
			marks[i] = MarkWrong
		default:
			return 0, fmt.Errorf("%w: invalid mark %q", ErrInvalidPattern, s[i])
		}
	}
	return FromMarks(marks), nil
}

// AllPatterns returns every pattern in ascending order.
func AllPatterns() []Pattern {
	out := make([]Pattern, NumPatterns)
	for i := range out {
		out[i] = Pattern(i)
	}
	return out
}

// NormalizeWord lowercases and trims w, and validates it as a five-letter word.
func NormalizeWord(w string) (string, error) {
	w = strings.ToLower(strings.TrimSpace(w))
	if !IsWord(w) {
		return "", fmt.Errorf("%w: got %q", ErrInvalidWord, w)
	}
	return w, nil
}

// IsWord reports whether w is exactly WordLen lowercase ASCII letters.
func IsWord(w string) bool {
	return len(w) == WordLen && isAlpha(w)
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b - 'a') }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
