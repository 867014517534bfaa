package janken

import (
	"fmt"
	"strings"
)

// Hand represents one of the three janken hands
type Hand int

const (
	Rock Hand = iota
	Scissors
	Paper
)

// Hands is the cycling order of the opponent's hand. Each hand beats the
// one that follows it.
var Hands = [...]Hand{Rock, Scissors, Paper}

// String returns the English name of the hand
func (h Hand) String() string {
	switch h {
	case Rock:
		return "Rock"
	case Scissors:
		return "Scissors"
	case Paper:
		return "Paper"
	default:
		return "?"
	}
}

// Valid reports whether h is one of Rock, Scissors or Paper
func (h Hand) Valid() bool {
	return h.index() >= 0
}

func (h Hand) index() int {
	for i, c := range Hands {
		if c == h {
			return i
		}
	}
	return -1
}

// Next returns the hand that follows h in the cycle
func (h Hand) Next() Hand {
	return Hands[(h.index()+1)%len(Hands)]
}

// Beats reports whether h wins against other
func (h Hand) Beats(other Hand) bool {
	return h.Valid() && other.Valid() && h.Next() == other
}

var handAliases = map[string]Hand{
	"rock":     Rock,
	"r":        Rock,
	"gu":       Rock,
	"グー":       Rock,
	"scissors": Scissors,
	"s":        Scissors,
	"choki":    Scissors,
	"チョキ":      Scissors,
	"paper":    Paper,
	"p":        Paper,
	"pa":       Paper,
	"パー":       Paper,
}

// ParseHand parses a hand from its name or a short alias
func ParseHand(s string) (Hand, error) {
	if h, ok := handAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return h, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHand, s)
}
