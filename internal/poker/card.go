package poker

import (
	"fmt"
	"strings"
)

const (
	DeckSize  = 52
	RankCount = 13
	SuitCount = 4
)

// Card identifies one of the 52 deck cards. Encoding: rank-major,
// card = rank*4 + suit, rank 0..12 (deuce..ace), suit 0..3 (c,d,h,s).
type Card int

const (
	ranks = "23456789TJQKA"
	suits = "cdhs"
)

func MakeCard(rank, suit int) Card {
	return Card(rank*SuitCount + suit)
}

func (c Card) Rank() int { return int(c) / SuitCount }

func (c Card) Suit() int { return int(c) % SuitCount }

func (c Card) Valid() bool { return c >= 0 && c < DeckSize }

func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Card(%d)", int(c))
	}
	return string(ranks[c.Rank()]) + string(suits[c.Suit()])
}

// ParseCard converts the usual two-character notation ("As", "7d", "tc")
// into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q", s)
	}
	rank := strings.IndexByte(ranks, upperByte(s[0]))
	suit := strings.IndexByte(suits, lowerByte(s[1]))
	if rank < 0 || suit < 0 {
		return 0, fmt.Errorf("invalid card %q", s)
	}
	return MakeCard(rank, suit), nil
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
