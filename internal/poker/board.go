package poker

import (
	"fmt"
	"strings"
)

// Board holds the community cards revealed so far, in reveal order.
type Board []Card

// Round is the betting round implied by how many community cards are out.
type Round int

const (
	Preflop Round = iota
	Flop
	Turn
	River
)

func (r Round) String() string {
	switch r {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return fmt.Sprintf("Round(%d)", int(r))
	}
}

// BoardCards returns how many community cards are revealed at the round.
func (r Round) BoardCards() int {
	switch r {
	case Preflop:
		return 0
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	default:
		return -1
	}
}

// Next returns the following round, false at the river.
func (r Round) Next() (Round, bool) {
	if r < Preflop || r >= River {
		return r, false
	}
	return r + 1, true
}

// ApplicableRounds lists the rounds a value engine can be built for: those
// whose next round reveals exactly one more card. The preflop-to-flop
// transition reveals three cards and is handled elsewhere.
func ApplicableRounds() []Round {
	return []Round{Flop, Turn}
}

// RoundOfBoard derives the round from the board length, rejecting boards
// with invalid or duplicate cards.
func RoundOfBoard(b Board) (Round, error) {
	var seen [DeckSize]bool
	for _, c := range b {
		if !c.Valid() {
			return 0, fmt.Errorf("invalid card %d on board", int(c))
		}
		if seen[c] {
			return 0, fmt.Errorf("duplicate card %s on board", c)
		}
		seen[c] = true
	}
	switch len(b) {
	case 0:
		return Preflop, nil
	case 3:
		return Flop, nil
	case 4:
		return Turn, nil
	case 5:
		return River, nil
	default:
		return 0, fmt.Errorf("board of %d cards matches no round", len(b))
	}
}

func (b Board) Contains(c Card) bool {
	for _, bc := range b {
		if bc == c {
			return true
		}
	}
	return false
}

func (b Board) String() string {
	var sb strings.Builder
	for _, c := range b {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ParseBoard reads concatenated card notation, e.g. "AsKd7h".
func ParseBoard(s string) (Board, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid board %q", s)
	}
	b := make(Board, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		b = append(b, c)
	}
	if _, err := RoundOfBoard(b); err != nil {
		return nil, err
	}
	return b, nil
}

// NextRoundBoards enumerates every board reachable by revealing one more
// card, in ascending card order. The order is stable for a given board.
func NextRoundBoards(b Board) []Board {
	out := make([]Board, 0, DeckSize-len(b))
	for c := Card(0); c < DeckSize; c++ {
		if b.Contains(c) {
			continue
		}
		nb := make(Board, len(b), len(b)+1)
		copy(nb, b)
		out = append(out, append(nb, c))
	}
	return out
}

// NextBoardCount is the combinatorial number of one-card continuations from
// a board of the given round, before accounting for card removal by hands.
func NextBoardCount(r Round) int {
	n := r.BoardCards()
	if n < 0 {
		return 0
	}
	return DeckSize - n
}
