// Command equityjudge prints the exact all-in equity of a hero hand on a
// complete board by enumerating every villain combination. A handy baseline
// when eyeballing the scale of model counterfactual values.
package main

import (
	"flag"
	"fmt"

	phpoker "github.com/paulhankin/poker"
	"github.com/sirupsen/logrus"

	"deepholdem/internal/poker"
)

func main() {
	boardStr := flag.String("board", "", "five community cards, e.g. As7d2c9h9s")
	handStr := flag.String("hand", "", "hero hole cards, e.g. KdKs")
	flag.Parse()

	board, err := poker.ParseBoard(*boardStr)
	if err != nil {
		logrus.Fatalf("bad board: %v", err)
	}
	if len(board) != 5 {
		logrus.Fatalf("need a 5-card board, got %d cards", len(board))
	}
	hand, err := parseHand(*handStr, board)
	if err != nil {
		logrus.Fatalf("bad hand: %v", err)
	}

	eq := equity(board, hand)
	fmt.Printf("board %s hand %s%s: equity %.4f, pot-relative value %+.4f\n",
		board, hand[0], hand[1], eq, 2*eq-1)
}

func parseHand(s string, board poker.Board) ([2]poker.Card, error) {
	var hand [2]poker.Card
	if len(s) != 4 {
		return hand, fmt.Errorf("need exactly two cards, got %q", s)
	}
	for i := 0; i < 2; i++ {
		c, err := poker.ParseCard(s[i*2 : i*2+2])
		if err != nil {
			return hand, err
		}
		if board.Contains(c) {
			return hand, fmt.Errorf("card %s already on the board", c)
		}
		hand[i] = c
	}
	if hand[0] == hand[1] {
		return hand, fmt.Errorf("duplicate card %s in hand", hand[0])
	}
	return hand, nil
}

func toPH(c poker.Card) phpoker.Card {
	var s phpoker.Suit
	switch c.Suit() {
	case 0:
		s = phpoker.Club
	case 1:
		s = phpoker.Diamond
	case 2:
		s = phpoker.Heart
	default:
		s = phpoker.Spade
	}
	r := phpoker.Rank(c.Rank() + 2)
	if c.Rank() == 12 {
		r = phpoker.Rank(1) // ace
	}
	pc, _ := phpoker.MakeCard(s, r)
	return pc
}

func equity(board poker.Board, hand [2]poker.Card) float64 {
	var hero, villain [7]phpoker.Card
	hero[0], hero[1] = toPH(hand[0]), toPH(hand[1])
	for i, c := range board {
		hero[2+i] = toPH(c)
		villain[2+i] = hero[2+i]
	}
	heroScore := phpoker.Eval7(&hero)

	avail := make([]poker.Card, 0, poker.DeckSize)
	for c := poker.Card(0); c < poker.DeckSize; c++ {
		if !board.Contains(c) && c != hand[0] && c != hand[1] {
			avail = append(avail, c)
		}
	}

	var total, win, tie int
	for i := 0; i < len(avail); i++ {
		for j := i + 1; j < len(avail); j++ {
			total++
			villain[0], villain[1] = toPH(avail[i]), toPH(avail[j])
			s := phpoker.Eval7(&villain)
			if heroScore > s {
				win++
			} else if heroScore == s {
				tie++
			}
		}
	}
	return (float64(win) + 0.5*float64(tie)) / float64(total)
}
