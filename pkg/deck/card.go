package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind distinguishes suit cards from jokers
type Kind string

// kind constants
const (
	SuitKind  Kind = "SUIT"
	JokerKind Kind = "JOKER"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "CLUBS"
	Diamonds Suit = "DIAMONDS"
	Hearts   Suit = "HEARTS"
	Spades   Suit = "SPADES"
)

// Color is the color of a joker
type Color string

// joker colors
const (
	Black Color = "BLACK"
	Red   Color = "RED"
	White Color = "WHITE"
)

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// JokerRank is the rank of every joker. Jokers beat every suit card.
const JokerRank = 15

// Card is an individual playing card. It is either a suit card or a joker.
// Only the rank takes part in comparisons, suit and color identify the card.
type Card struct {
	Kind  Kind  `json:"kind"`
	Rank  int   `json:"rank"`
	Suit  Suit  `json:"suit,omitempty"`
	Color Color `json:"color,omitempty"`
}

// NewSuitCard returns a suit card
func NewSuitCard(rank int, suit Suit) Card {
	return Card{Kind: SuitKind, Rank: rank, Suit: suit}
}

// NewJoker returns a joker of the given color
func NewJoker(color Color) Card {
	return Card{Kind: JokerKind, Rank: JokerRank, Color: color}
}

// IsJoker returns true if the card is a joker
func (c Card) IsJoker() bool {
	return c.Kind == JokerKind
}

// Equal returns true if the cards are the same card.
// Suit cards match on rank and suit, jokers on rank and color. A suit card never equals a joker.
func (c Card) Equal(card Card) bool {
	if c.Kind != card.Kind || c.Rank != card.Rank {
		return false
	}

	if c.IsJoker() {
		return c.Color == card.Color
	}

	return c.Suit == card.Suit
}

// IsValid returns true if the card could be part of a deck
func (c Card) IsValid() bool {
	switch c.Kind {
	case SuitKind:
		if c.Rank < 2 || c.Rank > Ace || c.Color != "" {
			return false
		}

		switch c.Suit {
		case Clubs, Diamonds, Hearts, Spades:
			return true
		}
	case JokerKind:
		if c.Rank != JokerRank || c.Suit != "" {
			return false
		}

		switch c.Color {
		case Black, Red, White:
			return true
		}
	}

	return false
}

func (c Card) String() string {
	if c.IsJoker() {
		return fmt.Sprintf("Joker(%s)", strings.ToLower(string(c.Color)))
	}

	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return rank + suit
}

var cardRx = regexp.MustCompile(`(?i)^(?:([2-9]|1[0-4])([cdhs])|15([brw]))\z`)

// CardFromString returns a Card from the string.
// Suit cards use the format <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs],
// jokers use 15<color> where color in [brw].
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	if match[3] != "" {
		switch strings.ToLower(match[3]) {
		case "b":
			return NewJoker(Black)
		case "r":
			return NewJoker(Red)
		default:
			return NewJoker(White)
		}
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	default:
		suit = Spades
	}

	return NewSuitCard(rank, suit)
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	if card.IsJoker() {
		return fmt.Sprintf("%d%s", card.Rank, strings.ToLower(string(card.Color))[:1])
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
