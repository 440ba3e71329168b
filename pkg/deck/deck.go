package deck

import (
	"errors"

	"agurk-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a full deck
const Size = 55

var suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var jokerColors = []Color{Black, Red, White}

// Deck represents a playing deck of 52 suit cards and three jokers
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, suit := range suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, NewSuitCard(rank, suit))
		}
	}

	for _, color := range jokerColors {
		cards = append(cards, NewJoker(color))
	}

	d.Cards = cards
}

// Shuffle will shuffle the remaining cards using the generator
func (d *Deck) Shuffle(gen rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Remove removes every card that is equal to one of the specified cards.
// The number of removed cards is returned.
func (d *Deck) Remove(cards ...Card) int {
	remaining := Hand(d.Cards).Without(cards)
	removed := len(d.Cards) - len(remaining)
	d.Cards = remaining

	return removed
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with an empty card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}
