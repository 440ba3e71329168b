package agurk

import (
	"agurk-server/internal/rng"
	"agurk-server/pkg/deck"
)

// Dealer deals hands and breaks ties
type Dealer interface {
	// CreateHands deals cardCount cards to every player from a fresh deck without cardsToOmit.
	// Every player receives the same number of cards.
	CreateHands(playerIDs []string, cardsToOmit []deck.Card, cardCount int) Hands

	// SamplePlayerID picks one of ids. The second value is false if ids is empty.
	SamplePlayerID(ids []string) (string, bool)
}

// RandomDealer is a Dealer backed by a random number generator
type RandomDealer struct {
	gen rng.Generator
}

// NewRandomDealer returns a new dealer. If gen is nil, crypto/rand is used.
func NewRandomDealer(gen rng.Generator) *RandomDealer {
	if gen == nil {
		gen = rng.Crypto{}
	}

	return &RandomDealer{gen: gen}
}

// CreateHands deals the hands
// If the deck is too small for everyone to receive cardCount cards, one card less is dealt
func (r *RandomDealer) CreateHands(playerIDs []string, cardsToOmit []deck.Card, cardCount int) Hands {
	d := deck.New()
	d.Remove(cardsToOmit...)
	d.Shuffle(r.gen)

	return dealHands(d, playerIDs, cardCount)
}

func dealHands(d *deck.Deck, playerIDs []string, cardCount int) Hands {
	if cardCount > 0 && !d.CanDraw(len(playerIDs)*cardCount) {
		return dealHands(d, playerIDs, cardCount-1)
	}

	if cardCount < 0 {
		cardCount = 0
	}

	hands := make(Hands, len(playerIDs))
	for _, id := range playerIDs {
		hand := make(deck.Hand, 0, cardCount)
		for len(hand) < cardCount {
			card, err := d.Draw()
			if err != nil {
				// CanDraw was checked above
				panic(err)
			}

			hand = append(hand, card)
		}

		hands[id] = hand
	}

	return hands
}

// SamplePlayerID returns a uniformly chosen player ID
func (r *RandomDealer) SamplePlayerID(ids []string) (string, bool) {
	if len(ids) == 0 {
		return "", false
	}

	return ids[r.gen.Intn(len(ids))], true
}
