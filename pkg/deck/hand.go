package deck

import (
	"sort"
)

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

// Less orders by rank only
func (h Hand) Less(i, j int) bool {
	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Without returns a new hand without any card equal to one of the specified cards
func (h Hand) Without(cards []Card) Hand {
	newHand := make(Hand, 0, len(h))
	for _, c := range h {
		if !Hand(cards).HasCard(c) {
			newHand = append(newHand, c)
		}
	}

	return newHand
}

// Ranks returns the rank of every card, in hand order
func (h Hand) Ranks() []int {
	ranks := make([]int, len(h))
	for i, c := range h {
		ranks[i] = c.Rank
	}

	return ranks
}

// SortedRanks returns the ranks in ascending order
func (h Hand) SortedRanks() []int {
	ranks := h.Ranks()
	sort.Ints(ranks)
	return ranks
}

// RankSum returns the sum of all ranks
func (h Hand) RankSum() int {
	sum := 0
	for _, c := range h {
		sum += c.Rank
	}

	return sum
}

// MaxRank returns the highest rank in the hand, or 0 if the hand is empty
func (h Hand) MaxRank() int {
	max := 0
	for _, c := range h {
		if c.Rank > max {
			max = c.Rank
		}
	}

	return max
}

// MinRank returns the lowest rank in the hand, or 0 if the hand is empty
func (h Hand) MinRank() int {
	if len(h) == 0 {
		return 0
	}

	min := h[0].Rank
	for _, c := range h[1:] {
		if c.Rank < min {
			min = c.Rank
		}
	}

	return min
}

// SortedByRank returns a copy of the hand sorted by ascending rank
func (h Hand) SortedByRank() Hand {
	sorted := h.Clone()
	sort.Stable(sorted)
	return sorted
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
