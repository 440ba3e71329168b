package agurk

import (
	"fmt"
	"sort"

	"agurk-server/pkg/deck"
)

// player limits
const (
	MinPlayerCount = 2
	MaxPlayerCount = 7
)

// MaxCardsPerTurn is the most cards a single turn may contain
const MaxCardsPerTurn = 7

// PenaltySumThreshold is the penalty rank sum a player may reach without being eliminated
const PenaltySumThreshold = 21

const reasonNotFollowingRules = "not following the game rules"

var cardCountSchedule = []int{7, 6, 5, 4, 3, 2, 1, 2, 3, 4, 5, 6}

// SampleFunc picks one of ids. It returns false if ids is empty.
type SampleFunc func(ids []string) (string, bool)

// IsValidPlayerCount returns true if a game can be played with n players
func IsValidPlayerCount(n int) bool {
	return n >= MinPlayerCount && n <= MaxPlayerCount
}

// CardCountToDeal returns how many cards each player receives after roundsPlayed rounds
func CardCountToDeal(roundsPlayed int) int {
	return cardCountSchedule[roundsPlayed%len(cardCountSchedule)]
}

// IsPenaltyThresholdExceeded returns true if the rank sum of the cards is above PenaltySumThreshold
func IsPenaltyThresholdExceeded(cards []deck.Card) bool {
	return deck.Hand(cards).RankSum() > PenaltySumThreshold
}

// ValidateTurn checks the turn against the cycle played so far
func ValidateTurn(turn Turn, state CycleState) ValidatedTurn {
	previous := validTurns(state.Turns)
	available := state.Hands[turn.PlayerID]
	played := deck.Hand(turn.Cards)

	valid := isValidCardCount(played) &&
		isMatchingCycleCardCount(previous, played) &&
		isEveryCardInHand(available, played) &&
		(len(previous) > 0 || isMatchingRank(played)) &&
		isValidRank(previous, available, played) &&
		isLastCardPlayedAlone(available, played)

	if !valid {
		return ValidatedTurn{Turn: turn, Valid: false, InvalidReason: reasonNotFollowingRules}
	}

	return ValidatedTurn{Turn: turn, Valid: true}
}

func isValidCardCount(played deck.Hand) bool {
	return len(played) >= 1 && len(played) <= MaxCardsPerTurn
}

// every player plays as many cards as the player who opened the cycle
func isMatchingCycleCardCount(previous []ValidatedTurn, played deck.Hand) bool {
	if len(previous) == 0 {
		return true
	}

	return len(previous[0].Cards) == len(played)
}

func isEveryCardInHand(available deck.Hand, played deck.Hand) bool {
	for i, card := range played {
		if !available.HasCard(card) || played[:i].HasCard(card) {
			return false
		}
	}

	return true
}

func isMatchingRank(played deck.Hand) bool {
	for _, card := range played {
		if card.Rank != played[0].Rank {
			return false
		}
	}

	return true
}

// the cards either beat every card of the cycle, or they are the lowest cards of the hand
func isValidRank(previous []ValidatedTurn, available deck.Hand, played deck.Hand) bool {
	currentMax := 0
	for _, t := range previous {
		if rank := deck.Hand(t.Cards).MaxRank(); rank > currentMax {
			currentMax = rank
		}
	}

	if played.MinRank() >= currentMax {
		return true
	}

	lowest := available.SortedRanks()
	for i, rank := range played.SortedRanks() {
		if i >= len(lowest) || lowest[i] != rank {
			return false
		}
	}

	return true
}

// a hand may only be emptied one card at a time
func isLastCardPlayedAlone(available deck.Hand, played deck.Hand) bool {
	if len(available)-len(played) == 0 {
		return len(played) == 1
	}

	return true
}

// IsRoundFinished returns true if the last cycle was the final one of the round
func IsRoundFinished(state RoundState) bool {
	if len(state.Cycles) == 0 {
		return false
	}

	last := state.Cycles[len(state.Cycles)-1]
	if len(activePlayerIDs(last.PlayerIDs, last.OutPlayers)) <= 1 {
		return true
	}

	for _, id := range last.PlayerIDs {
		if len(last.Hands[id]) != 1 {
			return false
		}
	}

	return true
}

// IsGameFinished returns true if at most one player is left
func IsGameFinished(state GameState) bool {
	return len(activePlayerIDs(state.PlayerIDs, state.OutPlayers)) <= 1
}

// ChooseRoundStartingPlayerID returns the first player for the first round, afterwards the previous round's winner
func ChooseRoundStartingPlayerID(state GameState) (string, bool) {
	if len(state.Rounds) == 0 {
		return first(state.PlayerIDs)
	}

	winner := state.Rounds[len(state.Rounds)-1].Winner
	return winner, winner != ""
}

// ChooseCycleStartingPlayerID returns the first player for the first cycle.
// Afterwards the last listed player with the highest turn of the previous cycle starts.
func ChooseCycleStartingPlayerID(state RoundState) (string, bool) {
	if len(state.Cycles) == 0 {
		return first(state.PlayerIDs)
	}

	highest := state.Cycles[len(state.Cycles)-1].HighestTurns
	if len(highest) == 0 {
		return "", false
	}

	return highest[len(highest)-1].PlayerID, true
}

// ChooseRoundWinner samples among the players with the lowest turns of the last cycle
func ChooseRoundWinner(state RoundState, sample SampleFunc) (string, bool) {
	if len(state.Cycles) == 0 {
		return "", false
	}

	lowest := state.Cycles[len(state.Cycles)-1].LowestTurns
	if len(lowest) == 0 {
		return "", false
	}

	return mustSample(sample, uniqueIDs(turnPlayerIDs(lowest))), true
}

// ChooseGameWinner returns the last active player.
// If everyone is out, the player with the lowest penalty sum wins, ties are sampled.
func ChooseGameWinner(sample SampleFunc, state GameState) (string, bool) {
	active := activePlayerIDs(state.PlayerIDs, state.OutPlayers)
	switch len(active) {
	case 0:
		return chooseByLowestPenaltySum(sample, penaltiesFromRounds(state.Rounds))
	case 1:
		return active[0], true
	default:
		return "", false
	}
}

func chooseByLowestPenaltySum(sample SampleFunc, penalties []Penalty) (string, bool) {
	if len(penalties) == 0 {
		return "", false
	}

	sums := penaltySums(penalties)
	order := make([]string, 0, len(sums))
	for _, p := range penalties {
		order = append(order, p.PlayerID)
	}
	order = uniqueIDs(order)

	min := sums[order[0]]
	for _, id := range order {
		if sums[id] < min {
			min = sums[id]
		}
	}

	candidates := make([]string, 0, len(order))
	for _, id := range order {
		if sums[id] == min {
			candidates = append(candidates, id)
		}
	}

	return mustSample(sample, candidates), true
}

func penaltySums(penalties []Penalty) map[string]int {
	sums := make(map[string]int)
	for _, p := range penalties {
		sums[p.PlayerID] += p.Card.Rank
	}

	return sums
}

// FindHighestRankTurns returns the valid turns containing the highest rank played
func FindHighestRankTurns(turns []ValidatedTurn) []ValidatedTurn {
	valid := validTurns(turns)
	ranks := playedRanks(valid)
	if len(ranks) == 0 {
		return []ValidatedTurn{}
	}

	return turnsWithRank(valid, ranks[len(ranks)-1])
}

// FindLowestRankTurns returns the valid turns containing the lowest rank played
func FindLowestRankTurns(turns []ValidatedTurn) []ValidatedTurn {
	valid := validTurns(turns)
	ranks := playedRanks(valid)
	if len(ranks) == 0 {
		return []ValidatedTurn{}
	}

	return turnsWithRank(valid, ranks[0])
}

func playedRanks(turns []ValidatedTurn) []int {
	ranks := make([]int, 0)
	for _, t := range turns {
		ranks = append(ranks, deck.Hand(t.Cards).Ranks()...)
	}

	sort.Ints(ranks)
	return ranks
}

func turnsWithRank(turns []ValidatedTurn, rank int) []ValidatedTurn {
	found := make([]ValidatedTurn, 0, len(turns))
	for _, t := range turns {
		for _, card := range t.Cards {
			if card.Rank == rank {
				found = append(found, t)
				break
			}
		}
	}

	return found
}

func first(ids []string) (string, bool) {
	if len(ids) == 0 {
		return "", false
	}

	return ids[0], true
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	return unique
}

func mustSample(sample SampleFunc, ids []string) string {
	id, ok := sample(ids)
	if !ok {
		panic(fmt.Sprintf("could not sample a player from %v", ids))
	}

	return id
}
