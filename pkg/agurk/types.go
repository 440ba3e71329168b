package agurk

import (
	"agurk-server/pkg/deck"
)

// Turn is a play a player wants to make
type Turn struct {
	PlayerID string      `json:"playerId"`
	Cards    []deck.Card `json:"cards"`
}

// ValidatedTurn is a turn that went through the rule engine
type ValidatedTurn struct {
	Turn
	Valid         bool   `json:"valid"`
	InvalidReason string `json:"invalidReason,omitempty"`
}

// OutPlayer is a player that was eliminated
type OutPlayer struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Penalty is a card charged to a player at the end of a round
type Penalty struct {
	PlayerID string    `json:"playerId"`
	Card     deck.Card `json:"card"`
}

// Hands maps a player ID to their cards
type Hands map[string]deck.Hand

// CycleState is the state of a cycle while turns are being played
type CycleState struct {
	Turns      []ValidatedTurn
	Hands      Hands
	PlayerIDs  []string
	OutPlayers []OutPlayer
}

// Cycle is a finished cycle
type Cycle struct {
	CycleState
	HighestTurns []ValidatedTurn
	LowestTurns  []ValidatedTurn
}

// RoundState is the state of a round while cycles are being played
type RoundState struct {
	InitialHands Hands
	Cycles       []Cycle
	PlayerIDs    []string
	OutPlayers   []OutPlayer
}

// Round is a finished round. Winner is empty if nobody could be chosen.
type Round struct {
	RoundState
	Winner    string
	Penalties []Penalty
}

// GameState is the state of a game while rounds are being played
type GameState struct {
	PlayerIDs  []string
	Rounds     []Round
	OutPlayers []OutPlayer
}

// Game is a finished game with a winner
type Game struct {
	GameState
	Winner string
}

func isOut(playerID string, outPlayers []OutPlayer) bool {
	for _, o := range outPlayers {
		if o.ID == playerID {
			return true
		}
	}

	return false
}

func activePlayerIDs(playerIDs []string, outPlayers []OutPlayer) []string {
	active := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		if !isOut(id, outPlayers) {
			active = append(active, id)
		}
	}

	return active
}

func penaltiesFromRounds(rounds []Round) []Penalty {
	penalties := make([]Penalty, 0)
	for _, r := range rounds {
		penalties = append(penalties, r.Penalties...)
	}

	return penalties
}

func penaltyCards(penalties []Penalty) []deck.Card {
	cards := make([]deck.Card, len(penalties))
	for i, p := range penalties {
		cards[i] = p.Card
	}

	return cards
}

func turnPlayerIDs(turns []ValidatedTurn) []string {
	ids := make([]string, len(turns))
	for i, t := range turns {
		ids[i] = t.PlayerID
	}

	return ids
}

func validTurns(turns []ValidatedTurn) []ValidatedTurn {
	valid := make([]ValidatedTurn, 0, len(turns))
	for _, t := range turns {
		if t.Valid {
			valid = append(valid, t)
		}
	}

	return valid
}
