package agurk

import (
	"context"

	"agurk-server/pkg/deck"
)

// PlayerAPI is how the engine talks to a single player.
// Implementations are provided by the transport layer.
type PlayerAPI interface {
	// IsConnected returns false once the player can no longer be reached
	IsConnected() bool

	// DealCards hands the player their cards for a new round
	DealCards(cards []deck.Card)

	// RequestCards asks the player to play cards. It blocks until the player
	// answers, the request times out, or ctx is done.
	RequestCards(ctx context.Context, retriesLeft int) ([]deck.Card, error)

	// SendAvailableCards tells the player which cards they may still play
	SendAvailableCards(cards []deck.Card)
}

// Player is a participant of a game
type Player struct {
	ID  string
	API PlayerAPI
}

// RoomAPI broadcasts game progress to everyone in the room
type RoomAPI interface {
	BroadcastStartGame(playerIDs []string)
	BroadcastEndGame(winner string)
	BroadcastGameError(message string)

	BroadcastStartRound(playerIDs []string)
	BroadcastEndRound(penalties []Penalty, outPlayers []OutPlayer, winner string)

	BroadcastStartCycle(playerIDs []string, isLastOfRound bool)
	BroadcastEndCycle(outPlayers []OutPlayer, highestTurnPlayerIDs []string)

	BroadcastStartPlayerTurn(playerID string)
	BroadcastPlayerTurn(turn ValidatedTurn)
	BroadcastOutPlayer(outPlayer OutPlayer)
}

func playerIDs(players []Player) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}

	return ids
}

// rotateTo returns players starting with playerID.
// If playerID is unknown, players is returned unchanged.
func rotateTo(players []Player, playerID string) []Player {
	for i, p := range players {
		if p.ID == playerID {
			rotated := make([]Player, 0, len(players))
			rotated = append(rotated, players[i:]...)
			return append(rotated, players[:i]...)
		}
	}

	return players
}

// activePlayers returns players that are not out, keeping their order
func activePlayers(players []Player, outPlayers []OutPlayer) []Player {
	active := make([]Player, 0, len(players))
	for _, p := range players {
		if !isOut(p.ID, outPlayers) {
			active = append(active, p)
		}
	}

	return active
}
