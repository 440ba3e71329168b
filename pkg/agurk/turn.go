package agurk

import (
	"context"
	"errors"

	"agurk-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// ErrPlayerDisconnected is returned when cards are requested from a disconnected player
var ErrPlayerDisconnected = errors.New("cannot request cards from disconnected player")

const reasonNoCardsPlayed = "no cards played"

// playTurn announces the turn, requests cards from the player, and validates them
// A failed request is never returned, it becomes an invalid turn.
func (e *Engine) playTurn(ctx context.Context, player Player, state CycleState, retriesLeft int) ValidatedTurn {
	log := e.logger.WithFields(logrus.Fields{
		"playerID":    player.ID,
		"retriesLeft": retriesLeft,
	})

	e.room.BroadcastStartPlayerTurn(player.ID)
	player.API.SendAvailableCards(state.Hands[player.ID])

	cards, err := requestCards(ctx, player, retriesLeft)
	if err != nil {
		log.WithError(err).Warn("no cards played")
		return ValidatedTurn{
			Turn:          Turn{PlayerID: player.ID, Cards: []deck.Card{}},
			Valid:         false,
			InvalidReason: reasonNoCardsPlayed,
		}
	}

	turn := ValidateTurn(Turn{PlayerID: player.ID, Cards: cards}, state)
	if !turn.Valid {
		log.WithField("cards", deck.CardsToString(cards)).Info("invalid turn")
		return turn
	}

	log.WithField("cards", deck.CardsToString(cards)).Debug("turn played")
	e.room.BroadcastPlayerTurn(turn)

	return turn
}

func requestCards(ctx context.Context, player Player, retriesLeft int) ([]deck.Card, error) {
	if !player.API.IsConnected() {
		return nil, ErrPlayerDisconnected
	}

	return player.API.RequestCards(ctx, retriesLeft)
}
