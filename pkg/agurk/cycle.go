package agurk

import (
	"context"

	"agurk-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// playCycle lets every player play one turn, in the given order
func (e *Engine) playCycle(ctx context.Context, players []Player, round RoundState) Cycle {
	ids := playerIDs(players)
	hands := availableHands(ids, round)
	isLast := isLastOfRound(hands)

	e.room.BroadcastStartCycle(ids, isLast)

	state := CycleState{
		Turns:      []ValidatedTurn{},
		Hands:      hands,
		PlayerIDs:  ids,
		OutPlayers: []OutPlayer{},
	}

	for _, player := range players {
		state = e.playTurnWithRetry(ctx, player, state)
	}

	cycle := Cycle{
		CycleState:   state,
		HighestTurns: FindHighestRankTurns(state.Turns),
		LowestTurns:  FindLowestRankTurns(state.Turns),
	}

	e.room.BroadcastEndCycle(state.OutPlayers, turnPlayerIDs(cycle.HighestTurns))

	if !isLast {
		e.pause(ctx, e.options.DelayAfterCycle)
	}

	return cycle
}

// playTurnWithRetry plays the player's turn until it is valid or the player is out
func (e *Engine) playTurnWithRetry(ctx context.Context, player Player, state CycleState) CycleState {
	retriesLeft := e.options.RetryBudget
	for {
		turn := e.playTurn(ctx, player, state, retriesLeft)
		if turn.Valid {
			state.Turns = append(state.Turns, turn)
			return state
		}

		if retriesLeft > 0 && player.API.IsConnected() {
			retriesLeft--
			continue
		}

		out := OutPlayer{ID: player.ID, Reason: turn.InvalidReason}
		e.logger.WithFields(logrus.Fields{
			"playerID": out.ID,
			"reason":   out.Reason,
		}).Info("player is out")

		e.room.BroadcastOutPlayer(out)
		state.OutPlayers = append(state.OutPlayers, out)
		return state
	}
}

// availableHands returns the initial hands without the cards of valid turns played so far
func availableHands(playerIDs []string, round RoundState) Hands {
	played := make(map[string][]deck.Card)
	for _, cycle := range round.Cycles {
		for _, turn := range validTurns(cycle.Turns) {
			played[turn.PlayerID] = append(played[turn.PlayerID], turn.Cards...)
		}
	}

	hands := make(Hands, len(playerIDs))
	for _, id := range playerIDs {
		hands[id] = round.InitialHands[id].Without(played[id])
	}

	return hands
}

func isLastOfRound(hands Hands) bool {
	for _, hand := range hands {
		if len(hand) != 1 {
			return false
		}
	}

	return true
}
