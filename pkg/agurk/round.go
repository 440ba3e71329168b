package agurk

import (
	"context"

	"agurk-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

const reasonPenaltyThresholdExceeded = "penalty threshold exceeded"

// playRound deals new hands and plays cycles until the round is finished
func (e *Engine) playRound(ctx context.Context, players []Player, previousRounds []Round) Round {
	ids := playerIDs(players)
	e.room.BroadcastStartRound(ids)

	previousPenalties := penaltiesFromRounds(previousRounds)
	cardCount := CardCountToDeal(len(previousRounds))
	hands := e.dealer.CreateHands(ids, penaltyCards(previousPenalties), cardCount)
	for _, player := range players {
		player.API.DealCards(hands[player.ID])
	}

	e.logger.WithFields(logrus.Fields{
		"round":     len(previousRounds) + 1,
		"cardCount": cardCount,
		"players":   ids,
	}).Debug("starting round")

	state := RoundState{
		InitialHands: hands,
		Cycles:       []Cycle{},
		PlayerIDs:    ids,
		OutPlayers:   []OutPlayer{},
	}

	ordered := players
	for {
		startingID, ok := ChooseCycleStartingPlayerID(state)
		if !ok {
			break
		}

		ordered = activePlayers(rotateTo(ordered, startingID), state.OutPlayers)
		cycle := e.playCycle(ctx, ordered, state)

		state.Cycles = append(state.Cycles, cycle)
		state.OutPlayers = append(state.OutPlayers, cycle.OutPlayers...)

		if IsRoundFinished(state) {
			break
		}
	}

	round := e.finishRound(state, previousPenalties)
	e.pause(ctx, e.options.DelayAfterRound)

	return round
}

// finishRound charges the penalties, picks the winner, and eliminates players above the threshold
func (e *Engine) finishRound(state RoundState, previousPenalties []Penalty) Round {
	winner, _ := ChooseRoundWinner(state, e.dealer.SamplePlayerID)
	penalties := roundPenalties(state)

	cumulative := make(map[string][]deck.Card)
	for _, p := range append(previousPenalties, penalties...) {
		cumulative[p.PlayerID] = append(cumulative[p.PlayerID], p.Card)
	}

	for _, id := range state.PlayerIDs {
		if isOut(id, state.OutPlayers) || !IsPenaltyThresholdExceeded(cumulative[id]) {
			continue
		}

		state.OutPlayers = append(state.OutPlayers, OutPlayer{ID: id, Reason: reasonPenaltyThresholdExceeded})
	}

	e.logger.WithFields(logrus.Fields{
		"winner":     winner,
		"penalties":  len(penalties),
		"outPlayers": len(state.OutPlayers),
	}).Info("round finished")

	e.room.BroadcastEndRound(penalties, state.OutPlayers, winner)

	return Round{
		RoundState: state,
		Winner:     winner,
		Penalties:  penalties,
	}
}

// roundPenalties returns a penalty for every card of the highest turns of the last cycle.
// Nobody is charged if the last cycle was not contested.
func roundPenalties(state RoundState) []Penalty {
	penalties := make([]Penalty, 0)
	if len(state.Cycles) == 0 {
		return penalties
	}

	last := state.Cycles[len(state.Cycles)-1]
	if len(validTurns(last.Turns)) <= 1 {
		return penalties
	}

	for _, turn := range last.HighestTurns {
		for _, card := range turn.Cards {
			penalties = append(penalties, Penalty{PlayerID: turn.PlayerID, Card: card})
		}
	}

	return penalties
}
