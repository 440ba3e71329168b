package agurk

import (
	"context"

	"github.com/sirupsen/logrus"
)

// PlayGame plays a full game with the players, in seating order.
// If no winner could be determined, a *GameError is returned holding the state that was reached.
func (e *Engine) PlayGame(ctx context.Context, players []Player) (*Game, error) {
	ids := playerIDs(players)
	if !IsValidPlayerCount(len(players)) {
		return nil, &GameError{
			State: GameState{PlayerIDs: ids, Rounds: []Round{}, OutPlayers: []OutPlayer{}},
			Err:   PlayerCountError{Min: MinPlayerCount, Max: MaxPlayerCount, Got: len(players)},
		}
	}

	e.logger.WithField("players", ids).Info("starting game")
	e.room.BroadcastStartGame(ids)

	state := GameState{
		PlayerIDs:  ids,
		Rounds:     []Round{},
		OutPlayers: []OutPlayer{},
	}

	ordered := players
	for !IsGameFinished(state) {
		startingID, ok := ChooseRoundStartingPlayerID(state)
		if !ok {
			break
		}

		ordered = activePlayers(rotateTo(ordered, startingID), state.OutPlayers)
		round := e.playRound(ctx, ordered, state.Rounds)

		state.Rounds = append(state.Rounds, round)
		state.OutPlayers = append(state.OutPlayers, round.OutPlayers...)
	}

	winner, ok := ChooseGameWinner(e.dealer.SamplePlayerID, state)
	if !ok {
		e.logger.WithField("rounds", len(state.Rounds)).Warn(ErrNoGameWinner.Error())
		e.room.BroadcastGameError(ErrNoGameWinner.Error())
		return nil, &GameError{State: state, Err: ErrNoGameWinner}
	}

	e.logger.WithFields(logrus.Fields{
		"winner": winner,
		"rounds": len(state.Rounds),
	}).Info("game finished")
	e.room.BroadcastEndGame(winner)

	return &Game{GameState: state, Winner: winner}, nil
}
