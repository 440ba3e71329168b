package room

import (
	"agurk-server/pkg/agurk"
)

// roomAPI broadcasts game events to every client of the lobby
type roomAPI struct {
	lobby *Lobby
}

type playerIDsData struct {
	PlayerIDs []string `json:"playerIds"`
}

type endRoundData struct {
	Penalties  []agurk.Penalty   `json:"penalties"`
	OutPlayers []agurk.OutPlayer `json:"outPlayers"`
	Winner     string            `json:"winner,omitempty"`
}

type startCycleData struct {
	PlayerIDs     []string `json:"playerIds"`
	IsLastOfRound bool     `json:"isLastOfRound"`
}

type endCycleData struct {
	OutPlayers           []agurk.OutPlayer `json:"outPlayers"`
	HighestTurnPlayerIDs []string          `json:"highestTurnPlayerIds"`
}

func (r *roomAPI) BroadcastStartGame(playerIDs []string) {
	r.lobby.broadcast(&Response{Key: keyStartGame, Data: playerIDsData{PlayerIDs: playerIDs}})
}

func (r *roomAPI) BroadcastEndGame(winner string) {
	r.lobby.broadcast(&Response{Key: keyEndGame, Value: winner})
}

func (r *roomAPI) BroadcastGameError(message string) {
	r.lobby.broadcast(&Response{Key: keyGameError, Value: message})
}

func (r *roomAPI) BroadcastStartRound(playerIDs []string) {
	r.lobby.broadcast(&Response{Key: keyStartRound, Data: playerIDsData{PlayerIDs: playerIDs}})
}

func (r *roomAPI) BroadcastEndRound(penalties []agurk.Penalty, outPlayers []agurk.OutPlayer, winner string) {
	r.lobby.broadcast(&Response{Key: keyEndRound, Data: endRoundData{
		Penalties:  penalties,
		OutPlayers: outPlayers,
		Winner:     winner,
	}})
}

func (r *roomAPI) BroadcastStartCycle(playerIDs []string, isLastOfRound bool) {
	r.lobby.broadcast(&Response{Key: keyStartCycle, Data: startCycleData{
		PlayerIDs:     playerIDs,
		IsLastOfRound: isLastOfRound,
	}})
}

func (r *roomAPI) BroadcastEndCycle(outPlayers []agurk.OutPlayer, highestTurnPlayerIDs []string) {
	r.lobby.broadcast(&Response{Key: keyEndCycle, Data: endCycleData{
		OutPlayers:           outPlayers,
		HighestTurnPlayerIDs: highestTurnPlayerIDs,
	}})
}

func (r *roomAPI) BroadcastStartPlayerTurn(playerID string) {
	r.lobby.broadcast(&Response{Key: keyStartPlayerTurn, Value: playerID})
}

func (r *roomAPI) BroadcastPlayerTurn(turn agurk.ValidatedTurn) {
	r.lobby.broadcast(&Response{Key: keyPlayerTurn, Data: turn})
}

func (r *roomAPI) BroadcastOutPlayer(outPlayer agurk.OutPlayer) {
	r.lobby.broadcast(&Response{Key: keyOutPlayer, Data: outPlayer})
}
