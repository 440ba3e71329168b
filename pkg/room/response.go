package room

import (
	"agurk-server/pkg/deck"
)

// response keys
const (
	keyWelcome         = "welcome"
	keyLobby           = "lobby"
	keyError           = "error"
	keyStatus          = "status"
	keyStartGame       = "startGame"
	keyEndGame         = "endGame"
	keyGameError       = "gameError"
	keyStartRound      = "startRound"
	keyEndRound        = "endRound"
	keyStartCycle      = "startCycle"
	keyEndCycle        = "endCycle"
	keyStartPlayerTurn = "startPlayerTurn"
	keyPlayerTurn      = "playerTurn"
	keyOutPlayer       = "outPlayer"
	keyDealtCards      = "dealtCards"
	keyAvailableCards  = "availableCards"
	keyRequestCards    = "requestCards"
)

// actions a client can send
const (
	ActionStartGame = "startGame"
	ActionPlayCards = "playCards"
)

// Response is the format of every message sent to a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   keyStatus,
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     keyError,
		Value:   err.Error(),
		Context: ctx,
	}
}

// PayloadIn is the format we expect from a client
type PayloadIn struct {
	Action string      `json:"action"`
	Cards  []deck.Card `json:"cards"`
	// Context will be passed back on any direct response
	Context string `json:"context"`
}

// LobbyPlayer describes a connected client
type LobbyPlayer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CardsData is sent with dealtCards and availableCards
type CardsData struct {
	Cards []deck.Card `json:"cards"`
}

// RequestCardsData is sent with requestCards
type RequestCardsData struct {
	RetriesLeft int `json:"retriesLeft"`
}
