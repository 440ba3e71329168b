package room

import "errors"

// ErrRequestTimeout is returned when a player did not play in time
var ErrRequestTimeout = errors.New("player did not play cards in time")

// ErrClientDisconnected is returned when a player disconnects during a request
var ErrClientDisconnected = errors.New("client disconnected")

// ErrGameRunning is returned when a game is requested while another one runs
var ErrGameRunning = errors.New("a game is already running")

// ErrLobbyFull is the close reason for clients connecting to a full lobby
var ErrLobbyFull = errors.New("the lobby is full")

// ErrUnknownAction is sent back for unsupported actions
var ErrUnknownAction = errors.New("unknown action")

// ErrInvalidCards is sent back if played cards are malformed
var ErrInvalidCards = errors.New("cards must contain 1 to 7 valid cards")

// ErrNotSeated is sent to a client that asks to start a game without a seat in the lobby
var ErrNotSeated = errors.New("you are not seated in the lobby")
