package room

import (
	"fmt"
	"sync"

	"agurk-server/pkg/agurk"
	"agurk-server/pkg/deck"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// ID identifies the client as a player
	ID string

	// Name is the display name of the client
	Name string

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	lobby *Lobby

	// played holds the most recent play, or why it was rejected
	played chan playResult

	lock         sync.RWMutex
	connected    bool
	disconnected chan struct{}
}

type playResult struct {
	cards []deck.Card
	err   error
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, name string) *Client {
	return &Client{
		Conn:         conn,
		ID:           uuid.New().String(),
		Name:         name,
		send:         make(chan interface{}, 256),
		Close:        make(chan string, 1),
		played:       make(chan playResult, 1),
		connected:    true,
		disconnected: make(chan struct{}),
	}
}

// Send send a message to the web client
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("send buffer is full, dropping message")
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// CloseWithReason asks the write loop to close the connection
func (c *Client) CloseWithReason(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.Name, c.ID)
}

// IsConnected returns false after the client disconnected
func (c *Client) IsConnected() bool {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.connected
}

func (c *Client) setLobby(lobby *Lobby) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.lobby = lobby
}

func (c *Client) getLobby() *Lobby {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.lobby
}

// setDisconnected may be called multiple times
func (c *Client) setDisconnected() {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.connected {
		c.connected = false
		close(c.disconnected)
	}
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	switch msg.Action {
	case ActionPlayCards:
		// a malformed play still answers a pending request
		if !isValidPlay(msg.Cards) {
			c.deliverPlay(playResult{err: ErrInvalidCards})
			c.Send(newErrorResponse(msg.Context, ErrInvalidCards))
			return
		}

		c.deliverPlay(playResult{cards: msg.Cards})
		c.Send(OK(msg.Context))
	case ActionStartGame:
		lobby := c.getLobby()
		if lobby == nil {
			logrus.WithField("client", c.String()).Warn("received message, but lobby not found")
			return
		}

		lobby.StartGame(c, msg.Context)
	default:
		logrus.WithField("msg", msg).Warn("unknown message")
		c.Send(newErrorResponse(msg.Context, ErrUnknownAction))
	}
}

// deliverPlay keeps only the latest play
func (c *Client) deliverPlay(result playResult) {
	for {
		select {
		case c.played <- result:
			return
		default:
		}

		select {
		case <-c.played:
		default:
		}
	}
}

func isValidPlay(cards []deck.Card) bool {
	if len(cards) == 0 || len(cards) > agurk.MaxCardsPerTurn {
		return false
	}

	for _, card := range cards {
		if !card.IsValid() {
			return false
		}
	}

	return true
}
