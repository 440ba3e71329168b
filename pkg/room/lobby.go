package room

import (
	"context"
	"sync"
	"time"

	"agurk-server/pkg/agurk"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Options configure a lobby
type Options struct {
	// RequestTimeout is how long a player has to play their cards
	RequestTimeout time.Duration

	// Game are the options of every game played in the lobby
	Game agurk.Options
}

type startRequest struct {
	client *Client
	ctx    string
}

type gameResult struct {
	id   string
	game *agurk.Game
	err  error
}

// Lobby seats the connected clients and runs one game at a time
type Lobby struct {
	options Options
	dealer  agurk.Dealer
	logger  logrus.FieldLogger

	// clients is only modified from within the run loop
	clients     []*Client
	lock        sync.RWMutex
	gameRunning bool

	// execInRunLoop keeps connect, disconnect and start requests in arrival order
	execInRunLoop chan func()
	gameEnded     chan gameResult
	close         chan bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewLobby returns a new lobby
// If logger is nil, the standard logger is used.
func NewLobby(dealer agurk.Dealer, options Options, logger logrus.FieldLogger) *Lobby {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Lobby{
		options:    options,
		dealer:     dealer,
		logger:     logger,
		clients:    make([]*Client, 0, agurk.MaxPlayerCount),
		execInRunLoop: make(chan func(), 256),
		gameEnded:     make(chan gameResult),
		close:         make(chan bool),
		ctx:           ctx,
		cancel:        cancel,
	}
}

// StartShift starts the run loop
func (l *Lobby) StartShift() {
	go l.runLoop()
}

// EndShift stops the run loop and cancels a running game
func (l *Lobby) EndShift() {
	close(l.close)
}

// ClientConnected is called when a client connects to the server
// The client can send messages to the lobby as soon as this returns.
func (l *Lobby) ClientConnected(client *Client) {
	client.setLobby(l)
	l.execInRunLoop <- func() {
		l.addClient(client)
	}
}

// ClientDisconnected is called when a client disconnects from the server
// A pending card request of the client fails immediately.
func (l *Lobby) ClientDisconnected(client *Client) {
	client.setDisconnected()
	l.execInRunLoop <- func() {
		l.removeClient(client)
	}
}

// StartGame starts a game with the connected clients
func (l *Lobby) StartGame(client *Client, ctx string) {
	l.execInRunLoop <- func() {
		l.startGameFor(startRequest{client: client, ctx: ctx})
	}
}

// Clients returns the clients seated at the time of the call
func (l *Lobby) Clients() []*Client {
	l.lock.RLock()
	defer l.lock.RUnlock()

	clients := make([]*Client, len(l.clients))
	copy(clients, l.clients)

	return clients
}

func (l *Lobby) runLoop() {
	l.logger.Debug("starting lobby run loop")
	for {
		select {
		case fn := <-l.execInRunLoop:
			fn()
		case res := <-l.gameEnded:
			l.gameRunning = false
			log := l.logger.WithField("game", res.id)
			if res.err != nil {
				log.WithError(res.err).Warn("game ended without a winner")
			} else {
				log.WithField("winner", res.game.Winner).Info("game ended")
			}
		case <-l.close:
			l.logger.Debug("terminating lobby run loop")
			l.cancel()
			return
		}
	}
}

// NOTE: must only be called from the run loop
func (l *Lobby) addClient(client *Client) {
	log := l.logger.WithField("client", client.String())
	if !client.IsConnected() {
		log.Debug("client disconnected before it was seated")
		return
	}

	if l.gameRunning {
		log.Info("rejecting client, game is running")
		client.CloseWithReason(ErrGameRunning.Error())
		return
	}

	if len(l.clients) >= agurk.MaxPlayerCount {
		log.Info("rejecting client, lobby is full")
		client.CloseWithReason(ErrLobbyFull.Error())
		return
	}

	log.Debug("client connected")
	l.setClients(append(l.clients, client))

	client.Send(&Response{Key: keyWelcome, Value: client.ID, Data: LobbyPlayer{ID: client.ID, Name: client.Name}})
	l.sendLobby()
}

// NOTE: must only be called from the run loop
func (l *Lobby) removeClient(client *Client) {
	clients := make([]*Client, 0, len(l.clients))
	for _, c := range l.clients {
		if c != client {
			clients = append(clients, c)
		}
	}

	if len(clients) == len(l.clients) {
		return
	}

	l.logger.WithField("client", client.String()).Debug("client disconnected")
	l.setClients(clients)
	l.sendLobby()
}

// NOTE: must only be called from the run loop
func (l *Lobby) startGameFor(req startRequest) {
	if !l.isSeated(req.client) {
		req.client.Send(newErrorResponse(req.ctx, ErrNotSeated))
		return
	}

	if l.gameRunning {
		req.client.Send(newErrorResponse(req.ctx, ErrGameRunning))
		return
	}

	if !agurk.IsValidPlayerCount(len(l.clients)) {
		req.client.Send(newErrorResponse(req.ctx, agurk.PlayerCountError{
			Min: agurk.MinPlayerCount,
			Max: agurk.MaxPlayerCount,
			Got: len(l.clients),
		}))
		return
	}

	players := make([]agurk.Player, len(l.clients))
	for i, c := range l.clients {
		players[i] = agurk.Player{ID: c.ID, API: newPlayerAPI(c, l.options.RequestTimeout)}
	}

	id := uuid.New().String()
	log := l.logger.WithField("game", id)
	engine := agurk.NewEngine(&roomAPI{lobby: l}, l.dealer, l.options.Game, log)

	l.gameRunning = true
	req.client.Send(OK(req.ctx))

	go func() {
		game, err := engine.PlayGame(l.ctx, players)
		select {
		case l.gameEnded <- gameResult{id: id, game: game, err: err}:
		case <-l.ctx.Done():
		}
	}()
}

// NOTE: must only be called from the run loop
func (l *Lobby) isSeated(client *Client) bool {
	for _, c := range l.clients {
		if c == client {
			return true
		}
	}

	return false
}

// NOTE: must only be called from the run loop
func (l *Lobby) setClients(clients []*Client) {
	l.lock.Lock()
	l.clients = clients
	l.lock.Unlock()
}

// NOTE: must only be called from the run loop
func (l *Lobby) sendLobby() {
	players := make([]LobbyPlayer, len(l.clients))
	for i, c := range l.clients {
		players[i] = LobbyPlayer{ID: c.ID, Name: c.Name}
	}

	l.broadcast(&Response{Key: keyLobby, Data: players})
}

func (l *Lobby) broadcast(msg *Response) {
	for _, client := range l.Clients() {
		client.Send(msg)
	}
}
