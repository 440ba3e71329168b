package room

import (
	"testing"
	"time"

	"agurk-server/internal/rng"
	"agurk-server/pkg/agurk"
	"agurk-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func newTestLobby(requestTimeout time.Duration) *Lobby {
	l := NewLobby(agurk.NewRandomDealer(rng.NewSeeded(1)), Options{
		RequestTimeout: requestTimeout,
		Game:           agurk.Options{RetryBudget: 1},
	}, nil)
	l.StartShift()

	return l
}

func TestLobby_ClientConnected(t *testing.T) {
	a := assert.New(t)
	l := newTestLobby(time.Second)
	defer l.EndShift()

	alice := NewClient(nil, "Alice")
	l.ClientConnected(alice)

	welcome := nextMessage(t, alice, keyWelcome)
	a.Equal(alice.ID, welcome.Value)
	a.Equal(LobbyPlayer{ID: alice.ID, Name: "Alice"}, welcome.Data)
	a.Equal([]LobbyPlayer{{ID: alice.ID, Name: "Alice"}}, nextMessage(t, alice, keyLobby).Data)

	bob := NewClient(nil, "Bob")
	l.ClientConnected(bob)
	nextMessage(t, bob, keyWelcome)

	expected := []LobbyPlayer{{ID: alice.ID, Name: "Alice"}, {ID: bob.ID, Name: "Bob"}}
	a.Equal(expected, nextMessage(t, alice, keyLobby).Data)
	a.Equal(expected, nextMessage(t, bob, keyLobby).Data)

	l.ClientDisconnected(alice)
	a.False(alice.IsConnected())
	a.Equal([]LobbyPlayer{{ID: bob.ID, Name: "Bob"}}, nextMessage(t, bob, keyLobby).Data)
	a.Equal([]*Client{bob}, l.Clients())
}

func TestLobby_full(t *testing.T) {
	l := newTestLobby(time.Second)
	defer l.EndShift()

	for i := 0; i < agurk.MaxPlayerCount; i++ {
		c := NewClient(nil, "player")
		l.ClientConnected(c)
		nextMessage(t, c, keyWelcome)
	}

	c := NewClient(nil, "late")
	l.ClientConnected(c)
	assert.Equal(t, "the lobby is full", closeReason(t, c))
	assert.Len(t, l.Clients(), agurk.MaxPlayerCount)
}

func TestLobby_StartGame_notEnoughPlayers(t *testing.T) {
	l := newTestLobby(time.Second)
	defer l.EndShift()

	c := NewClient(nil, "Alice")
	l.ClientConnected(c)
	nextMessage(t, c, keyWelcome)

	c.ReceivedMessage(&PayloadIn{Action: ActionStartGame, Context: "start"})
	res := nextMessage(t, c, keyError)
	assert.Equal(t, "player count not in valid range of [2, 7]", res.Value)
	assert.Equal(t, "start", res.Context)
}

func TestLobby_StartGame_rejectsWhileRunning(t *testing.T) {
	a := assert.New(t)
	l := newTestLobby(time.Minute)
	defer l.EndShift()

	alice := NewClient(nil, "Alice")
	bob := NewClient(nil, "Bob")
	l.ClientConnected(alice)
	nextMessage(t, alice, keyWelcome)
	l.ClientConnected(bob)
	nextMessage(t, bob, keyWelcome)

	alice.ReceivedMessage(&PayloadIn{Action: ActionStartGame, Context: "1"})
	a.Equal("1", nextMessage(t, alice, keyStatus).Context)
	a.Equal(agurkPlayerIDs(alice, bob), nextMessage(t, bob, keyStartGame).Data)

	bob.ReceivedMessage(&PayloadIn{Action: ActionStartGame, Context: "2"})
	a.Equal("a game is already running", nextMessage(t, bob, keyError).Value)

	late := NewClient(nil, "late")
	l.ClientConnected(late)
	a.Equal("a game is already running", closeReason(t, late))
}

func TestLobby_disconnectBeforeSeated(t *testing.T) {
	a := assert.New(t)
	l := NewLobby(agurk.NewRandomDealer(rng.NewSeeded(1)), Options{RequestTimeout: time.Second}, nil)
	defer l.EndShift()

	// queue every event before the run loop starts
	for i := 0; i < 100; i++ {
		c := NewClient(nil, "ghost")
		l.ClientConnected(c)
		l.ClientDisconnected(c)
	}

	l.StartShift()

	alice := NewClient(nil, "Alice")
	l.ClientConnected(alice)
	nextMessage(t, alice, keyWelcome)

	a.Equal([]*Client{alice}, l.Clients())
}

func TestLobby_StartGame_immediatelyAfterConnect(t *testing.T) {
	a := assert.New(t)
	l := newTestLobby(time.Second)
	defer l.EndShift()

	alice := NewClient(nil, "Alice")
	bob := NewClient(nil, "Bob")
	l.ClientConnected(alice)
	l.ClientConnected(bob)
	bob.ReceivedMessage(&PayloadIn{Action: ActionStartGame, Context: "go"})

	res := nextMessage(t, bob, keyStatus)
	a.Equal("OK", res.Value)
	a.Equal("go", res.Context)
	a.Equal(agurkPlayerIDs(alice, bob), nextMessage(t, alice, keyStartGame).Data)
}

func TestLobby_StartGame_notSeated(t *testing.T) {
	l := newTestLobby(time.Second)
	defer l.EndShift()

	alice := NewClient(nil, "Alice")
	l.ClientConnected(alice)
	nextMessage(t, alice, keyWelcome)

	gone := NewClient(nil, "Gone")
	gone.setDisconnected()
	l.ClientConnected(gone)
	gone.ReceivedMessage(&PayloadIn{Action: ActionStartGame, Context: "x"})

	res := nextMessage(t, gone, keyError)
	assert.Equal(t, "you are not seated in the lobby", res.Value)
	assert.Equal(t, []*Client{alice}, l.Clients())
}

func agurkPlayerIDs(clients ...*Client) playerIDsData {
	ids := make([]string, len(clients))
	for i, c := range clients {
		ids[i] = c.ID
	}

	return playerIDsData{PlayerIDs: ids}
}

// playLowestCard answers every request with the lowest available card until the game ends
func playLowestCard(c *Client, result chan<- *Response) {
	var available deck.Hand
	for msg := range c.SendChan() {
		res, ok := msg.(*Response)
		if !ok {
			continue
		}

		switch res.Key {
		case keyAvailableCards:
			available = res.Data.(CardsData).Cards
		case keyRequestCards:
			if len(available) > 0 {
				lowest := available.SortedByRank()[0]
				c.ReceivedMessage(&PayloadIn{Action: ActionPlayCards, Cards: []deck.Card{lowest}})
			}
		case keyEndGame, keyGameError:
			result <- res
			return
		}
	}
}

func TestLobby_playGame(t *testing.T) {
	a := assert.New(t)
	l := newTestLobby(time.Second)
	defer l.EndShift()

	clients := []*Client{NewClient(nil, "Alice"), NewClient(nil, "Bob"), NewClient(nil, "Carol")}
	for _, c := range clients {
		l.ClientConnected(c)
		nextMessage(t, c, keyWelcome)
	}

	results := make(chan *Response, len(clients))
	for _, c := range clients {
		go playLowestCard(c, results)
	}

	clients[0].ReceivedMessage(&PayloadIn{Action: ActionStartGame})

	ids := []string{clients[0].ID, clients[1].ID, clients[2].ID}
	for range clients {
		select {
		case res := <-results:
			a.Equal(keyEndGame, res.Key)
			a.Contains(ids, res.Value)
		case <-time.After(time.Second * 20):
			t.Fatal("game did not end")
		}
	}
}
