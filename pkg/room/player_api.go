package room

import (
	"context"
	"time"

	"agurk-server/pkg/deck"
)

// playerAPI lets the engine talk to a client
type playerAPI struct {
	client  *Client
	timeout time.Duration
}

func newPlayerAPI(client *Client, timeout time.Duration) *playerAPI {
	return &playerAPI{client: client, timeout: timeout}
}

func (p *playerAPI) IsConnected() bool {
	return p.client.IsConnected()
}

func (p *playerAPI) DealCards(cards []deck.Card) {
	p.client.Send(&Response{Key: keyDealtCards, Data: CardsData{Cards: cards}})
}

func (p *playerAPI) SendAvailableCards(cards []deck.Card) {
	p.client.Send(&Response{Key: keyAvailableCards, Data: CardsData{Cards: cards}})
}

// RequestCards waits for the next play of the client.
// Plays sent before the request are discarded. A malformed play fails the request with ErrInvalidCards.
func (p *playerAPI) RequestCards(ctx context.Context, retriesLeft int) ([]deck.Card, error) {
	select {
	case <-p.client.played:
	default:
	}

	p.client.Send(&Response{Key: keyRequestCards, Data: RequestCardsData{RetriesLeft: retriesLeft}})

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case res := <-p.client.played:
		return res.cards, res.err
	case <-p.client.disconnected:
		return nil, ErrClientDisconnected
	case <-timer.C:
		return nil, ErrRequestTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
