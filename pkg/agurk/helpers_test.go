package agurk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"agurk-server/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var errTimeout = errors.New("request timed out")

type playFunc func(available deck.Hand, retriesLeft int) ([]deck.Card, error)

func playLowest(available deck.Hand, _ int) ([]deck.Card, error) {
	if len(available) == 0 {
		return nil, errTimeout
	}

	return []deck.Card{available.SortedByRank()[0]}, nil
}

func playHighest(available deck.Hand, _ int) ([]deck.Card, error) {
	if len(available) == 0 {
		return nil, errTimeout
	}

	sorted := available.SortedByRank()
	return []deck.Card{sorted[len(sorted)-1]}, nil
}

func playNothing(deck.Hand, int) ([]deck.Card, error) {
	return nil, errTimeout
}

func playCards(s string) playFunc {
	return func(deck.Hand, int) ([]deck.Card, error) {
		return deck.CardsFromString(s), nil
	}
}

type fakePlayer struct {
	play         playFunc
	disconnected bool

	dealt     []deck.Hand
	available []deck.Hand
	requests  []int
}

func (f *fakePlayer) IsConnected() bool {
	return !f.disconnected
}

func (f *fakePlayer) DealCards(cards []deck.Card) {
	f.dealt = append(f.dealt, deck.Hand(cards).Clone())
}

func (f *fakePlayer) RequestCards(ctx context.Context, retriesLeft int) ([]deck.Card, error) {
	f.requests = append(f.requests, retriesLeft)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var available deck.Hand
	if len(f.available) > 0 {
		available = f.available[len(f.available)-1]
	}

	return f.play(available, retriesLeft)
}

func (f *fakePlayer) SendAvailableCards(cards []deck.Card) {
	f.available = append(f.available, deck.Hand(cards).Clone())
}

func newPlayers(plays ...playFunc) ([]Player, []*fakePlayer) {
	players := make([]Player, len(plays))
	fakes := make([]*fakePlayer, len(plays))
	for i, play := range plays {
		fakes[i] = &fakePlayer{play: play}
		players[i] = Player{ID: fmt.Sprintf("p%d", i+1), API: fakes[i]}
	}

	return players, fakes
}

// recordingRoom records every broadcast as a short string
type recordingRoom struct {
	lock   sync.Mutex
	events []string

	endRounds []endRound
}

type endRound struct {
	penalties  []Penalty
	outPlayers []OutPlayer
	winner     string
}

func (r *recordingRoom) record(format string, a ...interface{}) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.events = append(r.events, fmt.Sprintf(format, a...))
}

func (r *recordingRoom) eventsWithPrefix(prefix string) []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	found := make([]string, 0)
	for _, e := range r.events {
		if strings.HasPrefix(e, prefix) {
			found = append(found, e)
		}
	}

	return found
}

func (r *recordingRoom) BroadcastStartGame(playerIDs []string) {
	r.record("startGame:%s", strings.Join(playerIDs, ","))
}

func (r *recordingRoom) BroadcastEndGame(winner string) {
	r.record("endGame:%s", winner)
}

func (r *recordingRoom) BroadcastGameError(message string) {
	r.record("gameError:%s", message)
}

func (r *recordingRoom) BroadcastStartRound(playerIDs []string) {
	r.record("startRound:%s", strings.Join(playerIDs, ","))
}

func (r *recordingRoom) BroadcastEndRound(penalties []Penalty, outPlayers []OutPlayer, winner string) {
	r.lock.Lock()
	r.endRounds = append(r.endRounds, endRound{penalties: penalties, outPlayers: outPlayers, winner: winner})
	r.lock.Unlock()

	r.record("endRound:%s", winner)
}

func (r *recordingRoom) BroadcastStartCycle(playerIDs []string, isLastOfRound bool) {
	r.record("startCycle:%s:%t", strings.Join(playerIDs, ","), isLastOfRound)
}

func (r *recordingRoom) BroadcastEndCycle(outPlayers []OutPlayer, highestTurnPlayerIDs []string) {
	r.record("endCycle:%d:%s", len(outPlayers), strings.Join(highestTurnPlayerIDs, ","))
}

func (r *recordingRoom) BroadcastStartPlayerTurn(playerID string) {
	r.record("startPlayerTurn:%s", playerID)
}

func (r *recordingRoom) BroadcastPlayerTurn(turn ValidatedTurn) {
	r.record("playerTurn:%s:%s", turn.PlayerID, deck.CardsToString(turn.Cards))
}

func (r *recordingRoom) BroadcastOutPlayer(outPlayer OutPlayer) {
	r.record("outPlayer:%s:%s", outPlayer.ID, outPlayer.Reason)
}

// fixedDealer deals the same hands every round and always samples the first candidate
type fixedDealer struct {
	hands Hands
}

func (f fixedDealer) CreateHands(playerIDs []string, _ []deck.Card, _ int) Hands {
	hands := make(Hands, len(playerIDs))
	for _, id := range playerIDs {
		hands[id] = f.hands[id].Clone()
	}

	return hands
}

func (f fixedDealer) SamplePlayerID(ids []string) (string, bool) {
	return first(ids)
}

func sampleFirst(ids []string) (string, bool) {
	return first(ids)
}

func sampleLast(ids []string) (string, bool) {
	if len(ids) == 0 {
		return "", false
	}

	return ids[len(ids)-1], true
}

func testOptions() Options {
	return Options{RetryBudget: 2}
}

func newTestEngine(room RoomAPI, dealer Dealer) (*Engine, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return NewEngine(room, dealer, testOptions(), logger), hook
}

func validTurn(playerID string, cards string) ValidatedTurn {
	return ValidatedTurn{Turn: Turn{PlayerID: playerID, Cards: deck.CardsFromString(cards)}, Valid: true}
}

func invalidTurn(playerID string, cards string) ValidatedTurn {
	return ValidatedTurn{
		Turn:          Turn{PlayerID: playerID, Cards: deck.CardsFromString(cards)},
		Valid:         false,
		InvalidReason: reasonNotFollowingRules,
	}
}

func hand(s string) deck.Hand {
	return deck.CardsFromString(s)
}
