package agurk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_rotateTo(t *testing.T) {
	players, _ := newPlayers(playLowest, playLowest, playLowest, playLowest)

	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, playerIDs(rotateTo(players, "p1")))
	assert.Equal(t, []string{"p3", "p4", "p1", "p2"}, playerIDs(rotateTo(players, "p3")))
	assert.Equal(t, []string{"p4", "p1", "p2", "p3"}, playerIDs(rotateTo(players, "p4")))
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, playerIDs(rotateTo(players, "p9")))

	// a full rotation visits every player once
	for _, p := range players {
		rotated := rotateTo(players, p.ID)
		assert.ElementsMatch(t, playerIDs(players), playerIDs(rotated))
	}
}

func Test_activePlayers(t *testing.T) {
	players, _ := newPlayers(playLowest, playLowest, playLowest)

	active := activePlayers(rotateTo(players, "p2"), []OutPlayer{{ID: "p3"}})
	assert.Equal(t, []string{"p2", "p1"}, playerIDs(active))
	assert.Empty(t, activePlayers(players, []OutPlayer{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}))
}
