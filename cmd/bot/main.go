package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"agurk-server/pkg/deck"
	"agurk-server/pkg/room"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var server = flag.String("url", "ws://localhost:5000/ws", "the websocket address")
var token = flag.String("token", "", "a signed JWT, see cmd/authenticate")
var name = flag.String("name", "bot", "the player name used with -access-token")
var accessToken = flag.String("access-token", "", "the shared access token, exchanged for a JWT if -token is empty")
var start = flag.Bool("start", false, "start a game once the lobby has enough players")

type message struct {
	Key     string          `json:"key"`
	Value   string          `json:"value"`
	Data    json.RawMessage `json:"data"`
	Context string          `json:"context"`
}

// a bot that always plays its lowest card
func main() {
	flag.Parse()

	if *token == "" {
		*token = os.Getenv("AGURK_JWT")
	}

	u, err := url.Parse(*server)
	if err != nil {
		logrus.WithError(err).Fatal("invalid url")
	}

	if *token == "" && *accessToken != "" {
		if *token, err = authenticate(u); err != nil {
			logrus.WithError(err).Fatal("could not authenticate")
		}
	}

	if *token == "" {
		logrus.Fatal("-token or -access-token is required")
	}

	q := u.Query()
	q.Set("access_token", *token)
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect")
	}
	defer conn.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	}()

	if err := play(conn); err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		logrus.WithError(err).Fatal("connection closed")
	}
}

// authenticate exchanges the access token for a JWT on the server behind the websocket url
func authenticate(wsURL *url.URL) (string, error) {
	authURL := *wsURL
	authURL.Scheme = strings.Replace(wsURL.Scheme, "ws", "http", 1)
	authURL.Path = strings.TrimSuffix(wsURL.Path, "/ws") + "/authenticate"
	authURL.RawQuery = ""

	body, _ := json.Marshal(map[string]string{"name": *name, "token": *accessToken})
	resp, err := http.Post(authURL.String(), "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server responded with %d", resp.StatusCode)
	}

	var payload struct {
		JWT string `json:"jwt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	return payload.JWT, nil
}

func play(conn *websocket.Conn) error {
	var myID string
	var cards deck.Hand

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			return err
		}

		log := logrus.WithField("key", msg.Key)
		switch msg.Key {
		case "welcome":
			myID = msg.Value
			log.WithField("id", myID).Info("joined the lobby")
		case "lobby":
			var players []room.LobbyPlayer
			_ = json.Unmarshal(msg.Data, &players)
			log.WithField("players", len(players)).Info("lobby changed")

			if *start && len(players) >= 2 {
				if err := conn.WriteJSON(room.PayloadIn{Action: room.ActionStartGame}); err != nil {
					return err
				}
			}
		case "dealtCards", "availableCards":
			var data room.CardsData
			_ = json.Unmarshal(msg.Data, &data)
			cards = data.Cards
			log.WithField("cards", cards.String()).Debug("cards changed")
		case "requestCards":
			if len(cards) == 0 {
				log.Warn("cards requested, but no cards available")
				continue
			}

			lowest := cards.SortedByRank()[0]
			log.WithField("card", lowest.String()).Info("playing card")
			if err := conn.WriteJSON(room.PayloadIn{Action: room.ActionPlayCards, Cards: []deck.Card{lowest}}); err != nil {
				return err
			}
		case "endGame":
			log.WithField("won", msg.Value == myID).Info("game ended")
		case "error", "gameError":
			log.WithField("error", msg.Value).Warn("received error")
		default:
			log.WithField("value", msg.Value).Debug(strings.TrimSpace(string(msg.Data)))
		}
	}
}
