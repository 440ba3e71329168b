package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var server = flag.String("server", "http://localhost:5000", "the server address")
var name = flag.String("name", "", "the player name, prompted for if empty")

type authenticateResponse struct {
	JWT     string `json:"jwt"`
	Message string `json:"message"`
}

func main() {
	flag.Parse()

	playerName := *name
	if playerName == "" {
		var err error
		if playerName, err = getInput("Name"); err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}
	}

	if playerName == "" {
		os.Exit(1)
	}

	token := getToken()
	if token == "" {
		os.Exit(1)
	}

	signed, err := authenticate(playerName, token)
	if err != nil {
		logrus.WithError(err).Fatal("could not authenticate")
	}

	fmt.Println(signed)
}

func authenticate(playerName, token string) (string, error) {
	body, err := json.Marshal(map[string]string{"name": playerName, "token": token})
	if err != nil {
		return "", err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(strings.TrimRight(*server, "/")+"/authenticate", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload authenticateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server responded with %d: %s", resp.StatusCode, payload.Message)
	}

	return payload.JWT, nil
}

func getToken() string {
	for {
		fmt.Print("Access token: ")
		tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			logrus.WithError(err).Warn("could not read access token")
			return ""
		}
		fmt.Println("")

		token := strings.TrimRight(string(tokenBytes), "\r\n")
		if token == "" {
			_, _ = fmt.Fprintln(os.Stderr, "access token is required")
			continue
		}

		return token
	}
}

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return strings.TrimSpace(str), nil
}
