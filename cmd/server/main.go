package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"agurk-server/internal/config"
	"agurk-server/internal/jwt"
	"agurk-server/internal/mux"
	"agurk-server/internal/rng"
	"agurk-server/pkg/agurk"
	"agurk-server/pkg/room"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")
var seed = flag.Int64("seed", 0, "seeds the dealer, zero uses a cryptographic source")

func main() {
	flag.Parse()
	setupLogger()

	// fail fast
	cfg := config.Instance()
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	jwt.LoadKeys()

	lobby := room.NewLobby(agurk.NewRandomDealer(rng.New(*seed)), room.Options{
		RequestTimeout: cfg.RequestTimeout(),
		Game: agurk.Options{
			RetryBudget:     cfg.Server.RequestRetriesAllowed,
			DelayAfterCycle: cfg.DelayAfterCycle(),
			DelayAfterRound: cfg.DelayAfterRound(),
		},
	}, logrus.WithField("component", "lobby"))
	lobby.StartShift()
	defer lobby.EndShift()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, lobby))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
